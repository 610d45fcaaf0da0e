package metrics

import (
	"time"

	"github.com/katalvlaran/knapsack/core"
)

// instrumented decorates a core.Solver with a Recorder.
type instrumented struct {
	next core.Solver
	algo string
	rec  Recorder
}

// Instrument returns a core.Solver that forwards to s and records every Solve
// call under algo. A nil rec is treated as Noop.
func Instrument(s core.Solver, algo string, rec Recorder) core.Solver {
	if rec == nil {
		rec = Noop{}
	}

	return &instrumented{next: s, algo: algo, rec: rec}
}

func (i *instrumented) Solve(initial core.Capacity, cat *core.Catalog) (core.Solution, error) {
	start := time.Now()
	sol, err := i.next.Solve(initial, cat)
	i.rec.RecordSolve(i.algo, time.Since(start), sol, err)

	return sol, err
}

func (i *instrumented) Best() core.Solution { return i.next.Best() }
