package heuristic

import (
	"math/rand"

	"github.com/katalvlaran/knapsack/core"
)

// Random is the repeated random greedy-fill solver.
type Random struct {
	reps int
	rng  *rand.Rand
	best core.Solution
}

// NewRandom returns a Random solver running reps trials per Solve.
func NewRandom(reps int, opts ...Option) (*Random, error) {
	if reps <= 0 {
		return nil, ErrInvalidReps
	}
	cfg := newConfig(opts)

	return &Random{reps: reps, rng: cfg.rng}, nil
}

// Reps returns the number of trials per Solve.
func (r *Random) Reps() int { return r.reps }

// Solve runs reps independent trials and keeps the first trial with the
// strictly highest value. An empty catalog yields value 0 and no choices.
func (r *Random) Solve(initial core.Capacity, cat *core.Catalog) (core.Solution, error) {
	if err := core.ValidateInputs(initial, cat); err != nil {
		return core.Solution{}, err
	}

	var best core.Solution
	for rep := 0; rep < r.reps; rep++ {
		t := newTrial(cat, initial, r.rng)
		t.fill()
		if t.state.Value-initial.Value > best.Value {
			best = t.solution(initial.Value)
		}
	}
	r.best = best

	return r.best.Clone(), nil
}

// Best returns the result of the last Solve.
func (r *Random) Best() core.Solution { return r.best.Clone() }
