package exact

import (
	"slices"

	"github.com/katalvlaran/knapsack/core"
)

// Recursive is the exact depth-first solver.
type Recursive struct {
	opts  Options
	best  core.Solution
	nodes int64
}

// NewRecursive returns a Recursive solver.
func NewRecursive(opts ...Option) *Recursive {
	return &Recursive{opts: newOptions(opts)}
}

// recursiveWalker carries the search state of one Solve call.
type recursiveWalker struct {
	cat         *core.Catalog
	bestValue   int64
	bestChoices []string
	nodes       int64
}

// Solve explores the full include/exclude tree and returns the optimum.
//
// At each node the accumulated value becomes the new best only when it is
// strictly greater than the best so far. The include branch is entered only
// when the current item fits; the exclude branch is always entered.
func (r *Recursive) Solve(initial core.Capacity, cat *core.Catalog) (core.Solution, error) {
	if err := checkInputs(initial, cat, r.opts.MaxItems); err != nil {
		return core.Solution{}, err
	}

	w := &recursiveWalker{cat: cat}
	w.descend(0, initial, nil)

	r.nodes = w.nodes
	r.best = core.Solution{Value: w.bestValue, Choices: w.bestChoices}

	return r.best.Clone(), nil
}

// Best returns the result of the last Solve.
func (r *Recursive) Best() core.Solution { return r.best.Clone() }

// Nodes reports how many decision nodes the last Solve visited.
func (r *Recursive) Nodes() int64 { return r.nodes }

// descend visits the decision node for item pos. choices is never mutated:
// the include branch appends to a clipped copy.
func (w *recursiveWalker) descend(pos int, state core.Capacity, choices []string) {
	w.nodes++

	if state.Value > w.bestValue {
		w.bestValue = state.Value
		w.bestChoices = slices.Clone(choices)
	}
	if pos == w.cat.Len() {
		return
	}

	it := w.cat.At(pos)
	if state.Fits(it) {
		w.descend(pos+1, state.Add(it), append(slices.Clip(choices), it.ID))
	}
	w.descend(pos+1, state, choices)
}
