package heuristic

import (
	"math/rand"

	"github.com/katalvlaran/knapsack/core"
)

// RandomImproved is Random plus a dominance-swap pass at each trial's first
// overflow.
type RandomImproved struct {
	reps  int
	rng   *rand.Rand
	best  core.Solution
	swaps int
}

// NewRandomImproved returns a RandomImproved solver running reps trials per Solve.
func NewRandomImproved(reps int, opts ...Option) (*RandomImproved, error) {
	if reps <= 0 {
		return nil, ErrInvalidReps
	}
	cfg := newConfig(opts)

	return &RandomImproved{reps: reps, rng: cfg.rng}, nil
}

// Reps returns the number of trials per Solve.
func (r *RandomImproved) Reps() int { return r.reps }

// Solve runs reps trials. A trial that overflows runs the replacement pass
// exactly once before it is scored; a trial that tried every item without
// overflowing is scored as is.
func (r *RandomImproved) Solve(initial core.Capacity, cat *core.Catalog) (core.Solution, error) {
	if err := core.ValidateInputs(initial, cat); err != nil {
		return core.Solution{}, err
	}

	var best core.Solution
	r.swaps = 0
	for rep := 0; rep < r.reps; rep++ {
		t := newTrial(cat, initial, r.rng)
		if t.fill() {
			t.improve()
			r.swaps += t.swaps
		}
		if t.state.Value-initial.Value > best.Value {
			best = t.solution(initial.Value)
		}
	}
	r.best = best

	return r.best.Clone(), nil
}

// Best returns the result of the last Solve.
func (r *RandomImproved) Best() core.Solution { return r.best.Clone() }

// Swaps reports how many replacements the last Solve performed across all trials.
func (r *RandomImproved) Swaps() int { return r.swaps }
