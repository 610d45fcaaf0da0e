package core

import (
	"fmt"
	"slices"
)

// Solution is the best (value, ordered choice list) a solver found.
// Choices lists item IDs in the order they were added; the order is for
// presentation only. A Solution is not modified after Solve returns it.
type Solution struct {
	// Value is the total value of the chosen items.
	Value int64

	// Choices is the ordered, duplicate-free list of chosen item IDs.
	Choices []string
}

// Len returns the number of chosen items.
func (s Solution) Len() int { return len(s.Choices) }

// Contains reports whether id was chosen.
func (s Solution) Contains(id string) bool {
	return slices.Contains(s.Choices, id)
}

// Clone returns a deep copy of s.
func (s Solution) Clone() Solution {
	return Solution{Value: s.Value, Choices: slices.Clone(s.Choices)}
}

// Verify checks s against the catalog and the initial capacity it was solved for:
//   - every choice exists in cat and appears once,
//   - summed weight and volume stay within initial,
//   - Value equals the summed values.
//
// Complexity: O(k) for k chosen items.
func (s Solution) Verify(initial Capacity, cat *Catalog) error {
	if cat == nil {
		return ErrNilCatalog
	}
	var (
		seen  = make(map[string]struct{}, len(s.Choices))
		state = initial
	)
	for _, id := range s.Choices {
		it, ok := cat.Item(id)
		if !ok {
			return fmt.Errorf("%q: %w", id, ErrUnknownItem)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%q: %w", id, ErrDuplicateChoice)
		}
		seen[id] = struct{}{}
		state = state.Add(it)
	}
	if !state.Feasible() {
		return fmt.Errorf("remaining weight=%d volume=%d: %w", state.Weight, state.Volume, ErrInfeasibleSolution)
	}
	if state.Value-initial.Value != s.Value {
		return fmt.Errorf("reported %d, items sum to %d: %w", s.Value, state.Value-initial.Value, ErrValueMismatch)
	}

	return nil
}
