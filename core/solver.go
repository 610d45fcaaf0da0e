package core

// Solver is the capability shared by every strategy: take an initial Capacity
// State and a Catalog, return the best Solution found.
//
// Implementations run synchronously to completion, never mutate cat and keep
// no state between calls other than the last result exposed by Best.
// A Solver instance is not safe for concurrent Solve calls.
type Solver interface {
	// Solve searches cat under initial and returns the best Solution.
	Solve(initial Capacity, cat *Catalog) (Solution, error)

	// Best returns the Solution of the last successful Solve call
	// (value 0 and no choices before the first call).
	Best() Solution
}

// ValidateInputs performs the checks every solver runs before searching.
//
// Errors: ErrNilCatalog, ErrNegativeCapacity, ErrNonZeroStart.
func ValidateInputs(initial Capacity, cat *Catalog) error {
	if cat == nil {
		return ErrNilCatalog
	}

	return initial.Validate()
}
