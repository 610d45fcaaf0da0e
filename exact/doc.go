// Package exact provides exhaustive solvers for the two-constraint (weight and
// volume) 0/1 knapsack problem.
//
// What:
//
//   - Recursive: depth-first include/exclude decision tree over the catalog in
//     insertion order. The include branch is explored only when the item fits
//     (feasibility pruning); the exclude branch is always explored.
//   - Iterative: materializes the power set of item IDs by structural sharing
//     (each combination points at the combination it extends), then scores
//     every combination.
//   - IterativeCopy: same enumeration, but the whole in-progress list is
//     deep-copied before every item is added. Strictly more expensive, same
//     optimum; kept as the explicit-copy variant.
//
// All three return the true optimum. Ties keep the first solution found
// (strict ">" updates), so results are deterministic for a given catalog order.
//
// Complexity:
//
//   - Recursive:      Time O(2ⁿ) node visits worst case, Memory O(n²) for the stack and branch choice lists.
//   - Iterative:      Time O(n·2ⁿ), Memory O(2ⁿ) nodes.
//   - IterativeCopy:  Time O(n·2ⁿ), Memory O(n·2ⁿ).
//
// There is no cancellation: callers bound run time by capping catalog size,
// either themselves or through WithMaxItems. The iterative solvers materialize
// the whole power set, so they refuse more than DefaultPowerSetItems items
// unless WithMaxItems raises the limit (at most 32).
//
// Errors:
//
//   - core.ErrNilCatalog, core.ErrNegativeCapacity, core.ErrNonZeroStart  invalid inputs
//   - ErrTooManyItems                                                     catalog exceeds the configured limit
package exact
