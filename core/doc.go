// Package core defines the shared data model of the knapsack solvers:
// Item, Catalog, the Capacity State, Solution, and the Solver capability
// every strategy implements.
//
// Data model:
//
//   - Item: ID plus non-negative value, weight and volume. Immutable.
//   - Catalog: insertion-ordered ID -> Item mapping. Built once, then read-only.
//     Insertion order is the enumeration order of every solver.
//   - Capacity: (value so far, remaining weight, remaining volume). A value
//     type; Add and Swap return new states. Feasible iff both remainders >= 0.
//   - Solution: best value plus the ordered, duplicate-free choice list.
//
// Errors:
//
//	ErrNilCatalog          - nil catalog passed to a solver.
//	ErrEmptyItemID         - item without ID.
//	ErrDuplicateItem       - ID already in the catalog.
//	ErrNegativeCost        - negative value, weight or volume.
//	ErrNegativeCapacity    - initial capacity below zero.
//	ErrNonZeroStart        - initial capacity already carries value.
//	ErrUnknownItem, ErrDuplicateChoice, ErrInfeasibleSolution, ErrValueMismatch
//	                       - Solution.Verify failures.
//
// An empty catalog and a zero-capacity container are valid inputs: every
// solver returns value 0 and no choices.
package core
