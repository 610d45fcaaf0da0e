// Package solver is the single entry point to every knapsack strategy.
//
// It maps an Algorithm to a concrete core.Solver from the exact and heuristic
// packages, validates Options once, and offers SolveAll to run several
// strategies over the same catalog concurrently.
//
// Algorithms:
//
//   - Recursive       exact, depth-first with feasibility pruning
//   - Iterative       exact, power set with structural sharing
//   - IterativeCopy   exact, power set with copy-on-grow
//   - Random          heuristic, repeated random greedy fill
//   - RandomImproved  heuristic, random fill plus dominance swaps
//
// Each strategy is single-threaded and synchronous. SolveAll gives every
// strategy its own solver instance and random stream, so concurrent runs share
// nothing but the read-only catalog. The first occurrence of an algorithm uses
// Options.Seed unchanged and matches Solve; repeats get
// heuristic.DeriveSeed(Options.Seed, k).
//
// Errors:
//
//   - ErrUnsupportedAlgorithm  unknown Algorithm or name
//   - ErrInvalidReps           Reps <= 0 for a heuristic
//   - errors from core, exact and heuristic, wrapped with the algorithm name
package solver
