// Package heuristic provides randomized solvers for the two-constraint
// (weight and volume) 0/1 knapsack problem.
//
// What:
//
//   - Random: repeated random greedy fill without replacement. Each trial
//     draws uniformly among items not yet tried and adds them while they fit;
//     the first item that does not fit ends the trial (it is discarded, the
//     items accepted before it are kept). A trial also ends when every item
//     has been tried. The best trial over reps trials wins.
//   - RandomImproved: the same fill, plus one local-swap pass at the moment a
//     trial first overflows. Every item outside the trial's choice list is
//     compared against one uniformly drawn incumbent; if it dominates the
//     incumbent (strictly lighter, strictly smaller, strictly more valuable)
//     the two are swapped.
//
// Neither solver guarantees optimality. The swap rule looks at one random
// incumbent per candidate rather than the best candidate/incumbent pair, so it
// can miss beneficial swaps; this is the intended behavior.
//
// Randomness:
//
// One *rand.Rand per solver, advanced once per draw and never reseeded between
// trials. WithSeed fixes the stream (seed 0 maps to a fixed default seed);
// WithRand injects a caller-owned generator. Equal seeds give equal results,
// and with a fixed seed a run with more reps sees the same first trials as a
// run with fewer, so the best value never decreases as reps grows.
//
// Complexity (per trial, n items):
//
//   - Random:          O(n) time, O(n) space.
//   - RandomImproved:  O(n) time plus O(n·k) for swaps (k = choice list length).
//
// Errors:
//
//   - ErrInvalidReps                                               reps <= 0 at construction
//   - core.ErrNilCatalog, core.ErrNegativeCapacity, core.ErrNonZeroStart
package heuristic
