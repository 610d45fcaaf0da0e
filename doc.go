// Package knapsack solves the two-constraint 0/1 knapsack problem: choose a
// subset of items, each with a value, a weight and a volume, that maximizes
// total value while the summed weight and volume stay within the container.
//
// What is inside
//
//	core/      - Item, Catalog, Capacity State, Solution and the Solver interface
//	exact/     - depth-first search with pruning, two power-set enumerations
//	heuristic/ - randomized greedy fill, with and without dominance swaps
//	solver/    - one dispatcher over every strategy, plus concurrent SolveAll
//	csvio/     - instance loader and solution writer (CSV text format)
//	builder/   - reproducible random instances and the reference fixture
//	metrics/   - Prometheus recorder and a Solver decorator
//	cmd/knapsack - the command-line driver (solve, run, generate, config)
//
// Guarantees
//
//   - The exact strategies always return an optimal value; on ties the first
//     optimum in their enumeration order wins.
//   - The heuristics always return a feasible solution whose value never
//     exceeds the optimum. Equal seeds give equal results.
//   - Solvers never mutate the Catalog they are given.
//
// Quick start
//
//	cat, initial, _ := csvio.LoadFile("ks_10.csv")
//	sol, _ := solver.Solve(initial, cat, solver.DefaultOptions())
//	_ = csvio.Write(os.Stdout, sol)
package knapsack
