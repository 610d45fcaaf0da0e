// Package solver - dispatcher for knapsack strategies.
//
// This file provides the canonical entry points:
//
//   - New: build the core.Solver selected by Options.Algo.
//   - Solve: validate, build and run in one call.
//   - SolveAll: run several strategies over the same inputs concurrently.
//
// Design principles:
//   - Deterministic: heuristics are seeded from Options.Seed, never from time.
//   - Sentinel errors only; solver errors are wrapped with the algorithm name.
package solver

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/exact"
	"github.com/katalvlaran/knapsack/heuristic"
)

// New validates opts and builds the selected solver.
//
// Errors: ErrUnsupportedAlgorithm, ErrInvalidReps, ErrInvalidMaxItems.
func New(opts Options) (core.Solver, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	var (
		s   core.Solver
		err error
	)
	switch opts.Algo {
	case Recursive:
		s = exact.NewRecursive(exact.WithMaxItems(opts.MaxItems))

	case Iterative:
		s = exact.NewIterative(exact.WithMaxItems(opts.MaxItems))

	case IterativeCopy:
		s = exact.NewIterativeCopy(exact.WithMaxItems(opts.MaxItems))

	case Random:
		s, err = heuristic.NewRandom(repsFor(opts), heuristic.WithSeed(opts.Seed))

	case RandomImproved:
		s, err = heuristic.NewRandomImproved(repsFor(opts), heuristic.WithSeed(opts.Seed))

	default:
		return nil, ErrUnsupportedAlgorithm
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.Algo, err)
	}

	if opts.Wrap != nil {
		s = opts.Wrap(opts.Algo, s)
	}

	return s, nil
}

// Solve builds the solver for opts.Algo and runs it once.
func Solve(initial core.Capacity, cat *core.Catalog, opts Options) (core.Solution, error) {
	s, err := New(opts)
	if err != nil {
		return core.Solution{}, err
	}
	sol, err := s.Solve(initial, cat)
	if err != nil {
		return core.Solution{}, fmt.Errorf("%s: %w", opts.Algo, err)
	}

	return sol, nil
}

// Result is the outcome of one strategy inside SolveAll.
type Result struct {
	Algo     Algorithm
	Solution core.Solution
	Elapsed  time.Duration
}

// SolveAll runs every algorithm in algos on the same inputs, at most
// GOMAXPROCS at a time, and returns results in the order of algos.
//
// Every entry gets its own solver instance. The first occurrence of an
// algorithm uses opts.Seed unchanged, so it returns what Solve returns for the
// same options; the k-th repeat draws from DeriveSeed(opts.Seed, k) so repeated
// names do not replay the same trials. The first error cancels strategies not yet started;
// strategies already running finish (solvers have no cancellation points).
func SolveAll(ctx context.Context, initial core.Capacity, cat *core.Catalog, algos []Algorithm, opts Options) ([]Result, error) {
	if err := core.ValidateInputs(initial, cat); err != nil {
		return nil, err
	}

	results := make([]Result, len(algos))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	seen := make(map[Algorithm]uint64, len(algos))
	for i, algo := range algos {
		i, algo := i, algo
		entry := opts
		entry.Algo = algo
		if k := seen[algo]; k > 0 {
			entry.Seed = heuristic.DeriveSeed(opts.Seed, k)
		}
		seen[algo]++

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			sol, err := Solve(initial, cat, entry)
			if err != nil {
				return err
			}
			results[i] = Result{Algo: algo, Solution: sol, Elapsed: time.Since(start)}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
