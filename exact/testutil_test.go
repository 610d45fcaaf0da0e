// Package exact_test - shared helpers for the exact solver tests.
package exact_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/builder"
	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/exact"
)

// seedDet is the base seed for every generated instance in this package.
const seedDet int64 = 20240917

// solverCase names one exact solver constructor.
type solverCase struct {
	name string
	new  func(opts ...exact.Option) core.Solver
}

// allSolvers lists the three exact strategies in a stable order.
func allSolvers() []solverCase {
	return []solverCase{
		{"recursive", func(opts ...exact.Option) core.Solver { return exact.NewRecursive(opts...) }},
		{"iterative", func(opts ...exact.Option) core.Solver { return exact.NewIterative(opts...) }},
		{"iterative-copy", func(opts ...exact.Option) core.Solver { return exact.NewIterativeCopy(opts...) }},
	}
}

// randomInstance builds a reproducible n-item instance.
func randomInstance(t testing.TB, n int, seed int64) (*core.Catalog, core.Capacity) {
	t.Helper()
	cat, initial, err := builder.RandomCatalog(n, builder.WithSeed(seed), builder.WithExcelColumnIDs())
	require.NoError(t, err)

	return cat, initial
}

// bitmaskOptimum is an independent reference: it scans every subset mask and
// returns the best feasible value.
func bitmaskOptimum(cat *core.Catalog, initial core.Capacity) int64 {
	var best int64
	n := cat.Len()
	for mask := 0; mask < 1<<n; mask++ {
		state := initial
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				state = state.Add(cat.At(i))
			}
		}
		if state.Feasible() && state.Value > best {
			best = state.Value
		}
	}

	return best
}
