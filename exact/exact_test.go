package exact_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/builder"
	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/exact"
)

// TestExact_Fixture checks the reference instance: {B, C} = 220 for every solver.
func TestExact_Fixture(t *testing.T) {
	for _, sc := range allSolvers() {
		sc := sc
		t.Run(sc.name, func(t *testing.T) {
			cat, initial := builder.Fixture()
			s := sc.new()

			sol, err := s.Solve(initial, cat)
			require.NoError(t, err)
			require.Equal(t, int64(220), sol.Value)
			require.ElementsMatch(t, []string{"B", "C"}, sol.Choices)
			require.NoError(t, sol.Verify(initial, cat))

			// Best mirrors the returned solution.
			require.Equal(t, sol, s.Best())
		})
	}
}

// TestExact_AgreeWithReference cross-checks all solvers against a bitmask scan
// on reproducible random instances.
func TestExact_AgreeWithReference(t *testing.T) {
	for n := 0; n <= 15; n++ {
		cat, initial := randomInstance(t, n, seedDet+int64(n))
		want := bitmaskOptimum(cat, initial)

		for _, sc := range allSolvers() {
			sol, err := sc.new().Solve(initial, cat)
			require.NoError(t, err, "%s n=%d", sc.name, n)
			require.Equal(t, want, sol.Value, "%s n=%d", sc.name, n)
			require.NoError(t, sol.Verify(initial, cat), "%s n=%d", sc.name, n)
		}
	}
}

// TestExact_EmptyCatalog returns the empty solution.
func TestExact_EmptyCatalog(t *testing.T) {
	for _, sc := range allSolvers() {
		cat, err := core.NewCatalog()
		require.NoError(t, err)

		sol, err := sc.new().Solve(core.NewCapacity(10, 10), cat)
		require.NoError(t, err, sc.name)
		require.Equal(t, int64(0), sol.Value, sc.name)
		require.Empty(t, sol.Choices, sc.name)
	}
}

// TestExact_ZeroCapacity only zero-cost items can be taken.
func TestExact_ZeroCapacity(t *testing.T) {
	cat, err := core.NewCatalog(
		core.Item{ID: "heavy", Value: 50, Weight: 1, Volume: 0},
		core.Item{ID: "free", Value: 7, Weight: 0, Volume: 0},
	)
	require.NoError(t, err)

	for _, sc := range allSolvers() {
		sol, err := sc.new().Solve(core.NewCapacity(0, 0), cat)
		require.NoError(t, err, sc.name)
		require.Equal(t, int64(7), sol.Value, sc.name)
		require.Equal(t, []string{"free"}, sol.Choices, sc.name)
	}
}

// TestExact_NothingFits yields value 0 with no choices.
func TestExact_NothingFits(t *testing.T) {
	cat, err := core.NewCatalog(
		core.Item{ID: "a", Value: 5, Weight: 11, Volume: 1},
		core.Item{ID: "b", Value: 5, Weight: 1, Volume: 11},
	)
	require.NoError(t, err)

	for _, sc := range allSolvers() {
		sol, err := sc.new().Solve(core.NewCapacity(10, 10), cat)
		require.NoError(t, err, sc.name)
		require.Equal(t, core.Solution{}, sol, sc.name)
	}
}

// TestExact_TieKeepsFirstFound checks the strict improvement rule: with two
// equally valued singletons the first enumerated one is kept.
func TestExact_TieKeepsFirstFound(t *testing.T) {
	cat, err := core.NewCatalog(
		core.Item{ID: "x", Value: 10, Weight: 6, Volume: 1},
		core.Item{ID: "y", Value: 10, Weight: 6, Volume: 1},
	)
	require.NoError(t, err)
	initial := core.NewCapacity(10, 10)

	// Depth-first explores include before exclude, so {x} comes first.
	sol, err := exact.NewRecursive().Solve(initial, cat)
	require.NoError(t, err)
	require.Equal(t, []string{"x"}, sol.Choices)

	// Shared-structure order is [{x}, {}, {x,y}, {y}].
	sol, err = exact.NewIterative().Solve(initial, cat)
	require.NoError(t, err)
	require.Equal(t, []string{"x"}, sol.Choices)

	// Copy-on-grow order is [{}, {x}, {y}, {x,y}].
	sol, err = exact.NewIterativeCopy().Solve(initial, cat)
	require.NoError(t, err)
	require.Equal(t, []string{"x"}, sol.Choices)
}

// TestRecursive_Pruning counts visited nodes on the two extreme instances.
func TestRecursive_Pruning(t *testing.T) {
	const n = 6
	var (
		tooBig = make([]core.Item, n)
		tiny   = make([]core.Item, n)
	)
	for i := 0; i < n; i++ {
		id := builder.ExcelColumnIDFn(i)
		tooBig[i] = core.Item{ID: id, Value: 1, Weight: 100, Volume: 1}
		tiny[i] = core.Item{ID: id, Value: 1, Weight: 1, Volume: 1}
	}

	// Nothing fits: only the exclude chain is walked.
	cat, err := core.NewCatalog(tooBig...)
	require.NoError(t, err)
	r := exact.NewRecursive()
	_, err = r.Solve(core.NewCapacity(10, 10), cat)
	require.NoError(t, err)
	require.Equal(t, int64(n+1), r.Nodes())

	// Everything fits: the full binary tree is walked.
	cat, err = core.NewCatalog(tiny...)
	require.NoError(t, err)
	sol, err := r.Solve(core.NewCapacity(100, 100), cat)
	require.NoError(t, err)
	require.Equal(t, int64(1<<(n+1)-1), r.Nodes())
	require.Equal(t, int64(n), sol.Value)
}

// TestExact_Errors covers input validation and the size guards.
func TestExact_Errors(t *testing.T) {
	cat, initial := builder.Fixture()

	for _, sc := range allSolvers() {
		_, err := sc.new().Solve(initial, nil)
		require.ErrorIs(t, err, core.ErrNilCatalog, sc.name)

		_, err = sc.new().Solve(core.NewCapacity(-1, 5), cat)
		require.ErrorIs(t, err, core.ErrNegativeCapacity, sc.name)

		_, err = sc.new().Solve(core.Capacity{Value: 3, Weight: 5, Volume: 5}, cat)
		require.ErrorIs(t, err, core.ErrNonZeroStart, sc.name)

		_, err = sc.new(exact.WithMaxItems(2)).Solve(initial, cat)
		require.ErrorIs(t, err, exact.ErrTooManyItems, sc.name)
	}

	require.Panics(t, func() { exact.WithMaxItems(-1) })
}

// TestIterative_PowerSetCeiling rejects catalogs beyond the enumeration limit
// before allocating anything.
func TestIterative_PowerSetCeiling(t *testing.T) {
	items := make([]core.Item, 33)
	for i := range items {
		items[i] = core.Item{ID: builder.ExcelColumnIDFn(i), Value: 1, Weight: 1, Volume: 1}
	}
	cat, err := core.NewCatalog(items...)
	require.NoError(t, err)

	// An explicit limit above the ceiling does not lift it.
	_, err = exact.NewIterative(exact.WithMaxItems(40)).Solve(core.NewCapacity(1, 1), cat)
	require.ErrorIs(t, err, exact.ErrTooManyItems)
	_, err = exact.NewIterativeCopy(exact.WithMaxItems(40)).Solve(core.NewCapacity(1, 1), cat)
	require.ErrorIs(t, err, exact.ErrTooManyItems)
}

// TestIterative_DefaultLimit: without WithMaxItems the power-set solvers stop
// at DefaultPowerSetItems while Recursive stays unlimited.
func TestIterative_DefaultLimit(t *testing.T) {
	items := make([]core.Item, exact.DefaultPowerSetItems+1)
	for i := range items {
		items[i] = core.Item{ID: builder.ExcelColumnIDFn(i), Value: 1, Weight: 100, Volume: 1}
	}
	cat, err := core.NewCatalog(items...)
	require.NoError(t, err)
	initial := core.NewCapacity(10, 10)

	_, err = exact.NewIterative().Solve(initial, cat)
	require.ErrorIs(t, err, exact.ErrTooManyItems)
	_, err = exact.NewIterativeCopy().Solve(initial, cat)
	require.ErrorIs(t, err, exact.ErrTooManyItems)

	// Nothing fits, so the recursive walk is linear.
	r := exact.NewRecursive()
	sol, err := r.Solve(initial, cat)
	require.NoError(t, err)
	require.Equal(t, core.Solution{}, sol)
	require.Equal(t, int64(len(items)+1), r.Nodes())

	// A smaller explicit limit still applies.
	small, err := core.NewCatalog(items[:3]...)
	require.NoError(t, err)
	_, err = exact.NewIterative(exact.WithMaxItems(2)).Solve(initial, small)
	require.ErrorIs(t, err, exact.ErrTooManyItems)
	_, err = exact.NewIterative().Solve(initial, small)
	require.NoError(t, err)
}

// TestExact_DoesNotMutateCatalog runs every solver on the same catalog.
func TestExact_DoesNotMutateCatalog(t *testing.T) {
	cat, initial := randomInstance(t, 8, seedDet)
	before := cat.Items()

	for _, sc := range allSolvers() {
		_, err := sc.new().Solve(initial, cat)
		require.NoError(t, err)
	}
	require.Equal(t, before, cat.Items())
}
