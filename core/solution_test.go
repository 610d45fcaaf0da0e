package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/core"
)

func fixture(t *testing.T) (*core.Catalog, core.Capacity) {
	t.Helper()
	cat, err := core.NewCatalog(
		core.Item{ID: "A", Value: 60, Weight: 5, Volume: 4},
		core.Item{ID: "B", Value: 100, Weight: 4, Volume: 6},
		core.Item{ID: "C", Value: 120, Weight: 6, Volume: 3},
	)
	require.NoError(t, err)

	return cat, core.NewCapacity(10, 10)
}

func TestSolution_Verify(t *testing.T) {
	cat, initial := fixture(t)

	tests := []struct {
		name string
		sol  core.Solution
		want error
	}{
		{"optimum", core.Solution{Value: 220, Choices: []string{"B", "C"}}, nil},
		{"empty", core.Solution{}, nil},
		{"unknown", core.Solution{Value: 0, Choices: []string{"Z"}}, core.ErrUnknownItem},
		{"duplicate", core.Solution{Value: 120, Choices: []string{"A", "A"}}, core.ErrDuplicateChoice},
		{"overweight", core.Solution{Value: 280, Choices: []string{"A", "B", "C"}}, core.ErrInfeasibleSolution},
		{"wrong value", core.Solution{Value: 221, Choices: []string{"B", "C"}}, core.ErrValueMismatch},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := tc.sol.Verify(initial, cat)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}

	require.ErrorIs(t, core.Solution{}.Verify(initial, nil), core.ErrNilCatalog)
}

func TestSolution_CloneAndContains(t *testing.T) {
	sol := core.Solution{Value: 3, Choices: []string{"a", "b"}}
	cp := sol.Clone()
	cp.Choices[0] = "x"

	require.Equal(t, "a", sol.Choices[0])
	require.True(t, sol.Contains("b"))
	require.False(t, sol.Contains("x"))
	require.Equal(t, 2, sol.Len())
}

func TestValidateInputs(t *testing.T) {
	cat, initial := fixture(t)

	require.NoError(t, core.ValidateInputs(initial, cat))
	require.ErrorIs(t, core.ValidateInputs(initial, nil), core.ErrNilCatalog)
	require.ErrorIs(t, core.ValidateInputs(core.NewCapacity(-1, 0), cat), core.ErrNegativeCapacity)
}
