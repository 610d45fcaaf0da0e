package builder_test

import (
	"testing"

	"github.com/katalvlaran/knapsack/builder"
)

// assertPanics fails the test if fn returns without panicking.
func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic, but none occurred", name)
		}
	}()
	fn()
}

// TestIDFns checks every ID scheme on representative indices.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"Default_zero", builder.DefaultIDFn, 0, "0", false},
		{"Default_multi", builder.DefaultIDFn, 123, "123", false},
		{"Excel_A", builder.ExcelColumnIDFn, 0, "A", false},
		{"Excel_Z", builder.ExcelColumnIDFn, 25, "Z", false},
		{"Excel_AA", builder.ExcelColumnIDFn, 26, "AA", false},
		{"Excel_AZ", builder.ExcelColumnIDFn, 51, "AZ", false},
		{"Excel_BA", builder.ExcelColumnIDFn, 52, "BA", false},
		{"Excel_ZZ", builder.ExcelColumnIDFn, 701, "ZZ", false},
		{"Excel_AAA", builder.ExcelColumnIDFn, 702, "AAA", false},
		{"Excel_negative", builder.ExcelColumnIDFn, -1, "", true},
		{"Prefix_item", builder.PrefixIDFn("item"), 7, "item7", false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				assertPanics(t, func() { tc.fn(tc.input) }, tc.name)
				return
			}
			if got := tc.fn(tc.input); got != tc.want {
				t.Errorf("%s(%d) = %q; want %q", tc.name, tc.input, got, tc.want)
			}
		})
	}
}
