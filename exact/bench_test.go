// Package exact_test - benchmarks for the exact solvers.
// Inputs are built outside the timer with fixed seeds.
package exact_test

import "testing"

func benchExact(b *testing.B, sc solverCase, n int) {
	cat, initial := randomInstance(b, n, seedDet)
	s := sc.new()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Solve(initial, cat); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRecursive_n16(b *testing.B)     { benchExact(b, allSolvers()[0], 16) }
func BenchmarkIterative_n16(b *testing.B)     { benchExact(b, allSolvers()[1], 16) }
func BenchmarkIterativeCopy_n16(b *testing.B) { benchExact(b, allSolvers()[2], 16) }
