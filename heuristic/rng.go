package heuristic

import "math/rand"

// Random stream policy for this package.
//
// Each solver owns exactly one *rand.Rand, created when the solver is built and
// advanced once per draw for its whole lifetime; trials never reseed it. A
// caller that runs several solvers from one base seed (solver.SolveAll does,
// for repeated algorithms) gives each its own stream with DeriveSeed, because a
// *rand.Rand must not be shared between goroutines.

// zeroSeedSubstitute replaces seed 0 so an unset seed is still reproducible.
const zeroSeedSubstitute int64 = 1

// newStream builds the solver's generator for seed.
func newStream(seed int64) *rand.Rand {
	if seed == 0 {
		seed = zeroSeedSubstitute
	}

	return rand.New(rand.NewSource(seed))
}

// golden is the 64-bit golden-ratio increment of the SplitMix64 sequence.
const golden = 0x9e3779b97f4a7c15

// DeriveSeed returns the seed of stream number stream under base: the
// (stream+1)-th SplitMix64 output started from base. Nearby bases or stream
// numbers give unrelated seeds.
func DeriveSeed(base int64, stream uint64) int64 {
	z := uint64(base) + (stream+1)*golden
	z = (z ^ z>>30) * 0xbf58476d1ce4e5b9
	z = (z ^ z>>27) * 0x94d049bb133111eb

	return int64(z ^ z>>31)
}
