// SPDX-License-Identifier: MIT
// Package: knapsack/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a generator by mutating a builderConfig before
// generation begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the item ID generator: idx -> string. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithValueRange sets the inclusive range item values are drawn from.
// Panics on a negative bound.
func WithValueRange(lo, hi int64) BuilderOption {
	if lo < 0 || hi < 0 {
		panic("builder: WithValueRange(negative bound)")
	}
	return func(c *builderConfig) {
		c.value = span{lo, hi}
	}
}

// WithWeightRange sets the inclusive range item weights are drawn from.
// Panics on a negative bound.
func WithWeightRange(lo, hi int64) BuilderOption {
	if lo < 0 || hi < 0 {
		panic("builder: WithWeightRange(negative bound)")
	}
	return func(c *builderConfig) {
		c.weight = span{lo, hi}
	}
}

// WithVolumeRange sets the inclusive range item volumes are drawn from.
// Panics on a negative bound.
func WithVolumeRange(lo, hi int64) BuilderOption {
	if lo < 0 || hi < 0 {
		panic("builder: WithVolumeRange(negative bound)")
	}
	return func(c *builderConfig) {
		c.volume = span{lo, hi}
	}
}

// WithCapacityRatio sizes the container as ratio × the catalog's total weight
// and total volume (rounded down). Panics unless 0 <= ratio.
func WithCapacityRatio(ratio float64) BuilderOption {
	if ratio < 0 {
		panic("builder: WithCapacityRatio(ratio<0)")
	}
	return func(c *builderConfig) {
		c.ratio = ratio
	}
}
