// SPDX-License-Identifier: MIT
// Package: knapsack/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn   = DefaultIDFn   ("0","1","2",...)
//   - rng    = nil           (RandomCatalog requires WithSeed/WithRand)
//   - value  = [1, 100]
//   - weight = [1, 50]
//   - volume = [1, 50]
//   - ratio  = 0.5

package builder

import "math/rand"

// span is an inclusive [lo, hi] integer range.
type span struct {
	lo, hi int64
}

// valid reports lo <= hi.
func (s span) valid() bool { return s.lo <= s.hi }

// draw returns a uniform value in [lo, hi].
func (s span) draw(r *rand.Rand) int64 {
	return s.lo + r.Int63n(s.hi-s.lo+1)
}

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	idFn   IDFn
	rng    *rand.Rand
	value  span
	weight span
	volume span
	ratio  float64
}

const (
	defaultValueLo  = int64(1)
	defaultValueHi  = int64(100)
	defaultCostLo   = int64(1)
	defaultCostHi   = int64(50)
	defaultCapRatio = 0.5
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   DefaultIDFn,
		rng:    nil,
		value:  span{defaultValueLo, defaultValueHi},
		weight: span{defaultCostLo, defaultCostHi},
		volume: span{defaultCostLo, defaultCostHi},
		ratio:  defaultCapRatio,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
