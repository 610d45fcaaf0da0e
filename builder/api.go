// SPDX-License-Identifier: MIT
// Package: knapsack/builder
//
// api.go - public generators.

package builder

import (
	"github.com/katalvlaran/knapsack/core"
)

// Method names used in wrapped errors.
const (
	MethodRandomCatalog = "RandomCatalog"
)

// RandomCatalog draws n items with values, weights and volumes uniform in the
// configured ranges and sizes the container with the configured capacity
// ratio. n == 0 yields an empty catalog with a zero-capacity container.
//
// Errors: ErrTooFewItems, ErrNeedRandSource, ErrBadRange (wrapped with the
// method name).
//
// Complexity: O(n) time and space.
func RandomCatalog(n int, opts ...BuilderOption) (*core.Catalog, core.Capacity, error) {
	cfg := newBuilderConfig(opts...)

	// 1. Validate in priority order: size, rng, ranges.
	if n < 0 {
		return nil, core.Capacity{}, builderErrorf(MethodRandomCatalog, "n=%d", ErrTooFewItems, n)
	}
	if cfg.rng == nil {
		return nil, core.Capacity{}, builderErrorf(MethodRandomCatalog, "no rng", ErrNeedRandSource)
	}
	ranges := [...]struct {
		name string
		s    span
	}{{"value", cfg.value}, {"weight", cfg.weight}, {"volume", cfg.volume}}
	for _, r := range ranges {
		if !r.s.valid() {
			return nil, core.Capacity{}, builderErrorf(MethodRandomCatalog, "%s [%d,%d]", ErrBadRange, r.name, r.s.lo, r.s.hi)
		}
	}

	// 2. Draw items in index order so the stream is stable for a seed.
	items := make([]core.Item, n)
	for i := range items {
		items[i] = core.Item{
			ID:     cfg.idFn(i),
			Value:  cfg.value.draw(cfg.rng),
			Weight: cfg.weight.draw(cfg.rng),
			Volume: cfg.volume.draw(cfg.rng),
		}
	}
	cat, err := core.NewCatalog(items...)
	if err != nil {
		return nil, core.Capacity{}, builderErrorf(MethodRandomCatalog, "catalog", err)
	}

	// 3. Size the container from the totals.
	_, weight, volume := cat.Totals()
	initial := core.NewCapacity(int64(float64(weight)*cfg.ratio), int64(float64(volume)*cfg.ratio))

	return cat, initial, nil
}

// Fixture returns the three-item reference instance: capacity 10/10 and
// A=(60,5,4), B=(100,4,6), C=(120,6,3). Its unique optimum is {B, C} = 220.
// The data is constant, so the catalog construction cannot fail.
func Fixture() (*core.Catalog, core.Capacity) {
	cat, err := core.NewCatalog(
		core.Item{ID: "A", Value: 60, Weight: 5, Volume: 4},
		core.Item{ID: "B", Value: 100, Weight: 4, Volume: 6},
		core.Item{ID: "C", Value: 120, Weight: 6, Volume: 3},
	)
	if err != nil {
		panic(err)
	}

	return cat, core.NewCapacity(10, 10)
}
