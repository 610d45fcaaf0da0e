package exact

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/knapsack/core"
)

// DefaultPowerSetItems is the catalog limit the iterative solvers apply when
// no MaxItems is set. 2^20 combinations stay in the tens of megabytes even
// with one cloned slice per combination.
const DefaultPowerSetItems = 20

// maxPowerSetItems is the ceiling for the iterative solvers even with an
// explicit MaxItems: 2^32 materialized combinations need hundreds of
// gigabytes before scoring starts.
const maxPowerSetItems = 32

// ErrTooManyItems is returned when the catalog is larger than the solver limit.
var ErrTooManyItems = errors.New("exact: catalog too large for exhaustive search")

// Option configures an exact solver.
type Option func(*Options)

// Options holds the knobs shared by the exact solvers.
type Options struct {
	// MaxItems rejects catalogs with more items before any work is done.
	// 0 means unlimited for Recursive and DefaultPowerSetItems for the
	// iterative solvers, which never accept more than 32 items.
	MaxItems int
}

// DefaultOptions returns Options with no item limit.
func DefaultOptions() Options {
	return Options{MaxItems: 0}
}

// WithMaxItems limits the catalog size accepted by Solve.
// Panics on negative n.
func WithMaxItems(n int) Option {
	if n < 0 {
		panic("exact: WithMaxItems(n<0)")
	}
	return func(o *Options) {
		o.MaxItems = n
	}
}

func newOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// checkInputs runs the shared validation plus the size guard.
func checkInputs(initial core.Capacity, cat *core.Catalog, limit int) error {
	if err := core.ValidateInputs(initial, cat); err != nil {
		return err
	}
	if limit > 0 && cat.Len() > limit {
		return fmt.Errorf("%d items, limit %d: %w", cat.Len(), limit, ErrTooManyItems)
	}

	return nil
}
