// SPDX-License-Identifier: MIT
// Package: knapsack/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers use errors.Is.
//   - Context is attached with %w through builderErrorf.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewItems indicates a negative item count.
var ErrTooFewItems = errors.New("builder: item count too small")

// ErrNeedRandSource indicates a stochastic generator was called without an RNG
// (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadRange indicates a [min,max] range with min > max.
var ErrBadRange = errors.New("builder: invalid range")

// builderErrorf prefixes err with the generator name and a formatted detail,
// keeping err available to errors.Is.
func builderErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
