package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/knapsack/core"
)

// Algorithm selects a solving strategy.
type Algorithm int

// Supported algorithms.
const (
	Recursive Algorithm = iota
	Iterative
	IterativeCopy
	Random
	RandomImproved
)

var algorithmNames = [...]string{
	Recursive:      "recursive",
	Iterative:      "iterative",
	IterativeCopy:  "iterative-copy",
	Random:         "random",
	RandomImproved: "random-improved",
}

// Default trial counts per heuristic when Options.Reps is 0.
const (
	DefaultRandomReps         = 1000
	DefaultRandomImprovedReps = 5000
)

var (
	// ErrUnsupportedAlgorithm indicates an unknown Algorithm value or name.
	ErrUnsupportedAlgorithm = errors.New("solver: unsupported algorithm")

	// ErrInvalidReps indicates a negative trial count.
	ErrInvalidReps = errors.New("solver: reps must not be negative")

	// ErrInvalidMaxItems indicates a negative catalog size limit.
	ErrInvalidMaxItems = errors.New("solver: max items must not be negative")
)

// String returns the canonical lower-case name.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// Exact reports whether the algorithm guarantees the optimum.
func (a Algorithm) Exact() bool {
	return a == Recursive || a == Iterative || a == IterativeCopy
}

// ParseAlgorithm maps a name (case-insensitive, "_" accepted for "-") to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, n := range algorithmNames {
		if n == key {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnsupportedAlgorithm)
}

// Algorithms returns every supported algorithm in declaration order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithmNames))
	for i := range out {
		out[i] = Algorithm(i)
	}

	return out
}

// Options configures New, Solve and SolveAll.
type Options struct {
	// Algo is the strategy used by New and Solve.
	Algo Algorithm

	// Reps is the number of trials for heuristics. 0 selects the per-algorithm
	// default (DefaultRandomReps, DefaultRandomImprovedReps).
	Reps int

	// Seed fixes the heuristic random stream; 0 selects the fixed default seed.
	Seed int64

	// MaxItems caps the catalog size accepted by exact algorithms. 0 selects
	// the exact package defaults: unlimited for Recursive and
	// exact.DefaultPowerSetItems for the power-set variants.
	MaxItems int

	// Wrap, if non-nil, decorates every solver built by New (metrics, tracing).
	Wrap func(Algorithm, core.Solver) core.Solver
}

// DefaultOptions returns Options for the exact recursive solver.
func DefaultOptions() Options {
	return Options{
		Algo:     Recursive,
		Reps:     0,
		Seed:     0,
		MaxItems: 0,
		Wrap:     nil,
	}
}

// validateOptions checks Options independently of any catalog.
func validateOptions(opts Options) error {
	if opts.Reps < 0 {
		return ErrInvalidReps
	}
	if opts.MaxItems < 0 {
		return ErrInvalidMaxItems
	}
	if opts.Algo < 0 || int(opts.Algo) >= len(algorithmNames) {
		return ErrUnsupportedAlgorithm
	}

	return nil
}

// repsFor resolves the trial count for a heuristic.
func repsFor(opts Options) int {
	if opts.Reps > 0 {
		return opts.Reps
	}
	if opts.Algo == RandomImproved {
		return DefaultRandomImprovedReps
	}

	return DefaultRandomReps
}
