package heuristic

import (
	"errors"
	"math/rand"
)

// ErrInvalidReps is returned when a solver is built with reps <= 0.
var ErrInvalidReps = errors.New("heuristic: reps must be positive")

// Option configures a randomized solver.
type Option func(*config)

// config is resolved once at construction time.
type config struct {
	seed int64
	rng  *rand.Rand
}

// WithSeed fixes the random stream. Seed 0 selects the default seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.rng = nil
	}
}

// WithRand injects a caller-owned generator. The solver advances it on every
// draw; do not share it with other goroutines. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("heuristic: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// newConfig applies opts in order (last wins) and resolves the generator.
func newConfig(opts []Option) config {
	var c config
	for _, fn := range opts {
		fn(&c)
	}
	if c.rng == nil {
		c.rng = newStream(c.seed)
	}

	return c
}
