package builder

import "math/rand"

// Option customizes a generator call.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

func newConfig(opts ...Option) config {
	var c config // no RNG unless explicitly set
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithRand uses r as the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed uses a fresh source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
