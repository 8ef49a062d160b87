package greedy

import (
	"math/rand"
	"time"
)

// Order selects which end of the score ranking the builder favours.
type Order int

const (
	// Descending favours the highest-scoring (easiest to close) cycles.
	Descending Order = iota
	// Ascending favours the lowest-scoring cycles, which tend to contain
	// hard-to-match pairs.
	Ascending
)

// Defaults applied by New.
const (
	DefaultRetention = 1.0
	DefaultPoolSize  = 10
)

// Option customizes a Builder.
type Option func(*options)

type options struct {
	retention float64
	poolSize  int
	rng       *rand.Rand
	order     Order
}

func defaultOptions() options {
	return options{retention: DefaultRetention, poolSize: DefaultPoolSize, order: Descending}
}

// WithRetention keeps only the best ceil(f·C) cycles of the catalog.
// Panics unless 0 < f ≤ 1.
func WithRetention(f float64) Option {
	if !(f > 0 && f <= 1) {
		panic("greedy: WithRetention(f) requires 0 < f <= 1")
	}
	return func(o *options) { o.retention = f }
}

// WithPoolSize sets R, the number of top candidates drawn from per step.
// Panics if r < 1.
func WithPoolSize(r int) Option {
	if r < 1 {
		panic("greedy: WithPoolSize(r<1)")
	}
	return func(o *options) { o.poolSize = r }
}

// WithSeed makes the builder reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand provides an explicit random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("greedy: WithRand(nil)")
	}
	return func(o *options) { o.rng = r }
}

// WithOrder selects the ranking direction.
// Panics on values other than Descending and Ascending.
func WithOrder(ord Order) Option {
	if ord != Descending && ord != Ascending {
		panic("greedy: WithOrder(unknown order)")
	}
	return func(o *options) { o.order = ord }
}

// timeSeeded is the source used when no seed is configured.
func timeSeeded() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
