package jumpstart

import (
	"log/slog"
	"time"

	"github.com/katalvlaran/kxtabu/greedy"
	"github.com/katalvlaran/kxtabu/telemetry"
)

// DefaultRuns is the greedy run budget used when neither WithRuns nor
// WithBudget is given.
const DefaultRuns = 1000

// Option customizes Build.
type Option func(*options)

type options struct {
	runs    int
	budget  time.Duration
	greedy  []greedy.Option
	logger  *slog.Logger
	metrics *telemetry.Metrics
}

func defaultOptions() options {
	return options{runs: DefaultRuns, logger: slog.Default()}
}

// WithRuns sets a fixed number of greedy runs. Panics if n < 1.
func WithRuns(n int) Option {
	if n < 1 {
		panic("jumpstart: WithRuns(n<1)")
	}
	return func(o *options) { o.runs, o.budget = n, 0 }
}

// WithBudget replaces the run count with a wall-clock budget for the
// greedy phase. At least one run is always made. Panics if d <= 0.
func WithBudget(d time.Duration) Option {
	if d <= 0 {
		panic("jumpstart: WithBudget(d<=0)")
	}
	return func(o *options) { o.budget = d }
}

// WithRetention forwards greedy.WithRetention.
func WithRetention(f float64) Option {
	g := greedy.WithRetention(f)
	return func(o *options) { o.greedy = append(o.greedy, g) }
}

// WithPoolSize forwards greedy.WithPoolSize.
func WithPoolSize(r int) Option {
	g := greedy.WithPoolSize(r)
	return func(o *options) { o.greedy = append(o.greedy, g) }
}

// WithSeed forwards greedy.WithSeed.
func WithSeed(seed int64) Option {
	return func(o *options) { o.greedy = append(o.greedy, greedy.WithSeed(seed)) }
}

// WithOrder forwards greedy.WithOrder.
func WithOrder(ord greedy.Order) Option {
	g := greedy.WithOrder(ord)
	return func(o *options) { o.greedy = append(o.greedy, g) }
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("jumpstart: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}

// WithMetrics records greedy runs on m; nil disables recording.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(o *options) { o.metrics = m }
}
