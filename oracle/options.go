package oracle

import (
	"log/slog"

	"github.com/katalvlaran/kxtabu/telemetry"
)

// Defaults applied by New.
const (
	DefaultPoolGap   = 1.0
	DefaultMaxCycles = 200000
)

// Option customizes an Oracle.
type Option func(*Oracle)

// WithPoolGap accepts further pool members whose objective is within
// relative gap g of the best packing: (best-obj) <= g·best.
// Panics unless 0 <= g <= 1.
func WithPoolGap(g float64) Option {
	if g < 0 || g > 1 {
		panic("oracle: WithPoolGap(g) requires 0 <= g <= 1")
	}
	return func(o *Oracle) { o.poolGap = g }
}

// WithMaxCycles caps the number of cycles of a packing subproblem;
// 0 disables the cap. Panics if n < 0.
func WithMaxCycles(n int) Option {
	if n < 0 {
		panic("oracle: WithMaxCycles(n<0)")
	}
	return func(o *Oracle) { o.maxCycles = n }
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("oracle: WithLogger(nil)")
	}
	return func(o *Oracle) { o.logger = l }
}

// WithMetrics records UpperBound and OptimalPairing calls on m.
// BestPackings is recorded by its caller.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(o *Oracle) { o.metrics = m }
}
