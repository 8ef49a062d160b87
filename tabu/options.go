package tabu

import (
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/kxtabu/telemetry"
)

// Option customizes an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("tabu: WithLogger(nil)")
	}
	return func(e *Engine) { e.logger = l }
}

// WithMetrics records search progress on m; nil disables recording.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithTracer replaces the global OpenTelemetry tracer. Panics on nil.
func WithTracer(t trace.Tracer) Option {
	if t == nil {
		panic("tabu: WithTracer(nil)")
	}
	return func(e *Engine) { e.tracer = t }
}

// WithClock replaces time.Now for deadline checks. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("tabu: WithClock(nil)")
	}
	return func(e *Engine) { e.now = now }
}
