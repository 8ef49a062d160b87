// Package telemetry carries the observability plumbing shared by the search
// packages: Prometheus collectors for the tabu loop, the oracle and the
// greedy builder, plus slog logger construction for programs.
//
// Every Metrics method is safe on a nil receiver, so libraries accept an
// optional *Metrics and call it unconditionally.
package telemetry
