package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Oracle operation labels.
const (
	OpUpperBound   = "upper_bound"
	OpPairing      = "optimal_pairing"
	OpBestPackings = "best_packings"
)

// Metrics groups the collectors of one search process.
type Metrics struct {
	iterations     prometheus.Counter
	improvements   prometheus.Counter
	tabuCollisions prometheus.Counter
	skippedMoves   prometheus.Counter
	greedyRuns     prometheus.Counter
	oracleCalls    *prometheus.CounterVec
	oracleDuration *prometheus.HistogramVec
	bestObjective  prometheus.Gauge
	sampleSize     prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg. A nil reg
// yields working but unregistered collectors. Registering twice on the
// same registry panics, as with promauto.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		iterations: f.NewCounter(prometheus.CounterOpts{
			Name: "kxtabu_tabu_iterations_total",
			Help: "Tabu search iterations executed",
		}),
		improvements: f.NewCounter(prometheus.CounterOpts{
			Name: "kxtabu_tabu_improvements_total",
			Help: "Iterations that improved the best-known objective",
		}),
		tabuCollisions: f.NewCounter(prometheus.CounterOpts{
			Name: "kxtabu_tabu_collisions_total",
			Help: "Neighbours skipped because they were tabu",
		}),
		skippedMoves: f.NewCounter(prometheus.CounterOpts{
			Name: "kxtabu_tabu_skipped_moves_total",
			Help: "Destroy moves skipped because no vertex was freed",
		}),
		greedyRuns: f.NewCounter(prometheus.CounterOpts{
			Name: "kxtabu_greedy_runs_total",
			Help: "Greedy constructions performed",
		}),
		oracleCalls: f.NewCounterVec(prometheus.CounterOpts{
			Name: "kxtabu_oracle_calls_total",
			Help: "Oracle invocations by operation and status",
		}, []string{"op", "status"}),
		oracleDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "kxtabu_oracle_duration_seconds",
			Help:    "Oracle call duration",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10, 60},
		}, []string{"op"}),
		bestObjective: f.NewGauge(prometheus.GaugeOpts{
			Name: "kxtabu_best_objective",
			Help: "Matched vertices of the best-known packing",
		}),
		sampleSize: f.NewGauge(prometheus.GaugeOpts{
			Name: "kxtabu_tabu_sample_size",
			Help: "Current neighbour sample size S",
		}),
	}
}

// IncIteration counts one tabu iteration.
func (m *Metrics) IncIteration() {
	if m == nil {
		return
	}
	m.iterations.Inc()
}

// IncImprovement counts one improvement of the best-known objective.
func (m *Metrics) IncImprovement() {
	if m == nil {
		return
	}
	m.improvements.Inc()
}

// IncTabuCollision counts one neighbour rejected by the tabu list.
func (m *Metrics) IncTabuCollision() {
	if m == nil {
		return
	}
	m.tabuCollisions.Inc()
}

// IncSkippedMove counts one move without freed vertices.
func (m *Metrics) IncSkippedMove() {
	if m == nil {
		return
	}
	m.skippedMoves.Inc()
}

// AddGreedyRuns adds n greedy constructions.
func (m *Metrics) AddGreedyRuns(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.greedyRuns.Add(float64(n))
}

// ObserveOracle records one oracle call of operation op.
func (m *Metrics) ObserveOracle(op string, d time.Duration, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.oracleCalls.WithLabelValues(op, status).Inc()
	m.oracleDuration.WithLabelValues(op).Observe(d.Seconds())
}

// SetBestObjective publishes the best-known objective.
func (m *Metrics) SetBestObjective(v int) {
	if m == nil {
		return
	}
	m.bestObjective.Set(float64(v))
}

// SetSampleSize publishes the current neighbour sample size.
func (m *Metrics) SetSampleSize(s int) {
	if m == nil {
		return
	}
	m.sampleSize.Set(float64(s))
}
