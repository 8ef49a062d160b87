package tabu

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/kxtabu/compat"
	"github.com/katalvlaran/kxtabu/cycles"
	"github.com/katalvlaran/kxtabu/packing"
	"github.com/katalvlaran/kxtabu/telemetry"
)

// PackingOracle returns up to pool distinct near-best vertex-disjoint
// packings with cycles of length ≤ k using only vertices of subset.
// An empty result is read as a single empty packing.
type PackingOracle interface {
	BestPackings(ctx context.Context, m compat.Matrix, subset []int, k, pool int) ([][]cycles.Cycle, error)
}

// Engine runs the tabu search for one instance. It is not safe for
// concurrent use; create one Engine per search.
type Engine struct {
	m        compat.Matrix
	ps       cycles.PairScore
	initial  packing.Solution
	oracle   PackingOracle
	cfg      Config
	universe []int
	bound    int
	rng      *rand.Rand

	logger  *slog.Logger
	metrics *telemetry.Metrics
	tracer  trace.Tracer
	now     func() time.Time

	best packing.Solution
}

// New prepares a search over m starting from initial.
// The initial packing must be valid in m (ErrInvalidSolution otherwise)
// and cfg must pass Validate.
func New(m compat.Matrix, initial packing.Solution, oracle PackingOracle, cfg Config, opts ...Option) (*Engine, error) {
	if oracle == nil {
		return nil, ErrNilOracle
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := packing.Validate(m, initial); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidSolution)
	}

	e := &Engine{
		m:        m,
		ps:       cycles.Score(m),
		oracle:   oracle,
		cfg:      cfg,
		universe: m.Matchable(),
		logger:   slog.Default(),
		tracer:   otel.Tracer("kxtabu.tabu"),
		now:      time.Now,
	}
	// Re-score against m so comparisons stay consistent inside the loop.
	rescored, err := packing.FromCycles(e.ps, initial.Cycles()...)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidSolution)
	}
	e.initial, e.best = rescored, rescored

	e.bound = len(e.universe)
	if cfg.UpperBound > 0 && cfg.UpperBound < e.bound {
		e.bound = cfg.UpperBound
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	e.rng = rand.New(rand.NewSource(seed))
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Bound returns the effective upper bound that ends the search.
func (e *Engine) Bound() int { return e.bound }

// Run executes the search until the bound is reached, the time limit
// elapses or ctx is done. The returned Result always carries the best
// packing found so far, also alongside an error.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	runID := uuid.NewString()
	log := e.logger.With(slog.String("run_id", runID))
	ctx, span := e.tracer.Start(ctx, "tabu.Run", trace.WithAttributes(
		attribute.String("kxtabu.run_id", runID),
		attribute.Int("kxtabu.n", e.m.N()),
		attribute.Int("kxtabu.k", e.cfg.K),
		attribute.Int("kxtabu.bound", e.bound),
	))
	defer span.End()

	res, err := e.run(ctx, log, runID)
	span.SetAttributes(
		attribute.Int("kxtabu.objective", res.Objective),
		attribute.Int("kxtabu.iterations", res.Iterations),
		attribute.String("kxtabu.outcome", res.Outcome.String()),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.ErrorContext(ctx, "tabu search failed",
			slog.Int("iteration", res.Iterations),
			slog.Int("best_objective", res.Objective),
			slog.Any("error", err),
		)
		return res, err
	}
	span.SetStatus(codes.Ok, "")
	log.InfoContext(ctx, "tabu search finished",
		slog.String("outcome", res.Outcome.String()),
		slog.Int("iterations", res.Iterations),
		slog.Int("best_objective", res.Objective),
		slog.Duration("elapsed", res.Elapsed),
	)

	return res, nil
}

func (e *Engine) run(ctx context.Context, log *slog.Logger, runID string) (Result, error) {
	start := e.now()
	e.best = e.initial
	res := Result{
		RunID:        runID,
		Best:         e.initial,
		Objective:    e.initial.Objective(),
		Improvements: []Improvement{{Iteration: 0, Objective: e.initial.Objective()}},
	}
	finish := func(o Outcome) Result {
		res.Outcome = o
		res.Best, res.Objective = e.best, e.best.Objective()
		res.Elapsed = e.now().Sub(start)
		return res
	}
	e.metrics.SetBestObjective(res.Objective)

	log.InfoContext(ctx, "tabu search started",
		slog.Int("n", e.m.N()),
		slog.Int("matchable", len(e.universe)),
		slog.Int("k", e.cfg.K),
		slog.Int("bound", e.bound),
		slog.Int("initial_objective", res.Objective),
		slog.Duration("time_limit", e.cfg.TimeLimit),
	)
	if res.Objective >= e.bound {
		return finish(UpperBoundReached), nil
	}

	var (
		list       = NewList(e.cfg.TabuCapacity)
		current    = e.initial
		sample     = e.cfg.InitialSample
		stagnation int
	)
	list.Admit(current.Signature(), 0)
	e.metrics.SetSampleSize(sample)

	for iter := 1; ; iter++ {
		if ctx.Err() != nil {
			return finish(Canceled), nil
		}
		if e.now().Sub(start) >= e.cfg.TimeLimit {
			return finish(TimeLimitReached), nil
		}
		res.Iterations = iter
		e.metrics.IncIteration()

		// Steps 1-5: trim the tabu list and build the neighbourhood.
		list.EvictExcess()
		neighbours, err := e.neighbourhood(ctx, current, sample)
		if err != nil {
			if ctx.Err() != nil {
				return finish(Canceled), nil
			}
			return finish(Failed), fmt.Errorf("iteration %d: %w", iter, err)
		}

		// Step 6: best non-tabu neighbour.
		next, ok := e.pick(ctx, log, neighbours, list, iter)
		if !ok {
			return finish(Failed), fmt.Errorf("iteration %d: %d neighbours, sample %d: %w",
				iter, len(neighbours), sample, ErrExhaustedNeighborhood)
		}

		// Step 7: admit.
		current = next
		list.Admit(next.Signature(), iter)

		// Step 8: bookkeeping and adaptation.
		if next.Objective() > e.best.Objective() {
			e.best = next
			stagnation = 0
			elapsed := e.now().Sub(start)
			res.Improvements = append(res.Improvements, Improvement{
				Iteration: iter,
				Elapsed:   elapsed,
				Objective: next.Objective(),
			})
			e.metrics.IncImprovement()
			e.metrics.SetBestObjective(next.Objective())
			log.InfoContext(ctx, "best objective improved",
				slog.Int("iteration", iter),
				slog.Int("objective", next.Objective()),
				slog.Int("bound", e.bound),
				slog.Duration("elapsed", elapsed),
			)
			if e.best.Objective() >= e.bound {
				return finish(UpperBoundReached), nil
			}
			continue
		}
		stagnation++
		if stagnation > e.cfg.StagnationLimit {
			sample += e.cfg.SampleStep
			stagnation = 0
			e.metrics.SetSampleSize(sample)
			log.DebugContext(ctx, "sample size increased",
				slog.Int("iteration", iter),
				slog.Int("sample", sample),
			)
		}
	}
}

// pick pops neighbours in order and returns the first that is not tabu.
func (e *Engine) pick(ctx context.Context, log *slog.Logger, neighbours []packing.Solution, list *List, iter int) (packing.Solution, bool) {
	for _, nb := range neighbours {
		if !list.Contains(nb.Signature()) {
			return nb, true
		}
		e.metrics.IncTabuCollision()
		log.DebugContext(ctx, "tabu list collision",
			slog.Int("iteration", iter),
			slog.Int("objective", nb.Objective()),
		)
	}

	return packing.Solution{}, false
}

// Best returns the best packing of the last Run (the initial packing
// before any Run).
func (e *Engine) Best() packing.Solution { return e.best }

// SolutionMatrix returns an n×n matrix holding exactly the arcs used by
// the best packing.
func (e *Engine) SolutionMatrix() compat.Matrix {
	sm, _ := compat.New(e.m.N(), e.best.Edges()) // arcs of cycles validated against m

	return sm
}
