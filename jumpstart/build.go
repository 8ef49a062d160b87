package jumpstart

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/kxtabu/compat"
	"github.com/katalvlaran/kxtabu/cycles"
	"github.com/katalvlaran/kxtabu/greedy"
	"github.com/katalvlaran/kxtabu/packing"
)

var tracer = otel.Tracer("kxtabu.jumpstart")

// PairingOracle supplies a maximum-cardinality vertex-disjoint set of
// 2-cycles of m, tie-broken toward the lowest aggregate pair score.
type PairingOracle interface {
	OptimalPairing(ctx context.Context, m compat.Matrix) ([]cycles.Cycle, error)
}

// Build runs the jump-start heuristic on m with cycle-length bound k.
// k < 2 yields cycles.ErrInvalidLength and an empty m cycles.ErrEmptyMatrix,
// both before the oracle is consulted. Oracle errors are returned wrapped;
// a pairing or greedy cycle that is invalid in m, or overlaps another,
// yields ErrInconsistent.
func Build(ctx context.Context, m compat.Matrix, k int, oracle PairingOracle, opts ...Option) (packing.Solution, error) {
	if oracle == nil {
		return packing.Solution{}, ErrNilOracle
	}
	if k < 2 {
		return packing.Solution{}, fmt.Errorf("jumpstart: k=%d: %w", k, cycles.ErrInvalidLength)
	}
	if m.N() == 0 {
		return packing.Solution{}, fmt.Errorf("jumpstart: %w", cycles.ErrEmptyMatrix)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ctx, span := tracer.Start(ctx, "jumpstart.Build", trace.WithAttributes(
		attribute.Int("kxtabu.n", m.N()),
		attribute.Int("kxtabu.k", k),
	))
	defer span.End()

	sol, err := build(ctx, m, k, oracle, o)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return packing.Solution{}, err
	}
	span.SetAttributes(attribute.Int("kxtabu.objective", sol.Objective()))
	span.SetStatus(codes.Ok, "")

	return sol, nil
}

func build(ctx context.Context, m compat.Matrix, k int, oracle PairingOracle, o options) (packing.Solution, error) {
	// Stage 1: optimal pairing.
	pairs, err := oracle.OptimalPairing(ctx, m)
	if err != nil {
		return packing.Solution{}, fmt.Errorf("jumpstart: optimal pairing: %w", err)
	}
	var paired []int
	for _, c := range pairs {
		if err := cycles.Valid(m, c); err != nil || len(c) != 2 {
			return packing.Solution{}, fmt.Errorf("jumpstart: pairing returned %v: %w", c, ErrInconsistent)
		}
		paired = append(paired, c...)
	}

	// Stage 2: residual graph and its catalog.
	residual := m.Without(paired...)
	catalog, err := cycles.Enumerate(residual, k)
	if err != nil {
		return packing.Solution{}, fmt.Errorf("jumpstart: residual catalog: %w", err)
	}

	// Stage 3: best of the greedy runs.
	best, runs, err := bestGreedy(ctx, residual, catalog, o)
	if err != nil {
		return packing.Solution{}, err
	}
	o.metrics.AddGreedyRuns(runs)

	// Stage 4: union and consistency check against the original matrix.
	all := make([]cycles.Cycle, 0, len(pairs)+len(best))
	all = append(all, pairs...)
	all = append(all, best...)
	sol, err := packing.FromCycles(cycles.Score(m), all...)
	if err != nil {
		return packing.Solution{}, fmt.Errorf("jumpstart: union: %v: %w", err, ErrInconsistent)
	}
	if err := packing.Validate(m, sol); err != nil {
		return packing.Solution{}, fmt.Errorf("jumpstart: union: %v: %w", err, ErrInconsistent)
	}

	o.logger.InfoContext(ctx, "jump start built",
		slog.Int("pairs", len(pairs)),
		slog.Int("residual_cycles", len(catalog)),
		slog.Int("greedy_runs", runs),
		slog.Int("objective", sol.Objective()),
	)

	return sol, nil
}

// bestGreedy runs the greedy builder over catalog and keeps the first
// result with the highest objective.
func bestGreedy(ctx context.Context, residual compat.Matrix, catalog []cycles.Cycle, o options) ([]cycles.Cycle, int, error) {
	if len(catalog) == 0 {
		return nil, 0, nil
	}
	gb, err := greedy.New(catalog, cycles.ScoreAll(residual, catalog), o.greedy...)
	if err != nil {
		return nil, 0, fmt.Errorf("jumpstart: greedy: %w", err)
	}

	var (
		best    []cycles.Cycle
		bestObj = -1
		runs    int
		start   = time.Now()
	)
	for {
		if err := ctx.Err(); err != nil {
			return nil, runs, fmt.Errorf("jumpstart: greedy phase: %w", err)
		}
		res := gb.Run()
		runs++
		if obj := objective(res); obj > bestObj {
			best, bestObj = res, obj
		}
		if o.budget > 0 {
			if time.Since(start) >= o.budget {
				break
			}
		} else if runs >= o.runs {
			break
		}
	}

	return best, runs, nil
}

func objective(cs []cycles.Cycle) int {
	var n int
	for _, c := range cs {
		n += len(c)
	}

	return n
}
