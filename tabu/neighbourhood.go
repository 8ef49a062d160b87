package tabu

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/kxtabu/cycles"
	"github.com/katalvlaran/kxtabu/packing"
	"github.com/katalvlaran/kxtabu/telemetry"
)

// move is one destroy step: the packing left after removal and the
// vertices handed to the oracle.
type move struct {
	base  packing.Solution
	freed []int
}

// neighbourhood builds every neighbour of current for sample size s,
// de-duplicated by signature and ordered best first (ties by signature).
func (e *Engine) neighbourhood(ctx context.Context, current packing.Solution, s int) ([]packing.Solution, error) {
	free := current.Free(e.universe)

	var moves []move
	if current.Len() == 0 {
		// Nothing to destroy: repair over the unmatched vertices only.
		moves = append(moves, move{base: current, freed: free})
	}
	for i := 0; i < current.Len(); i++ {
		base, removed, err := current.Remove(e.sample(i, current.Len(), s)...)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move{base: base, freed: mergeSorted(removed, free)})
	}

	seen := make(map[string]struct{})
	var out []packing.Solution
	for _, mv := range moves {
		if len(mv.freed) == 0 {
			e.metrics.IncSkippedMove()
			continue
		}
		repairs, err := e.repair(ctx, mv.freed)
		if err != nil {
			return nil, err
		}
		if len(repairs) == 0 {
			repairs = [][]cycles.Cycle{nil}
		}
		for _, r := range repairs {
			nb, err := e.combine(mv, r)
			if err != nil {
				return nil, err
			}
			if _, dup := seen[nb.Signature()]; dup {
				continue
			}
			seen[nb.Signature()] = struct{}{}
			out = append(out, nb)
		}
	}

	sort.Slice(out, func(a, b int) bool {
		if c := packing.Compare(out[a], out[b]); c != 0 {
			return c > 0
		}
		return out[a].Signature() < out[b].Signature()
	})

	return out, nil
}

// sample returns index i plus min(s, n-1) distinct random other indices
// of [0, n).
func (e *Engine) sample(i, n, s int) []int {
	extra := s
	if extra > n-1 {
		extra = n - 1
	}
	if extra <= 0 {
		return []int{i}
	}
	others := make([]int, 0, n-1)
	for j := 0; j < n; j++ {
		if j != i {
			others = append(others, j)
		}
	}
	// Partial Fisher-Yates: the first extra slots become the sample.
	for j := 0; j < extra; j++ {
		r := j + e.rng.Intn(len(others)-j)
		others[j], others[r] = others[r], others[j]
	}

	return append([]int{i}, others[:extra]...)
}

// repair asks the oracle for packings over freed.
func (e *Engine) repair(ctx context.Context, freed []int) ([][]cycles.Cycle, error) {
	ctx, span := e.tracer.Start(ctx, "oracle.BestPackings", trace.WithAttributes(
		attribute.Int("kxtabu.freed", len(freed)),
		attribute.Int("kxtabu.pool", e.cfg.PoolSize),
	))
	defer span.End()

	t0 := time.Now()
	packs, err := e.oracle.BestPackings(ctx, e.m, freed, e.cfg.K, e.cfg.PoolSize)
	e.metrics.ObserveOracle(telemetry.OpBestPackings, time.Since(t0), err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("best packings over %d vertices: %w", len(freed), err)
	}
	span.SetAttributes(attribute.Int("kxtabu.packings", len(packs)))

	return packs, nil
}

// combine checks a repair packing against its move and joins it to the base.
func (e *Engine) combine(mv move, repair []cycles.Cycle) (packing.Solution, error) {
	allowed := make(map[int]struct{}, len(mv.freed))
	for _, v := range mv.freed {
		allowed[v] = struct{}{}
	}
	items := make([]packing.Scored, 0, len(repair))
	for _, c := range repair {
		if len(c) > e.cfg.K {
			return packing.Solution{}, fmt.Errorf("cycle %v longer than %d: %w", c, e.cfg.K, ErrInconsistent)
		}
		for _, v := range c {
			if _, ok := allowed[v]; !ok {
				return packing.Solution{}, fmt.Errorf("cycle %v uses unfreed vertex %d: %w", c, v, ErrInconsistent)
			}
		}
		if err := cycles.Valid(e.m, c); err != nil {
			return packing.Solution{}, fmt.Errorf("%v: %w", err, ErrInconsistent)
		}
		items = append(items, packing.Scored{Cycle: c, Score: cycles.ScoreOne(c, e.ps)})
	}
	nb, err := mv.base.Extend(items...)
	if err != nil {
		return packing.Solution{}, fmt.Errorf("%v: %w", err, ErrInconsistent)
	}

	return nb, nil
}

// mergeSorted unions two ascending vertex lists.
func mergeSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case j == len(b) || (i < len(a) && a[i] < b[j]):
			out = append(out, a[i])
			i++
		case i == len(a) || b[j] < a[i]:
			out = append(out, b[j])
			j++
		default: // equal
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}
