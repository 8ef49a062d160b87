package oracle

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/crillab/gophersat/maxsat"

	"github.com/katalvlaran/kxtabu/compat"
	"github.com/katalvlaran/kxtabu/cycles"
	"github.com/katalvlaran/kxtabu/telemetry"
)

// pairScale turns aggregate pair scores (at most 4) into integer weights.
const pairScale = 1000

// Oracle answers bound, pairing and packing queries. The zero value is
// not usable; call New. An Oracle holds no per-call state and may be
// shared by sequential callers.
type Oracle struct {
	poolGap   float64
	maxCycles int
	logger    *slog.Logger
	metrics   *telemetry.Metrics
}

// New returns an Oracle with the given options applied.
func New(opts ...Option) *Oracle {
	o := &Oracle{
		poolGap:   DefaultPoolGap,
		maxCycles: DefaultMaxCycles,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// UpperBound returns the maximum number of vertices coverable by disjoint
// cycles of any length, a bound for every k.
func (o *Oracle) UpperBound(ctx context.Context, m compat.Matrix) (int, error) {
	t0 := time.Now()
	_, covered, err := CycleCover(ctx, m)
	o.metrics.ObserveOracle(telemetry.OpUpperBound, time.Since(t0), err)
	if err != nil {
		return 0, fmt.Errorf("oracle: upper bound: %w", err)
	}
	o.logger.DebugContext(ctx, "upper bound computed",
		slog.Int("n", m.N()),
		slog.Int("bound", covered),
		slog.Duration("elapsed", time.Since(t0)),
	)

	return covered, nil
}

// OptimalPairing returns a maximum-cardinality set of vertex-disjoint
// 2-cycles of m; among those, one with the lowest total of
// Out(i)+In(i)+Out(j)+In(j). Pairs are returned as [i, j] with i < j,
// ordered by i.
//
// Weights: each pair p gets a soft clause of weight M - s(p), with s the
// scaled aggregate score and M larger than the score total of any
// pairing, so one more pair always outweighs any score difference.
func (o *Oracle) OptimalPairing(ctx context.Context, m compat.Matrix) ([]cycles.Cycle, error) {
	t0 := time.Now()
	pairs, err := o.optimalPairing(ctx, m)
	o.metrics.ObserveOracle(telemetry.OpPairing, time.Since(t0), err)
	if err != nil {
		return nil, fmt.Errorf("oracle: optimal pairing: %w", err)
	}
	o.logger.DebugContext(ctx, "optimal pairing computed",
		slog.Int("pairs", len(pairs)),
		slog.Duration("elapsed", time.Since(t0)),
	)

	return pairs, nil
}

func (o *Oracle) optimalPairing(ctx context.Context, m compat.Matrix) ([]cycles.Cycle, error) {
	var pairs []cycles.Cycle
	for i := 0; i < m.N(); i++ {
		for _, j := range m.Successors(i) {
			if j > i && m.Has(j, i) {
				pairs = append(pairs, cycles.Cycle{i, j})
			}
		}
	}
	if len(pairs) == 0 {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ps := cycles.Score(m)
	big := 4*pairScale*(m.N()/2+1) + 1
	constrs := make([]maxsat.Constr, 0, len(pairs)+m.N())
	for idx, c := range pairs {
		s := int(math.Round(pairScale * (ps.Aggregate(c[0]) + ps.Aggregate(c[1]))))
		constrs = append(constrs, maxsat.WeightedClause([]maxsat.Lit{maxsat.Var(varName('p', idx))}, big-s))
	}
	constrs = append(constrs, atMostOnePerVertex('p', pairs)...)

	model, _ := maxsat.New(constrs...).Solve()
	if model == nil {
		return nil, ErrUnsatisfiable
	}

	return selected('p', pairs, model), nil
}

// BestPackings returns up to pool distinct vertex-disjoint packings of
// cycles with 2..k vertices, all drawn from subset. The first packing
// covers the most vertices; later ones are accepted while within the pool
// gap of the first. A subset without cycles yields no packing.
func (o *Oracle) BestPackings(ctx context.Context, m compat.Matrix, subset []int, k, pool int) ([][]cycles.Cycle, error) {
	if pool < 1 {
		return nil, fmt.Errorf("oracle: pool=%d: %w", pool, ErrInvalidPool)
	}
	if len(subset) == 0 || m.N() == 0 {
		return nil, nil
	}

	var cs []cycles.Cycle
	err := cycles.Walk(m.Induced(subset), k, func(c cycles.Cycle) bool {
		cs = append(cs, c)
		return o.maxCycles == 0 || len(cs) <= o.maxCycles
	})
	if err != nil {
		return nil, fmt.Errorf("oracle: best packings: %w", err)
	}
	if o.maxCycles > 0 && len(cs) > o.maxCycles {
		return nil, fmt.Errorf("oracle: %d vertices, k=%d: more than %d cycles: %w",
			len(subset), k, o.maxCycles, ErrSubproblemTooLarge)
	}
	if len(cs) == 0 {
		return nil, nil
	}

	constrs := make([]maxsat.Constr, 0, len(cs)+len(subset)+pool)
	for idx, c := range cs {
		constrs = append(constrs, maxsat.WeightedClause([]maxsat.Lit{maxsat.Var(varName('c', idx))}, len(c)))
	}
	constrs = append(constrs, atMostOnePerVertex('c', cs)...)

	var (
		out     [][]cycles.Cycle
		bestObj = -1
	)
	for len(out) < pool {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("oracle: best packings: %w", err)
		}
		model, _ := maxsat.New(constrs...).Solve()
		if model == nil {
			break // every packing already reported
		}
		chosen := selected('c', cs, model)
		obj := covered(chosen)
		if bestObj < 0 {
			bestObj = obj
		} else if float64(bestObj-obj) > o.poolGap*float64(bestObj) {
			break
		}
		out = append(out, chosen)
		constrs = append(constrs, noGood('c', len(cs), model))
	}
	if len(out) == 0 {
		return nil, ErrUnsatisfiable
	}

	return out, nil
}

// varName names the literal of item idx in family f.
func varName(f byte, idx int) string {
	return string(f) + strconv.Itoa(idx)
}

// atMostOnePerVertex emits Σ¬x ≥ |group|-1 for every vertex shared by
// two or more items.
func atMostOnePerVertex(f byte, items []cycles.Cycle) []maxsat.Constr {
	byVertex := make(map[int][]int)
	for idx, c := range items {
		for _, v := range c {
			byVertex[v] = append(byVertex[v], idx)
		}
	}
	vs := make([]int, 0, len(byVertex))
	for v, group := range byVertex {
		if len(group) > 1 {
			vs = append(vs, v)
		}
	}
	sort.Ints(vs) // stable model layout across calls

	out := make([]maxsat.Constr, 0, len(vs))
	for _, v := range vs {
		group := byVertex[v]
		lits := make([]maxsat.Lit, len(group))
		for i, idx := range group {
			lits[i] = maxsat.Not(varName(f, idx))
		}
		out = append(out, maxsat.HardPBConstr(lits, nil, len(group)-1))
	}

	return out
}

// noGood forbids exactly the assignment in model.
func noGood(f byte, n int, model maxsat.Model) maxsat.Constr {
	lits := make([]maxsat.Lit, n)
	for idx := 0; idx < n; idx++ {
		name := varName(f, idx)
		if model[name] {
			lits[idx] = maxsat.Not(name)
		} else {
			lits[idx] = maxsat.Var(name)
		}
	}

	return maxsat.HardClause(lits...)
}

// selected returns the items whose literal is true in model.
func selected(f byte, items []cycles.Cycle, model maxsat.Model) []cycles.Cycle {
	var out []cycles.Cycle
	for idx, c := range items {
		if model[varName(f, idx)] {
			out = append(out, c)
		}
	}

	return out
}

func covered(cs []cycles.Cycle) int {
	var n int
	for _, c := range cs {
		n += len(c)
	}

	return n
}
