package tabu_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kxtabu/compat"
	"github.com/katalvlaran/kxtabu/cycles"
	"github.com/katalvlaran/kxtabu/packing"
	"github.com/katalvlaran/kxtabu/tabu"
	"github.com/katalvlaran/kxtabu/telemetry"
)

// cfg returns a small deterministic configuration.
func cfg(k int) tabu.Config {
	c := tabu.DefaultConfig()
	c.K = k
	c.TimeLimit = time.Second
	c.Seed = 1
	return c
}

func newEngine(t *testing.T, m compat.Matrix, initial packing.Solution, o tabu.PackingOracle, c tabu.Config, opts ...tabu.Option) *tabu.Engine {
	t.Helper()
	opts = append([]tabu.Option{tabu.WithLogger(telemetry.Discard())}, opts...)
	e, err := tabu.New(m, initial, o, c, opts...)
	require.NoError(t, err)

	return e
}

// chain is 0↔1↔2↔3 as mutual pairs.
func chain(t *testing.T) compat.Matrix {
	return matrix(t, 4, mutual([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})...)
}

// TestRun_BoundAlreadyReached is the upper-bound-at-start scenario: no
// oracle call happens.
func TestRun_BoundAlreadyReached(t *testing.T) {
	m := matrix(t, 3, mutual([2]int{0, 1})...)
	o := &bruteOracle{}
	c := cfg(2)
	c.UpperBound = 2

	e := newEngine(t, m, solution(t, m, cycles.Cycle{0, 1}), o, c)
	res, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, tabu.UpperBoundReached, res.Outcome)
	assert.Equal(t, 2, res.Objective)
	assert.Zero(t, res.Iterations)
	assert.Zero(t, o.calls)
	assert.NotEmpty(t, res.RunID)

	// Without an external bound the matchable count caps the search.
	c.UpperBound = 0
	e = newEngine(t, m, solution(t, m, cycles.Cycle{0, 1}), o, c)
	assert.Equal(t, 2, e.Bound())
	res, err = e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, tabu.UpperBoundReached, res.Outcome)
	assert.Zero(t, o.calls)
}

// TestRun_Improves repairs a single middle pair into two outer pairs.
func TestRun_Improves(t *testing.T) {
	m := chain(t)
	o := &bruteOracle{}
	c := cfg(2)
	c.UpperBound = 4

	e := newEngine(t, m, solution(t, m, cycles.Cycle{1, 2}), o, c)
	res, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, tabu.UpperBoundReached, res.Outcome)
	assert.Equal(t, 4, res.Objective)
	assert.Equal(t, "0-1|2-3", res.Best.Signature())
	assert.Equal(t, 1, res.Iterations)
	assert.Equal(t, 1, o.calls)
	require.Len(t, res.Improvements, 2)
	assert.Equal(t, tabu.Improvement{Iteration: 0, Objective: 2}, res.Improvements[0])
	assert.Equal(t, 1, res.Improvements[1].Iteration)
	assert.Equal(t, 4, res.Improvements[1].Objective)

	sm := e.SolutionMatrix()
	assert.Equal(t, 4, sm.EdgeCount())
	assert.True(t, sm.Has(0, 1) && sm.Has(3, 2))
	assert.False(t, sm.Has(1, 2))
	assert.Equal(t, res.Best.Signature(), e.Best().Signature())
}

// TestRun_EmptyInitial evaluates a repair-only move.
func TestRun_EmptyInitial(t *testing.T) {
	m := chain(t)
	o := &bruteOracle{}
	e := newEngine(t, m, packing.Solution{}, o, cfg(2))

	res, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, tabu.UpperBoundReached, res.Outcome)
	assert.Equal(t, 4, res.Objective)
	assert.Equal(t, 1, o.calls)
}

// TestRun_Exhausted: the only repair reproduces the tabu initial packing.
func TestRun_Exhausted(t *testing.T) {
	arcs := mutual([2]int{0, 1}, [2]int{2, 3})
	arcs = append(arcs, [2]int{4, 5}, [2]int{5, 6}, [2]int{6, 4})
	m := matrix(t, 7, arcs...)
	o := &bruteOracle{}

	e := newEngine(t, m, solution(t, m, cycles.Cycle{0, 1}, cycles.Cycle{2, 3}), o, cfg(2))
	res, err := e.Run(context.Background())
	assert.ErrorIs(t, err, tabu.ErrExhaustedNeighborhood)
	assert.Equal(t, tabu.Failed, res.Outcome)
	assert.Equal(t, 4, res.Objective, "best-so-far survives the failure")
	assert.Equal(t, 2, o.calls)
}

// TestRun_TimeLimit keeps moving between equally good packings until the
// budget elapses.
func TestRun_TimeLimit(t *testing.T) {
	var arcs [][2]int
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			if i != j {
				arcs = append(arcs, [2]int{i, j})
			}
		}
	}
	arcs = append(arcs, [2]int{6, 7}, [2]int{7, 8}, [2]int{8, 6})
	m := matrix(t, 9, arcs...)

	c := cfg(2)
	c.InitialSample = 2
	c.TimeLimit = 50 * time.Millisecond
	o := &bruteOracle{}
	initial := solution(t, m, cycles.Cycle{0, 1}, cycles.Cycle{2, 3}, cycles.Cycle{4, 5})
	e := newEngine(t, m, initial, o, c,
		tabu.WithClock(stepClock(time.Millisecond)),
		tabu.WithMetrics(telemetry.NewMetrics(prometheus.NewRegistry())),
	)

	res, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, tabu.TimeLimitReached, res.Outcome)
	assert.Equal(t, 6, res.Objective)
	assert.Greater(t, res.Iterations, 1)
	assert.Equal(t, 3*res.Iterations, o.calls)
	assert.NoError(t, packing.Validate(m, res.Best))
}

// TestRun_SampleGrowsOnStagnation widens the destroy step by SampleStep
// after StagnationLimit+1 non-improving iterations, then starts counting
// again from zero.
func TestRun_SampleGrowsOnStagnation(t *testing.T) {
	var arcs [][2]int
	for g := 0; g < 9; g += 3 {
		for i := g; i < g+3; i++ {
			for j := g; j < g+3; j++ {
				if i != j {
					arcs = append(arcs, [2]int{i, j})
				}
			}
		}
	}
	// 9..12 form a 4-cycle: matchable, but never packable with k=3.
	arcs = append(arcs, [2]int{9, 10}, [2]int{10, 11}, [2]int{11, 12}, [2]int{12, 9})
	m := matrix(t, 13, arcs...)

	c := cfg(3)
	c.InitialSample = 0
	c.SampleStep = 1
	c.StagnationLimit = 1
	c.PoolSize = 2
	c.TimeLimit = 20 * time.Millisecond
	o := &bruteOracle{}
	initial := solution(t, m, cycles.Cycle{0, 1, 2}, cycles.Cycle{3, 4, 5}, cycles.Cycle{6, 7, 8})
	e := newEngine(t, m, initial, o, c, tabu.WithClock(stepClock(time.Millisecond)))
	require.Equal(t, 13, e.Bound())

	res, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, tabu.TimeLimitReached, res.Outcome)
	assert.Equal(t, 9, res.Objective)
	assert.Equal(t, 19, res.Iterations)
	require.Len(t, o.subsets, 3*res.Iterations)

	// One triangle plus the four free vertices, then two triangles, then
	// all three (the sample is capped by the packing size).
	for call, size := range o.subsets {
		want := 13
		switch iter := call/3 + 1; {
		case iter <= 2:
			want = 7
		case iter <= 4:
			want = 10
		}
		assert.Equal(t, want, size, "call %d", call)
	}
}

// TestRun_Monotonic checks best-objective monotonicity and feasibility on
// random pools.
func TestRun_Monotonic(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		r := rand.New(rand.NewSource(seed))
		var arcs [][2]int
		for i := 0; i < 12; i++ {
			for j := 0; j < 12; j++ {
				if i != j && r.Float64() < 0.25 {
					arcs = append(arcs, [2]int{i, j})
				}
			}
		}
		m := matrix(t, 12, arcs...)
		c := cfg(3)
		c.Seed = seed
		c.TabuCapacity = 3
		c.TimeLimit = 200 * time.Millisecond

		e := newEngine(t, m, packing.Solution{}, &bruteOracle{}, c, tabu.WithClock(stepClock(time.Millisecond)))
		res, err := e.Run(context.Background())
		if err != nil {
			require.ErrorIs(t, err, tabu.ErrExhaustedNeighborhood, "seed %d", seed)
		}
		for i := 1; i < len(res.Improvements); i++ {
			assert.Greater(t, res.Improvements[i].Objective, res.Improvements[i-1].Objective, "seed %d", seed)
		}
		require.NoError(t, packing.Validate(m, res.Best), "seed %d", seed)
		assert.LessOrEqual(t, res.Objective, e.Bound())
	}
}

// TestRun_Inconsistent rejects repairs outside the freed set or with
// missing edges.
func TestRun_Inconsistent(t *testing.T) {
	arcs := mutual([2]int{0, 1}, [2]int{2, 3})
	arcs = append(arcs, [2]int{4, 5}, [2]int{5, 6}, [2]int{6, 4})
	m := matrix(t, 7, arcs...)
	initial := solution(t, m, cycles.Cycle{0, 1}, cycles.Cycle{2, 3})

	for name, bad := range map[string][]cycles.Cycle{
		"unfreed vertex": {{2, 3}},
		"missing edge":   {{0, 4}},
		"overlap":        {{0, 1}, {1, 0}},
		"too long":       {{4, 5, 6}},
	} {
		bad := bad
		o := &bruteOracle{override: func([]int) [][]cycles.Cycle { return [][]cycles.Cycle{bad} }}
		e := newEngine(t, m, initial, o, cfg(2))
		_, err := e.Run(context.Background())
		assert.ErrorIs(t, err, tabu.ErrInconsistent, name)
	}
}

// TestRun_OracleError propagates oracle failures.
func TestRun_OracleError(t *testing.T) {
	boom := errors.New("solver unavailable")
	m := chain(t)
	e := newEngine(t, m, solution(t, m, cycles.Cycle{1, 2}), &bruteOracle{err: boom}, cfg(2))

	res, err := e.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, res.Objective)
}

// TestRun_Canceled returns the initial packing without error.
func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := chain(t)
	o := &bruteOracle{}
	e := newEngine(t, m, solution(t, m, cycles.Cycle{1, 2}), o, cfg(2))

	res, err := e.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, tabu.Canceled, res.Outcome)
	assert.Zero(t, o.calls)
}

// TestNew_Errors covers constructor validation.
func TestNew_Errors(t *testing.T) {
	m := chain(t)
	_, err := tabu.New(m, packing.Solution{}, nil, cfg(2))
	assert.ErrorIs(t, err, tabu.ErrNilOracle)

	bad := cfg(2)
	bad.K = 1
	_, err = tabu.New(m, packing.Solution{}, &bruteOracle{}, bad)
	assert.ErrorIs(t, err, tabu.ErrInvalidConfig)

	invalid, err := packing.FromCycles(cycles.Score(m), cycles.Cycle{0, 2})
	require.NoError(t, err)
	_, err = tabu.New(m, invalid, &bruteOracle{}, cfg(2))
	assert.ErrorIs(t, err, tabu.ErrInvalidSolution)

	assert.Panics(t, func() { tabu.WithLogger(nil) })
	assert.Panics(t, func() { tabu.WithTracer(nil) })
	assert.Panics(t, func() { tabu.WithClock(nil) })
}

// TestConfig_Validate walks every guarded field.
func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, tabu.DefaultConfig().Validate())

	cases := map[string]func(*tabu.Config){
		"k":          func(c *tabu.Config) { c.K = 1 },
		"time":       func(c *tabu.Config) { c.TimeLimit = 0 },
		"bound":      func(c *tabu.Config) { c.UpperBound = -1 },
		"capacity":   func(c *tabu.Config) { c.TabuCapacity = 0 },
		"sample":     func(c *tabu.Config) { c.InitialSample = -1 },
		"step":       func(c *tabu.Config) { c.SampleStep = -1 },
		"stagnation": func(c *tabu.Config) { c.StagnationLimit = -1 },
		"pool":       func(c *tabu.Config) { c.PoolSize = 0 },
	}
	for name, mutate := range cases {
		c := tabu.DefaultConfig()
		mutate(&c)
		assert.ErrorIs(t, c.Validate(), tabu.ErrInvalidConfig, name)
	}
}

// TestOutcome_String covers the stringer.
func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "upper bound reached", tabu.UpperBoundReached.String())
	assert.Equal(t, "time limit reached", tabu.TimeLimitReached.String())
	assert.Equal(t, "Outcome(42)", tabu.Outcome(42).String())
}
