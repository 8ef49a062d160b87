package oracle_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kxtabu/compat"
	"github.com/katalvlaran/kxtabu/cycles"
	"github.com/katalvlaran/kxtabu/jumpstart"
	"github.com/katalvlaran/kxtabu/packing"
	"github.com/katalvlaran/kxtabu/tabu"
	"github.com/katalvlaran/kxtabu/telemetry"
)

// TestPipeline runs reduce, jump start and tabu search with the reference
// oracle and checks every invariant on the returned packing.
func TestPipeline(t *testing.T) {
	ctx := context.Background()
	o := newOracle()

	for seed := int64(1); seed <= 3; seed++ {
		raw := random(t, 18, 0.15, seed)
		reduced, _ := compat.Reduce(raw)

		initial, err := jumpstart.Build(ctx, reduced, 3, o,
			jumpstart.WithRuns(50), jumpstart.WithSeed(seed), jumpstart.WithLogger(telemetry.Discard()))
		require.NoError(t, err)

		ub, err := o.UpperBound(ctx, reduced)
		require.NoError(t, err)
		require.LessOrEqual(t, initial.Objective(), ub)

		cfg := tabu.DefaultConfig()
		cfg.K = 3
		cfg.UpperBound = ub
		cfg.TimeLimit = 300 * time.Millisecond
		cfg.Seed = seed
		cfg.TabuCapacity = 3
		e, err := tabu.New(reduced, initial, o, cfg, tabu.WithLogger(telemetry.Discard()))
		require.NoError(t, err)

		res, err := e.Run(ctx)
		if err != nil {
			require.ErrorIs(t, err, tabu.ErrExhaustedNeighborhood, "seed %d", seed)
		}
		assert.GreaterOrEqual(t, res.Objective, initial.Objective())
		assert.LessOrEqual(t, res.Objective, ub)

		// Valid against the original, unreduced matrix.
		require.NoError(t, packing.Validate(raw, res.Best))
		for _, c := range res.Best.Cycles() {
			assert.LessOrEqual(t, c.Len(), 3)
		}

		// Objective never exceeds the brute-force optimum for k=3.
		cs, err := cycles.Enumerate(reduced, 3)
		require.NoError(t, err)
		assert.LessOrEqual(t, res.Objective, bestObjective(cs))
	}
}
