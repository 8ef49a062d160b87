package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kxtabu/builder"
	"github.com/katalvlaran/kxtabu/cycles"
	"github.com/katalvlaran/kxtabu/packing"
)

func TestRandomSparse_Extremes(t *testing.T) {
	empty, err := builder.RandomSparse(5, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.EdgeCount())

	full, err := builder.RandomSparse(5, 1)
	require.NoError(t, err)
	assert.Equal(t, 20, full.EdgeCount())
	for v := 0; v < 5; v++ {
		assert.False(t, full.Has(v, v))
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	a, err := builder.RandomSparse(30, 0.2, builder.WithSeed(11))
	require.NoError(t, err)
	b, err := builder.RandomSparse(30, 0.2, builder.WithRand(rand.New(rand.NewSource(11))))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	c, err := builder.RandomSparse(30, 0.2, builder.WithSeed(12))
	require.NoError(t, err)
	assert.False(t, a.Equal(c))

	// 870 trials at p=0.2: far from both extremes.
	assert.Greater(t, a.EdgeCount(), 100)
	assert.Less(t, a.EdgeCount(), 300)
}

func TestRandomSparse_Errors(t *testing.T) {
	_, err := builder.RandomSparse(0, 0.5, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.RandomSparse(3, 1.5, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.RandomSparse(3, -0.1, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.RandomSparse(3, 0.5)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestPlanted(t *testing.T) {
	m, planted, err := builder.Planted(12, []int{2, 3, 4}, 0, builder.WithSeed(3))
	require.NoError(t, err)
	require.Len(t, planted, 3)
	assert.Equal(t, 9, m.EdgeCount(), "noise 0 keeps only planted arcs")

	lens := make(map[int]int)
	for i, c := range planted {
		require.NoError(t, cycles.Valid(m, c))
		lens[c.Len()]++
		for _, v := range c[1:] {
			assert.Greater(t, v, c[0], "rotated to smallest vertex")
		}
		if i > 0 {
			assert.Less(t, planted[i-1][0], c[0])
		}
	}
	assert.Equal(t, map[int]int{2: 1, 3: 1, 4: 1}, lens)

	sol, err := packing.FromCycles(cycles.Score(m), planted...)
	require.NoError(t, err)
	require.NoError(t, packing.Validate(m, sol))
	assert.Equal(t, 9, sol.Objective())
}

func TestPlanted_Noise(t *testing.T) {
	m, planted, err := builder.Planted(20, []int{3, 3}, 0.1, builder.WithSeed(5))
	require.NoError(t, err)
	assert.Greater(t, m.EdgeCount(), 6)
	for _, c := range planted {
		assert.NoError(t, cycles.Valid(m, c))
	}

	again, _, err := builder.Planted(20, []int{3, 3}, 0.1, builder.WithSeed(5))
	require.NoError(t, err)
	assert.True(t, m.Equal(again))
}

func TestPlanted_Errors(t *testing.T) {
	_, _, err := builder.Planted(5, []int{3, 3}, 0, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, _, err = builder.Planted(5, []int{1}, 0, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, _, err = builder.Planted(0, nil, 0, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, _, err = builder.Planted(5, []int{2}, 2, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, _, err = builder.Planted(5, []int{2}, 0)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestWithRandNilPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
}
