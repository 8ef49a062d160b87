package tabu_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kxtabu/compat"
	"github.com/katalvlaran/kxtabu/cycles"
	"github.com/katalvlaran/kxtabu/packing"
)

// bruteOracle enumerates every maximum packing of the subset and hands
// out pool consecutive ones, rotating on each call so repeated moves see
// different repairs.
type bruteOracle struct {
	calls    int
	rotation int
	subsets  []int // len(subset) per call
	err      error
	override func(subset []int) [][]cycles.Cycle
}

func (b *bruteOracle) BestPackings(_ context.Context, m compat.Matrix, subset []int, k, pool int) ([][]cycles.Cycle, error) {
	b.calls++
	b.subsets = append(b.subsets, len(subset))
	if b.err != nil {
		return nil, b.err
	}
	if b.override != nil {
		return b.override(subset), nil
	}
	cs, err := cycles.Enumerate(m.Induced(subset), k)
	if err != nil {
		return nil, err
	}
	all := maxPackings(cs)
	out := make([][]cycles.Cycle, 0, pool)
	for i := 0; i < pool && i < len(all); i++ {
		out = append(out, all[(b.rotation+i)%len(all)])
	}
	b.rotation++

	return out, nil
}

// maxPackings returns all vertex-disjoint subsets of cs with the largest
// number of covered vertices, in include-first search order.
func maxPackings(cs []cycles.Cycle) [][]cycles.Cycle {
	var (
		best    [][]cycles.Cycle
		bestObj = -1
		cur     []cycles.Cycle
		used    = map[int]bool{}
	)
	var rec func(i, obj int)
	rec = func(i, obj int) {
		if i == len(cs) {
			switch {
			case obj > bestObj:
				bestObj = obj
				best = [][]cycles.Cycle{append([]cycles.Cycle(nil), cur...)}
			case obj == bestObj:
				best = append(best, append([]cycles.Cycle(nil), cur...))
			}
			return
		}
		c := cs[i]
		free := true
		for _, v := range c {
			if used[v] {
				free = false
				break
			}
		}
		if free {
			for _, v := range c {
				used[v] = true
			}
			cur = append(cur, c)
			rec(i+1, obj+len(c))
			cur = cur[:len(cur)-1]
			for _, v := range c {
				used[v] = false
			}
		}
		rec(i+1, obj)
	}
	rec(0, 0)

	return best
}

// matrix builds an n-vertex matrix from arcs.
func matrix(t *testing.T, n int, arcs ...[2]int) compat.Matrix {
	t.Helper()
	edges := make([]compat.Edge, len(arcs))
	for i, a := range arcs {
		edges[i] = compat.Edge{From: a[0], To: a[1]}
	}
	m, err := compat.New(n, edges)
	require.NoError(t, err)

	return m
}

// mutual returns both arcs of every listed pair.
func mutual(pairs ...[2]int) [][2]int {
	var out [][2]int
	for _, p := range pairs {
		out = append(out, p, [2]int{p[1], p[0]})
	}
	return out
}

// solution scores cs against m.
func solution(t *testing.T, m compat.Matrix, cs ...cycles.Cycle) packing.Solution {
	t.Helper()
	s, err := packing.FromCycles(cycles.Score(m), cs...)
	require.NoError(t, err)

	return s
}

// stepClock advances by step on every reading.
func stepClock(step time.Duration) func() time.Time {
	t := time.Unix(0, 0)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}
