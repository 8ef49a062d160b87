package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/kxtabu/compat"
	"github.com/katalvlaran/kxtabu/cycles"
)

// Planted returns an n-vertex matrix that contains vertex-disjoint cycles
// of the given lengths on randomly chosen vertices, plus noise arcs added
// independently with probability noise. The planted cycles are returned
// rotated to start at their smallest vertex and ordered by that vertex,
// so Σ lengths is a lower bound on the optimum for k ≥ max(lengths).
//
// Each length must be ≥ 2 and their sum ≤ n (ErrTooFewVertices).
// A random source is always required.
func Planted(n int, lengths []int, noise float64, opts ...Option) (compat.Matrix, []cycles.Cycle, error) {
	if n < minVertices {
		return compat.Matrix{}, nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodPlanted, n, minVertices, ErrTooFewVertices)
	}
	total := 0
	for _, l := range lengths {
		if l < minCycleLen {
			return compat.Matrix{}, nil, fmt.Errorf("%s: length %d < min=%d: %w",
				methodPlanted, l, minCycleLen, ErrTooFewVertices)
		}
		total += l
	}
	if total > n {
		return compat.Matrix{}, nil, fmt.Errorf("%s: planted %d vertices > n=%d: %w",
			methodPlanted, total, n, ErrTooFewVertices)
	}
	if err := checkProbability(methodPlanted, noise); err != nil {
		return compat.Matrix{}, nil, err
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return compat.Matrix{}, nil, fmt.Errorf("%s: %w", methodPlanted, ErrNeedRandSource)
	}

	// Random vertex order first, then noise trials in (i, j) order.
	perm := cfg.rng.Perm(n)
	planted := make([]cycles.Cycle, 0, len(lengths))
	var edges []compat.Edge
	at := 0
	for _, l := range lengths {
		c := cycles.Cycle(perm[at : at+l])
		at += l
		for i := range c {
			edges = append(edges, compat.Edge{From: c[i], To: c[(i+1)%l]})
		}
		planted = append(planted, c.Canonical())
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && trial(cfg, noise) {
				edges = append(edges, compat.Edge{From: i, To: j})
			}
		}
	}
	sort.Slice(planted, func(a, b int) bool { return planted[a][0] < planted[b][0] })

	m, err := compat.New(n, edges)
	if err != nil {
		return compat.Matrix{}, nil, err
	}

	return m, planted, nil
}
