package builder

import (
	"fmt"

	"github.com/katalvlaran/kxtabu/compat"
)

const (
	methodRandomSparse = "RandomSparse"
	methodPlanted      = "Planted"
	minVertices        = 1
	minCycleLen        = 2
)

// RandomSparse samples a directed Erdős–Rényi matrix: every ordered pair
// (i, j) with i != j becomes an arc independently with probability p.
//
// A random source is required only for 0 < p < 1.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64, opts ...Option) (compat.Matrix, error) {
	if n < minVertices {
		return compat.Matrix{}, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodRandomSparse, n, minVertices, ErrTooFewVertices)
	}
	if err := checkProbability(methodRandomSparse, p); err != nil {
		return compat.Matrix{}, err
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil && p > 0 && p < 1 {
		return compat.Matrix{}, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
	}

	var edges []compat.Edge
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && trial(cfg, p) {
				edges = append(edges, compat.Edge{From: i, To: j})
			}
		}
	}

	return compat.New(n, edges)
}

// trial returns one Bernoulli(p) draw; p of 0 or 1 consumes no randomness.
func trial(cfg config, p float64) bool {
	switch p {
	case 0:
		return false
	case 1:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}

func checkProbability(method string, p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", method, p, ErrInvalidProbability)
	}

	return nil
}
