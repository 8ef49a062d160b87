package oracle

import (
	"context"
	"math"

	"github.com/katalvlaran/kxtabu/compat"
)

// Assignment costs of the cycle-cover relaxation.
const (
	costArc  = -1 // vertex covered through a compatible arc
	costSelf = 0  // vertex keeps its own slot (unmatched)
)

// CycleCover returns a maximum cycle cover of m with unrestricted cycle
// length: succ[v] is the vertex v donates to, or v itself when v stays
// unmatched. covered is the number of matched vertices.
//
// Stage 1 (Model): an n×n assignment where row i column j costs -1 for an
// arc i→j, 0 on the diagonal and n+1 otherwise. Every permutation of
// minimum cost avoids forbidden entries, since the identity costs 0.
// Stage 2 (Solve): Hungarian algorithm with row/column potentials,
// augmenting one row at a time along a shortest alternating path.
// Stage 3 (Decode): the permutation splits into cycles; fixed points are
// unmatched vertices.
//
// Complexity: O(n³) time, O(n) extra memory besides the matrix.
func CycleCover(ctx context.Context, m compat.Matrix) (succ []int, covered int, err error) {
	n := m.N()
	forbidden := n + 1
	cost := func(i, j int) int {
		switch {
		case i == j:
			return costSelf
		case m.Has(i, j):
			return costArc
		default:
			return forbidden
		}
	}

	// 1-indexed potentials; column 0 is the virtual start of each augment.
	var (
		u    = make([]int, n+1)
		v    = make([]int, n+1)
		p    = make([]int, n+1) // p[j] = row matched to column j
		way  = make([]int, n+1)
		minv = make([]int, n+1)
		used = make([]bool, n+1)
	)
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		p[0] = i
		j0 := 0
		for j := range minv {
			minv[j] = math.MaxInt
			used[j] = false
		}
		for {
			used[j0] = true
			i0, delta, j1 := p[j0], math.MaxInt, 0
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				if cur := cost(i0-1, j-1) - u[i0] - v[j]; cur < minv[j] {
					minv[j], way[j] = cur, j0
				}
				if minv[j] < delta {
					delta, j1 = minv[j], j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	succ = make([]int, n)
	for j := 1; j <= n; j++ {
		i := p[j] - 1
		succ[i] = j - 1
		if i != j-1 {
			covered++
		}
	}

	return succ, covered, nil
}
