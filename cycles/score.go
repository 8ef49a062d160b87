package cycles

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kxtabu/compat"
)

// scorePrecision is the rounding granularity of pair scores (3 decimals).
const scorePrecision = 1000.0

// PairScore holds per-vertex desirability fractions derived from a matrix.
// Out[v] is the fraction of all vertices v can supply, In[v] the fraction
// that can supply v. Both lie in [0,1].
type PairScore struct {
	Out []float64
	In  []float64
}

// Score derives the PairScore of m. Fractions are taken over all n
// vertices of the matrix, removed ones included.
// Complexity: O(n).
func Score(m compat.Matrix) PairScore {
	n := m.N()
	ps := PairScore{Out: make([]float64, n), In: make([]float64, n)}
	if n == 0 {
		return ps
	}
	for v := 0; v < n; v++ {
		ps.Out[v] = round3(float64(m.OutDegree(v)) / float64(n))
		ps.In[v] = round3(float64(m.InDegree(v)) / float64(n))
	}

	return ps
}

// round3 rounds x to three decimals.
func round3(x float64) float64 {
	return math.Round(x*scorePrecision) / scorePrecision
}

// Aggregate returns Out[v]+In[v], the per-vertex term used to rank 2-cycle
// pairings. Out-of-range vertices score 0.
func (ps PairScore) Aggregate(v int) float64 {
	if v < 0 || v >= len(ps.Out) {
		return 0
	}

	return ps.Out[v] + ps.In[v]
}

// arc returns sqrt(Out(u)·In(w)); unknown vertices contribute 0.
func (ps PairScore) arc(u, w int) float64 {
	if u < 0 || w < 0 || u >= len(ps.Out) || w >= len(ps.In) {
		return 0
	}

	return math.Sqrt(ps.Out[u] * ps.In[w])
}

// ScoreOne scores a single cycle against a precomputed PairScore. It is the
// incremental form used inside the search loop.
// Complexity: O(|c|).
func ScoreOne(c Cycle, ps PairScore) float64 {
	if len(c) == 0 {
		return 0
	}
	var sum float64
	for i, u := range c {
		sum += ps.arc(u, c[(i+1)%len(c)])
	}

	return sum / float64(len(c))
}

// ScoreAll returns scores parallel to cs, deriving the PairScore once.
func ScoreAll(m compat.Matrix, cs []Cycle) []float64 {
	ps := Score(m)
	out := make([]float64, len(cs))
	for i, c := range cs {
		out[i] = ScoreOne(c, ps)
	}

	return out
}

// CheckParallel reports ErrLengthMismatch when scores is not parallel to cs.
func CheckParallel(cs []Cycle, scores []float64) error {
	if len(cs) != len(scores) {
		return fmt.Errorf("%d cycles, %d scores: %w", len(cs), len(scores), ErrLengthMismatch)
	}

	return nil
}
