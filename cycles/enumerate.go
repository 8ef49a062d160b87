package cycles

import (
	"fmt"

	"github.com/katalvlaran/kxtabu/compat"
)

// minLength is the shortest meaningful exchange cycle (a mutual pair).
const minLength = 2

// Enumerate returns every simple directed cycle of m with 2..k vertices.
// Order: by start vertex ascending, then by DFS over ascending successors.
// Returns ErrInvalidLength for k < 2 and ErrEmptyMatrix for n == 0.
func Enumerate(m compat.Matrix, k int) ([]Cycle, error) {
	var out []Cycle
	err := Walk(m, k, func(c Cycle) bool {
		out = append(out, c)
		return true
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Walk streams the cycles Enumerate would return to fn, stopping early as
// soon as fn returns false. Every Cycle passed to fn is freshly allocated
// and may be retained.
//
// Stage 1 (Validate): reject k < 2 and empty matrices.
// Stage 2 (Execute): for each start s, a depth-first search over vertices
// greater than s extends the current path while it holds fewer than k
// vertices; an arc back to s from a path of length ≥ 2 closes a cycle.
//
// Complexity: O(Σ paths of length ≤ k), O(n + k) extra memory.
func Walk(m compat.Matrix, k int, fn func(Cycle) bool) error {
	if k < minLength {
		return fmt.Errorf("Walk(k=%d): %w", k, ErrInvalidLength)
	}
	n := m.N()
	if n == 0 {
		return ErrEmptyMatrix
	}
	if k > n {
		k = n // no simple cycle is longer than n
	}

	w := walker{
		m:      m,
		k:      k,
		fn:     fn,
		onPath: make([]bool, n),
		path:   make([]int, 0, k),
	}
	for s := 0; s < n && !w.stopped; s++ {
		// A start without both an in- and an out-arc closes no cycle.
		if m.OutDegree(s) == 0 || m.InDegree(s) == 0 {
			continue
		}
		w.start = s
		w.path = append(w.path[:0], s)
		w.onPath[s] = true
		w.visit(s)
		w.onPath[s] = false
	}

	return nil
}

// walker holds the DFS state of one Walk call.
type walker struct {
	m       compat.Matrix
	k       int
	fn      func(Cycle) bool
	start   int
	onPath  []bool
	path    []int
	stopped bool
}

// visit extends the path from its last vertex v.
func (w *walker) visit(v int) {
	for _, x := range w.m.Successors(v) {
		if w.stopped {
			return
		}
		if x == w.start {
			if len(w.path) >= minLength {
				if !w.fn(append(Cycle(nil), w.path...)) {
					w.stopped = true
					return
				}
			}
			continue
		}
		// Only vertices above the start keep the start canonical.
		if x < w.start || w.onPath[x] || len(w.path) == w.k {
			continue
		}
		w.onPath[x] = true
		w.path = append(w.path, x)
		w.visit(x)
		w.path = w.path[:len(w.path)-1]
		w.onPath[x] = false
	}
}

// Count returns the number of cycles of length 2..k without materializing
// them, stopping once limit cycles were seen (limit ≤ 0 means no limit).
func Count(m compat.Matrix, k, limit int) (int, error) {
	var c int
	err := Walk(m, k, func(Cycle) bool {
		c++
		return limit <= 0 || c < limit
	})

	return c, err
}

// LengthHistogram counts cycles per length: h[l] is the number of cycles
// with l vertices. The slice has length maxLen+1.
func LengthHistogram(cs []Cycle) []int {
	maxLen := 0
	for _, c := range cs {
		if len(c) > maxLen {
			maxLen = len(c)
		}
	}
	h := make([]int, maxLen+1)
	for _, c := range cs {
		h[len(c)]++
	}

	return h
}
