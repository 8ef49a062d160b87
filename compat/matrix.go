package compat

import (
	"fmt"
	"strings"
)

// Matrix is an immutable n×n compatibility relation.
// bits holds n*n entries in row-major order; out and in are ascending
// neighbour lists derived once at construction.
//
// The zero value is an empty matrix (n == 0).
type Matrix struct {
	n    int
	bits []bool
	out  [][]int
	in   [][]int
}

// Edge is a directed compatibility (From can donate to To).
type Edge struct {
	From, To int
}

// New builds an n-vertex matrix from an edge list.
// Self-loops are dropped; duplicate edges collapse.
// Returns ErrBadShape for n < 0 and ErrOutOfRange for bad endpoints.
// Complexity: O(n² + len(edges)).
func New(n int, edges []Edge) (Matrix, error) {
	if n < 0 {
		return Matrix{}, fmt.Errorf("New(n=%d): %w", n, ErrBadShape)
	}
	bits := make([]bool, n*n)
	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return Matrix{}, fmt.Errorf("New: edge %d→%d: %w", e.From, e.To, ErrOutOfRange)
		}
		if e.From == e.To {
			continue
		}
		bits[e.From*n+e.To] = true
	}

	return fromBits(n, bits), nil
}

// FromRows builds a matrix from a square boolean table.
// The diagonal is ignored. rows is copied, never retained.
// Complexity: O(n²).
func FromRows(rows [][]bool) (Matrix, error) {
	n := len(rows)
	bits := make([]bool, n*n)
	for i, row := range rows {
		if len(row) != n {
			return Matrix{}, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w",
				i, len(row), n, ErrNonSquare)
		}
		for j, v := range row {
			if v && i != j {
				bits[i*n+j] = true
			}
		}
	}

	return fromBits(n, bits), nil
}

// fromBits takes ownership of bits and derives the neighbour lists.
func fromBits(n int, bits []bool) Matrix {
	m := Matrix{
		n:    n,
		bits: bits,
		out:  make([][]int, n),
		in:   make([][]int, n),
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if bits[i*n+j] {
				m.out[i] = append(m.out[i], j) // j ascending
				m.in[j] = append(m.in[j], i)   // i ascending
			}
		}
	}

	return m
}

// N returns the number of vertices.
func (m Matrix) N() int { return m.n }

// Has reports whether i can donate to j. Out-of-range indices yield false.
// Complexity: O(1).
func (m Matrix) Has(i, j int) bool {
	if i < 0 || j < 0 || i >= m.n || j >= m.n {
		return false
	}

	return m.bits[i*m.n+j]
}

// Successors returns the ascending out-neighbours of v.
// The slice is shared with the matrix and must not be modified.
func (m Matrix) Successors(v int) []int {
	if v < 0 || v >= m.n {
		return nil
	}

	return m.out[v]
}

// Predecessors returns the ascending in-neighbours of v.
// The slice is shared with the matrix and must not be modified.
func (m Matrix) Predecessors(v int) []int {
	if v < 0 || v >= m.n {
		return nil
	}

	return m.in[v]
}

// OutDegree returns the number of vertices v can donate to.
func (m Matrix) OutDegree(v int) int { return len(m.Successors(v)) }

// InDegree returns the number of vertices that can donate to v.
func (m Matrix) InDegree(v int) int { return len(m.Predecessors(v)) }

// EdgeCount returns the number of true entries.
func (m Matrix) EdgeCount() int {
	var c int
	for _, row := range m.out {
		c += len(row)
	}

	return c
}

// Density returns EdgeCount / n², or 0 for an empty matrix.
func (m Matrix) Density() float64 {
	if m.n == 0 {
		return 0
	}

	return float64(m.EdgeCount()) / float64(m.n*m.n)
}

// Edges lists all edges in row-major order.
func (m Matrix) Edges() []Edge {
	edges := make([]Edge, 0, m.EdgeCount())
	for i, row := range m.out {
		for _, j := range row {
			edges = append(edges, Edge{From: i, To: j})
		}
	}

	return edges
}

// Rows returns a fresh boolean table equal to the matrix.
func (m Matrix) Rows() [][]bool {
	rows := make([][]bool, m.n)
	for i := range rows {
		rows[i] = append([]bool(nil), m.bits[i*m.n:(i+1)*m.n]...)
	}

	return rows
}

// Matchable returns, ascending, the vertices with at least one out-edge and
// one in-edge. Only these can ever appear in a cycle.
func (m Matrix) Matchable() []int {
	var vs []int
	for v := 0; v < m.n; v++ {
		if len(m.out[v]) > 0 && len(m.in[v]) > 0 {
			vs = append(vs, v)
		}
	}

	return vs
}

// Without returns a residual matrix in which every edge touching one of vs
// is cleared. Vertex indices are preserved. Out-of-range entries are ignored.
// Complexity: O(n² + len(vs)·n).
func (m Matrix) Without(vs ...int) Matrix {
	bits := append([]bool(nil), m.bits...)
	for _, v := range vs {
		if v < 0 || v >= m.n {
			continue
		}
		for _, j := range m.out[v] {
			bits[v*m.n+j] = false
		}
		for _, i := range m.in[v] {
			bits[i*m.n+v] = false
		}
	}

	return fromBits(m.n, bits)
}

// Induced returns the matrix restricted to edges with both endpoints in
// subset. Vertex indices are preserved, so cycles found on the restriction
// are valid in m unchanged.
// Complexity: O(n² + Σ deg(subset)).
func (m Matrix) Induced(subset []int) Matrix {
	keep := make([]bool, m.n)
	for _, v := range subset {
		if v >= 0 && v < m.n {
			keep[v] = true
		}
	}
	bits := make([]bool, m.n*m.n)
	for v := 0; v < m.n; v++ {
		if !keep[v] {
			continue
		}
		for _, j := range m.out[v] {
			if keep[j] {
				bits[v*m.n+j] = true
			}
		}
	}

	return fromBits(m.n, bits)
}

// Equal reports whether both matrices have the same order and entries.
func (m Matrix) Equal(o Matrix) bool {
	if m.n != o.n {
		return false
	}
	for i := range m.bits {
		if m.bits[i] != o.bits[i] {
			return false
		}
	}

	return true
}

// String renders the matrix as rows of 0/1 for debugging.
func (m Matrix) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.n; j++ {
			if m.bits[i*m.n+j] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
