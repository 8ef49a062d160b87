package compat

import (
	"fmt"
	"sort"
)

// Order selects the direction used by OrderByDegree.
type Order int

const (
	// Descending puts the highest total degree at index 0.
	Descending Order = iota
	// Ascending puts the lowest total degree at index 0.
	Ascending
)

// String implements fmt.Stringer.
func (o Order) String() string {
	switch o {
	case Descending:
		return "descending"
	case Ascending:
		return "ascending"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Permutation maps vertex labels between an original matrix and its
// relabelled copy. OldToNew[old] == new and NewToOld[new] == old.
type Permutation struct {
	OldToNew []int
	NewToOld []int
}

// Original translates relabelled vertices back to original identifiers.
// Unknown indices are passed through unchanged.
func (p Permutation) Original(vs []int) []int {
	out := make([]int, len(vs))
	for i, v := range vs {
		if v >= 0 && v < len(p.NewToOld) {
			out[i] = p.NewToOld[v]
		} else {
			out[i] = v
		}
	}

	return out
}

// OrderByDegree relabels vertices by total degree (in+out).
// Ties keep ascending original index, so the result is deterministic.
// Complexity: O(n² + n log n).
func OrderByDegree(m Matrix, order Order) (Matrix, Permutation) {
	n := m.n
	deg := make([]int, n)
	newToOld := make([]int, n)
	var v int
	for v = 0; v < n; v++ {
		deg[v] = len(m.out[v]) + len(m.in[v])
		newToOld[v] = v
	}
	sort.SliceStable(newToOld, func(a, b int) bool {
		if order == Ascending {
			return deg[newToOld[a]] < deg[newToOld[b]]
		}

		return deg[newToOld[a]] > deg[newToOld[b]]
	})

	oldToNew := make([]int, n)
	for nv, ov := range newToOld {
		oldToNew[ov] = nv
	}
	perm := Permutation{OldToNew: oldToNew, NewToOld: newToOld}
	relabelled, _ := Relabel(m, perm) // perm is a bijection of order n by construction

	return relabelled, perm
}

// Relabel applies perm to m: edge (i,j) becomes (OldToNew[i], OldToNew[j]).
// Returns ErrBadPermutation if perm is not a bijection on [0, n).
func Relabel(m Matrix, perm Permutation) (Matrix, error) {
	n := m.n
	if len(perm.OldToNew) != n {
		return Matrix{}, fmt.Errorf("Relabel: len=%d, n=%d: %w", len(perm.OldToNew), n, ErrBadPermutation)
	}
	seen := make([]bool, n)
	for _, nv := range perm.OldToNew {
		if nv < 0 || nv >= n || seen[nv] {
			return Matrix{}, fmt.Errorf("Relabel: target %d: %w", nv, ErrBadPermutation)
		}
		seen[nv] = true
	}

	bits := make([]bool, n*n)
	for i, row := range m.out {
		for _, j := range row {
			bits[perm.OldToNew[i]*n+perm.OldToNew[j]] = true
		}
	}

	return fromBits(n, bits), nil
}
