// Package compat models the donor/recipient compatibility relation of a
// kidney exchange as an immutable n×n boolean matrix and provides the graph
// preprocessing steps applied before any search.
//
// What & Why:
//
//	Entry (i, j) is true when pair i can donate to pair j. Every search
//	component receives the matrix explicitly; nothing in this module keeps
//	ambient matrix state. Derivations (Reduce, OrderByDegree, Without,
//	Induced) always return a fresh Matrix, so a base instance can be shared
//	read-only between builders without aliasing.
//
// Preprocessing:
//
//   - Reduce removes vertices that can never be matched: a vertex without an
//     out-edge (or in-edge) to a surviving vertex is cleared, repeatedly,
//     until a full pass changes nothing. Reduce is idempotent.
//   - OrderByDegree relabels vertices by total degree and returns the
//     Permutation needed to translate identifiers back.
//
// Complexity:
//
//	Construction is O(n²) (flat bit storage plus neighbour lists).
//	Has is O(1). Reduce is O(n²) amortized over all removals.
package compat
