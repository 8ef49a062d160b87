// Package cycles is the cycle catalog of the exchange: it enumerates every
// simple directed cycle of length 2..k in a compat.Matrix and scores pairs
// and cycles by how easy their members are to match.
//
// Canonical form:
//
//	A Cycle lists its vertices in traversal order starting at its smallest
//	vertex (the enumerator's start). Rotations are never generated twice, so
//	two cycles are equal iff their sequences are equal. Scoring depends on
//	edge order, which is why cycles are never sorted.
//
// Scoring:
//
//	PairScore.Out[v] is the fraction of all vertices v can donate to and
//	PairScore.In[v] the fraction that can donate to v, both rounded to three
//	decimals. A cycle's score is (1/|c|)·Σ sqrt(Out(u)·In(w)) over every
//	consecutive arc u→w, including the closing arc.
//
// Complexity:
//
//	Enumeration is exponential in k in the worst case. Walk never extends a
//	path beyond k vertices and only visits vertices larger than the start,
//	so each cycle is produced exactly once.
package cycles
