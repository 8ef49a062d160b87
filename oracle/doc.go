// Package oracle is a pure-Go reference implementation of the optimization
// oracle consumed by the search packages.
//
// Operations:
//
//	UpperBound     cycle-cover relaxation (unbounded cycle length) solved
//	               exactly as an assignment problem with the Hungarian
//	               algorithm.
//	OptimalPairing weighted partial MAXSAT over mutual pairs: cardinality
//	               first, then the lowest aggregate pair score.
//	BestPackings   weighted partial MAXSAT over the cycles of a vertex
//	               subset; further pool members are found by forbidding
//	               already reported packings.
//
// The MAXSAT models are solved with gophersat. Every operation checks its
// context between solver calls; a single solver call is not preemptible.
//
// Complexity: UpperBound is O(n³); the MAXSAT operations are exponential
// in the worst case, WithMaxCycles bounds the size of packing subproblems.
package oracle
