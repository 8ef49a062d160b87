// Package packing models a cycle packing: a set of vertex-disjoint exchange
// cycles together with its objective (vertices covered) and total score.
//
// A Solution is immutable. Its items are kept in canonical order (by cycle
// key) so that two solutions holding the same cycles share one Signature,
// the identity used by tabu lists and de-duplication.
//
// Compare orders solutions lexicographically: objective first, total score
// second, both higher-is-better.
package packing
