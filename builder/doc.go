// Package builder generates compatibility matrices for tests, examples and
// the command line.
//
// Generators are deterministic for a fixed seed: vertex and arc trials run
// in ascending (i, j) order and consume the random source in that order.
//
//	m, err := builder.RandomSparse(50, 0.05, builder.WithSeed(7))
//	m, planted, err := builder.Planted(30, []int{2, 3, 3}, 0.02, builder.WithSeed(7))
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource.
// Option constructors panic on meaningless values; generators never panic.
package builder
