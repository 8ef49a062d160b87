// SPDX-License-Identifier: MIT
// Package builder: sentinel error set.
//
// Callers branch with errors.Is. Generators wrap these with the method name
// and the offending parameter.

package builder

import "errors"

var (
	// ErrTooFewVertices indicates a vertex count or cycle length below the
	// generator minimum, or planted cycles that do not fit into n vertices.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic generator called without
	// WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")
)
