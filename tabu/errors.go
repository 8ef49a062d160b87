// SPDX-License-Identifier: MIT
// Package tabu: sentinel error set.

package tabu

import "errors"

var (
	// ErrExhaustedNeighborhood indicates that every neighbour of an
	// iteration was tabu (or none existed). Fatal for the run.
	ErrExhaustedNeighborhood = errors.New("tabu: no admissible neighbour")

	// ErrInconsistent indicates that the oracle returned a repair packing
	// using vertices outside the freed set, edges absent from the matrix,
	// or overlapping cycles.
	ErrInconsistent = errors.New("tabu: oracle packing inconsistent with move")

	// ErrInvalidConfig indicates a Config that fails Validate.
	ErrInvalidConfig = errors.New("tabu: invalid config")

	// ErrInvalidSolution indicates an initial packing that is not valid in
	// the matrix.
	ErrInvalidSolution = errors.New("tabu: invalid initial solution")

	// ErrNilOracle is returned by New without a packing oracle.
	ErrNilOracle = errors.New("tabu: nil packing oracle")
)
