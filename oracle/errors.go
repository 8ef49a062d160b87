// SPDX-License-Identifier: MIT
// Package oracle: sentinel error set.

package oracle

import "errors"

var (
	// ErrSubproblemTooLarge is returned when a packing subproblem has more
	// cycles than WithMaxCycles allows.
	ErrSubproblemTooLarge = errors.New("oracle: subproblem has too many cycles")

	// ErrInvalidPool is returned for a pool size below 1.
	ErrInvalidPool = errors.New("oracle: pool size must be at least 1")

	// ErrUnsatisfiable indicates the solver rejected a model that always
	// admits the empty packing.
	ErrUnsatisfiable = errors.New("oracle: model unexpectedly unsatisfiable")
)
