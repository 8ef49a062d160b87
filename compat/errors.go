// SPDX-License-Identifier: MIT
// Package compat: sentinel error set.
//
// Every message is prefixed with "compat: ". Callers branch with errors.Is;
// context is attached by the caller with fmt.Errorf("ctx: %w", ErrX).

package compat

import "errors"

var (
	// ErrBadShape is returned when a negative vertex count is requested.
	ErrBadShape = errors.New("compat: invalid shape")

	// ErrNonSquare signals that the supplied rows do not form a square matrix.
	ErrNonSquare = errors.New("compat: matrix is not square")

	// ErrOutOfRange indicates that an edge endpoint lies outside [0, n).
	ErrOutOfRange = errors.New("compat: vertex index out of range")

	// ErrBadPermutation indicates that a permutation does not match the
	// matrix order or is not a bijection.
	ErrBadPermutation = errors.New("compat: invalid permutation")
)
