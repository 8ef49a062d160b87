// SPDX-License-Identifier: MIT
// Package cycles: sentinel error set.

package cycles

import "errors"

var (
	// ErrInvalidLength is returned when the cycle-length bound k is below 2
	// or a cycle has fewer than two vertices.
	ErrInvalidLength = errors.New("cycles: cycle length bound must be at least 2")

	// ErrEmptyMatrix is returned when enumeration is requested on a matrix
	// without vertices.
	ErrEmptyMatrix = errors.New("cycles: empty compatibility matrix")

	// ErrMissingEdge indicates that a cycle uses an arc absent from the matrix.
	ErrMissingEdge = errors.New("cycles: cycle uses a missing edge")

	// ErrRepeatedVertex indicates that a cycle visits a vertex twice.
	ErrRepeatedVertex = errors.New("cycles: cycle repeats a vertex")

	// ErrLengthMismatch indicates that a score list is not parallel to its cycles.
	ErrLengthMismatch = errors.New("cycles: scores are not parallel to cycles")
)
