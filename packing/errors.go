// SPDX-License-Identifier: MIT
// Package packing: sentinel error set.

package packing

import "errors"

var (
	// ErrOverlap indicates two cycles of one packing share a vertex.
	ErrOverlap = errors.New("packing: cycles share a vertex")

	// ErrShortCycle indicates a cycle with fewer than two vertices.
	ErrShortCycle = errors.New("packing: cycle shorter than two vertices")

	// ErrIndexOutOfRange indicates an item index outside the solution.
	ErrIndexOutOfRange = errors.New("packing: item index out of range")
)
