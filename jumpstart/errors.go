// SPDX-License-Identifier: MIT
// Package jumpstart: sentinel error set.

package jumpstart

import "errors"

var (
	// ErrInconsistent indicates the pairing and greedy phases produced a
	// cycle that is not valid in the original matrix, or overlapping cycles.
	ErrInconsistent = errors.New("jumpstart: internal consistency violation")

	// ErrNilOracle is returned when Build is called without a pairing oracle.
	ErrNilOracle = errors.New("jumpstart: nil pairing oracle")
)
