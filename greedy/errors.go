// SPDX-License-Identifier: MIT
// Package greedy: sentinel error set.

package greedy

import "errors"

// ErrLengthMismatch is returned by New when cycles and scores differ in length.
var ErrLengthMismatch = errors.New("greedy: cycles and scores differ in length")
