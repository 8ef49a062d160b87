// SPDX-License-Identifier: MIT
// Package config: sentinel error set.

package config

import "errors"

var (
	// ErrInvalid wraps validator failures of a merged configuration.
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrBadEnv reports an environment override that does not parse.
	ErrBadEnv = errors.New("config: bad environment value")
)
