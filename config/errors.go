// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrUnknownMode is returned for an algorithm.mode outside the known set.
	ErrUnknownMode = errors.New("config: unknown mode")
	// ErrInvalidValue is returned when a numeric key is out of range.
	ErrInvalidValue = errors.New("config: invalid value")
)
