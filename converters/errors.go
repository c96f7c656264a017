// SPDX-License-Identifier: MIT

package converters

import "errors"

var (
	// ErrNilGraph is returned for a nil source graph.
	ErrNilGraph = errors.New("converters: graph is nil")
	// ErrNonIntegralWeight is returned for NaN, infinite, fractional or
	// out-of-range gonum weights.
	ErrNonIntegralWeight = errors.New("converters: weight is not an int64")
	// ErrNegativeWeight is returned for gonum weights below zero.
	ErrNegativeWeight = errors.New("converters: negative weight")
)
