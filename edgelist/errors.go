// SPDX-License-Identifier: MIT

package edgelist

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when the input holds no vertex-count line.
var ErrEmptyInput = errors.New("edgelist: missing vertex count")

// ErrMalformedLine is returned for a line that is not "n" or "v w [weight]".
var ErrMalformedLine = errors.New("edgelist: malformed line")

// ErrVertexOutOfRange is returned for an endpoint outside [0, n).
var ErrVertexOutOfRange = errors.New("edgelist: vertex out of range")

// ErrNegativeWeight is returned for a weight below zero.
var ErrNegativeWeight = errors.New("edgelist: negative weight")

// ParseError locates a failure in the input.
type ParseError struct {
	Line int    // 1-based
	Text string // offending line, trimmed
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("edgelist: line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
