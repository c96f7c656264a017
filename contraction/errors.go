// SPDX-License-Identifier: MIT

package contraction

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices is returned when a graph is requested with no vertices.
var ErrTooFewVertices = errors.New("contraction: too few vertices")

// ErrVertexOutOfRange is returned when an edge references a vertex outside [0, n).
var ErrVertexOutOfRange = errors.New("contraction: vertex out of range")

// ErrNegativeWeight is returned when an edge carries a negative weight.
var ErrNegativeWeight = errors.New("contraction: negative edge weight")

// ErrInvalidTarget is returned when Contract is asked for a vertex count
// outside [1, n].
var ErrInvalidTarget = errors.New("contraction: invalid target vertex count")

// ErrAsymmetric is returned by Symmetric when u→v and v→u carry different
// total weights.
var ErrAsymmetric = errors.New("contraction: asymmetric edge weights")

// EdgeError describes the offending edge of a construction failure.
type EdgeError struct {
	Index int // position in the input sequence
	Edge  DirectedEdge
	Err   error
}

func (e *EdgeError) Error() string {
	return fmt.Sprintf("contraction: edge #%d (%d→%d, w=%d): %v",
		e.Index, e.Edge.From, e.Edge.To, e.Edge.Weight, e.Err)
}

func (e *EdgeError) Unwrap() error { return e.Err }

// AsymmetryError lists one direction pair whose weights disagree.
type AsymmetryError struct {
	U, V         int
	Forward      int64 // total weight u→v
	Backward     int64 // total weight v→u
	Inconsistent int   // number of disagreeing pairs in the graph
}

func (e *AsymmetryError) Error() string {
	return fmt.Sprintf("contraction: %d asymmetric pair(s), first %d→%d=%d vs %d→%d=%d",
		e.Inconsistent, e.U, e.V, e.Forward, e.V, e.U, e.Backward)
}

func (e *AsymmetryError) Unwrap() error { return ErrAsymmetric }
