// SPDX-License-Identifier: MIT

// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context as "<Method>: <detail>: %w".
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, k) is
// smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidBridge indicates a Barbell bridge count outside [1, k].
var ErrInvalidBridge = errors.New("builder: invalid bridge count")

// ErrNegativeWeight indicates that the configured WeightFn produced a
// negative weight.
var ErrNegativeWeight = errors.New("builder: negative edge weight")

// ErrConstructFailed indicates that construction could not proceed, e.g. a
// nil constructor was passed to BuildEdges.
var ErrConstructFailed = errors.New("builder: construction failed")
