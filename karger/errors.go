// SPDX-License-Identifier: MIT

package karger

import "errors"

// ErrNilGraph is returned when an algorithm is constructed without a graph.
var ErrNilGraph = errors.New("karger: graph is nil")

// ErrTooFewVertices is returned for graphs with fewer than two vertices;
// such graphs have no cut.
var ErrTooFewVertices = errors.New("karger: graph needs at least 2 vertices")

// ErrInvalidThreshold is returned when the Karger–Stein base-case size is < 2.
var ErrInvalidThreshold = errors.New("karger: threshold must be at least 2")

// ErrInvalidWorkers is returned when WithWorkers receives k < 1.
var ErrInvalidWorkers = errors.New("karger: workers must be at least 1")

// ErrUnknownAlgorithm is returned by ByName for unsupported names.
var ErrUnknownAlgorithm = errors.New("karger: unknown algorithm")
