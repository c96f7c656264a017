// SPDX-License-Identifier: MIT

// Package edgelist reads and writes graphs in the plain-text edge-list format
// consumed by the min-cut tools.
//
// Format:
//
//	# optional comment lines and blank lines are ignored
//	4          ← vertex count n (first data line)
//	0 1 3      ← directed edge v → w with weight 3
//	1 0 3
//	2 3        ← weight defaults to 1
//
// Vertices are 0-indexed and must satisfy v, w < n. Weights are non-negative
// integers. Each undirected edge should be listed once per direction with the
// same weight; the reader does not mirror edges (see contraction.Graph.Symmetric).
//
// Parse failures are returned as *ParseError carrying the 1-based line number
// and wrapping ErrMalformedLine, ErrVertexOutOfRange or ErrNegativeWeight.
package edgelist
