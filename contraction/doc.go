// SPDX-License-Identifier: MIT

// Package contraction implements the weighted multigraph used by randomized
// minimum-cut algorithms and the contraction step they are built on.
//
// A Graph is built once from directed edges and is immutable afterwards.
// Contract returns a new, smaller Graph; the receiver is never modified, so a
// single source graph can feed any number of independent trials.
//
// # Representation
//
//	Graph{n, weight, nodes}
//	  Node{Vertex, Weight, Edges}   Weight = Σ Edges[i].Weight
//	    Edge{To, Weight}            To != Vertex, one entry per neighbor
//
// Parallel directed edges are summed, self-loops are dropped, and each
// directed edge only contributes to its source vertex. The graph does not
// symmetrize its input: an undirected edge {u,v} of weight w must be supplied
// as (u,v,w) and (v,u,w). Under that convention the weight of a graph
// contracted to two vertices is exactly twice the weight of the cut it
// represents. Symmetric reports inputs that break the convention.
//
// # Contraction
//
// Each step samples one edge with probability proportional to its weight and
// merges its endpoints:
//
//  1. Draw r uniformly from [1, W] where W is the current total weight.
//  2. A Fenwick tree over per-vertex weights maps r to the vertex v owning
//     that slice of mass and the mass rw preceding v.
//  3. Scan v's edges, adding weights to rw until it reaches r: that edge is
//     the sample (v, w).
//  4. Resolve w to its current super-vertex through a union-find forest.
//  5. Union the two components.
//  6. Merge both edge lists, redirecting neighbors through the forest,
//     dropping references into the merged component and summing weights of
//     neighbors that now coincide. The stack/proxy scratch keeps this linear
//     in the combined degree.
//  7. Update the Fenwick tree and the running total weight.
//  8. Store the merged node at the surviving root's slot.
//
// After n-t steps the forest is condensed into labels 0..t-1 and every
// surviving node is relabeled with the same scratch aggregator.
//
// # Complexity
//
//   - FromDirectedEdges: O(n + m) expected.
//   - Contract(t):       O((n-t) · (log n + d)) where d is the degree of the
//     merged endpoints, plus O(n + m) for the copy and the final relabel.
//
// # Errors
//
//	ErrTooFewVertices   - n < 1.
//	ErrVertexOutOfRange - an edge endpoint outside [0, n).
//	ErrNegativeWeight   - an edge with weight < 0.
//	ErrInvalidTarget    - Contract target outside [1, n].
//	ErrAsymmetric       - Symmetric found a direction pair with unequal weight.
package contraction
