// SPDX-License-Identifier: MIT

// Package converters adapts between contraction.Graph and gonum/graph.
//
// Import:
//   - FromWeightedUndirected: gonum ids are relabeled densely in ascending id
//     order; weights must be non-negative integers.
//   - FromUndirected: every gonum edge gets weight 1.
//
// Export:
//   - ToWeightedDirected: every aggregated adjacency entry becomes one arc.
//   - ToWeightedUndirected: requires a symmetric graph.
//
// Imported graphs emit each undirected edge in both directions, so a
// contracted weight is twice the corresponding gonum cut weight.
package converters
