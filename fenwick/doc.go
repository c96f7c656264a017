// SPDX-License-Identifier: MIT

// Package fenwick implements an order-statistics accumulator over a fixed
// number of keys: a Fenwick (binary indexed) tree of non-negative int64
// weights.
//
// Besides the usual prefix-sum queries and point updates, the tree answers
// "which key owns the slice of cumulative weight that contains r". This is
// what turns a uniformly drawn integer in [1, Sum()] into a key chosen with
// probability proportional to its weight:
//
//	weights: [ 3 | 0 | 5 | 2 ]
//	mass:     1-3     4-8  9-10
//	LowerEntry(6) → (2, 3)   // key 2 owns 4..8, 3 units precede it
//
// # Complexity
//
//   - New:        O(n) time, O(n) memory.
//   - From:       O(n) bulk build (no per-key Update).
//   - Query:      O(log n).
//   - Update:     O(log n).
//   - LowerEntry: O(log n), a single binary descent over the implicit tree.
//
// # Contract
//
// Keys are 0-based. Indices outside [0, Len()) panic exactly like slice
// indexing does; the tree is a hot-path primitive and does not return errors.
// Weights must stay non-negative; subtracting more than a key holds is a
// caller bug and breaks LowerEntry.
//
// A Tree is not safe for concurrent mutation.
package fenwick
