// SPDX-License-Identifier: MIT

// Package unionfind provides a fixed-size disjoint-set forest over the
// integers 0..n-1 together with the scratch buffers used to aggregate
// adjacency while components are merged.
//
// The forest uses union by size and path compression (path halving). Union by
// size alone bounds tree height by log2(n), so no separate rank is kept.
//
// Condense turns the final forest into a dense relabeling: the surviving roots
// are numbered 0..k-1 in ascending index order and every element receives the
// number of its root. Condense consumes the forest; it is meant to run once at
// the end of a contraction.
//
// Scratch is an explicitly passed arena: a stack of touched ids plus a proxy
// array indexed by id. Users must leave every Proxy entry at zero when they
// are done so the buffers can be reused without clearing.
package unionfind
