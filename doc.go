// SPDX-License-Identifier: MIT

// Package mincut estimates the global minimum cut of undirected,
// non-negatively weighted multigraphs by randomized edge contraction.
//
// 🚀 What is mincut?
//
//	A small library plus CLI that brings together:
//		• Karger: repeated full contractions to two super-vertices
//		• Karger–Stein: recursive contraction with a Karger base case
//		• Trial control: success lower bounds, minimum trial counts,
//		  adaptive budgets and parallel trials with derived RNG streams
//		• Fixture topologies, edge-list I/O and gonum/graph adapters
//
// Under the hood, everything is organized into focused subpackages:
//
//	fenwick/     prefix sums and weighted key selection in O(log n)
//	unionfind/   disjoint-set forest with condense to dense labels
//	contraction/ weighted contraction graph and one contraction run
//	karger/      Karger and Karger–Stein, Stats, Witness
//	edgelist/    text edge-list reader/writer and file watcher
//	builder/     deterministic fixture topologies (path, grid, barbell…)
//	converters/  gonum/graph import/export
//	config/      viper configuration and zerolog logger
//	report/      TOML run reports
//	cmd/mincut/  cobra CLI: run, generate
//
// Weights are reported doubled: an undirected edge is stored as two
// directed edges, so a graph contracted to two super-vertices weighs twice
// the cut it represents.
//
//	    0───3───1        Karger–Stein on this triangle (weights 3, 1, 5)
//	     \     /         reports 8: the cut {0} | {1, 2} of weight 4.
//	     1\   /5
//	        2
//
//	go install github.com/katalvlaran/mincut/cmd/mincut@latest
package mincut
