// SPDX-License-Identifier: MIT

// Package builder produces deterministic fixture topologies as symmetric
// directed edge lists ready for contraction.FromDirectedEdges.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildEdges: resolve options, run constructors, return (n, edges).
//     – BuildGraph: BuildEdges followed by contraction.FromDirectedEdges.
//   - Topology constructors (each appends a fresh block of vertices):
//     – Path, Cycle, Star, Wheel, Complete, Grid, Barbell, RandomSparse.
//   - Options (BuilderOption):
//     – WithSeed / WithRand:       RNG for RandomSparse and random weights.
//     – WithWeightFn:              per-edge weight generator.
//     – WithConstantWeight:        shorthand for a constant generator.
//   - Weight generators (WeightFn):
//     – DefaultWeightFn, ConstantWeightFn, UniformWeightFn.
//
// Guarantees:
//
//   - Every undirected edge is emitted in both directions with one weight,
//     so built graphs pass contraction.Graph.Symmetric.
//   - Same constructors, order, options and seed ⇒ identical edge lists.
//   - Constructors return sentinel errors (errors.Is); option constructors
//     panic on meaningless input.
//
// With unit weights the analytic minimum cuts are known, which makes these
// fixtures the reference inputs for the karger tests:
//
//	Path(n)        1
//	Cycle(n)       2
//	Star(n)        1
//	Wheel(n)       3
//	Complete(n)    n-1
//	Grid(r,c)      min(r,c,2) for r·c ≥ 2 (corner degree)
//	Barbell(k,b)   min(b, k-1)
//
// Contracted graphs report twice these values.
package builder
