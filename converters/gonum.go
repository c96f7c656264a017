// SPDX-License-Identifier: MIT

package converters

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/mincut/contraction"
)

// maxExactWeight is the largest float64 that still converts to int64.
const maxExactWeight = float64(1 << 62)

// FromWeightedUndirected imports g. It returns the graph and ids, where
// ids[v] is the gonum id of vertex v.
//
// Steps:
//  1. Sort node ids ascending and index them densely.
//  2. For each unordered pair {u,v} with an edge, in (u,v) ascending order,
//     validate the weight and emit u→v and v→u.
//  3. Build with contraction.FromDirectedEdges.
//
// Complexity: O((V+E) log V).
func FromWeightedUndirected(g graph.WeightedUndirected) (*contraction.Graph, []int64, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	return importUndirected(g, func(uid, vid int64) (int64, error) {
		w, _ := g.Weight(uid, vid)
		return toWeight(w)
	})
}

// FromUndirected imports g with unit weights.
func FromUndirected(g graph.Undirected) (*contraction.Graph, []int64, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	return importUndirected(g, func(int64, int64) (int64, error) { return 1, nil })
}

func importUndirected(g graph.Graph, weight func(uid, vid int64) (int64, error)) (*contraction.Graph, []int64, error) {
	ids := sortedIDs(g.Nodes())
	dense := make(map[int64]int, len(ids))
	for v, id := range ids {
		dense[id] = v
	}

	var edges []contraction.DirectedEdge
	for u, uid := range ids {
		for _, vid := range sortedIDs(g.From(uid)) {
			v := dense[vid]
			if v <= u {
				continue
			}
			w, err := weight(uid, vid)
			if err != nil {
				return nil, nil, fmt.Errorf("edge %d-%d: %w", uid, vid, err)
			}
			edges = append(edges, contraction.Weighted(u, v, w), contraction.Weighted(v, u, w))
		}
	}

	out, err := contraction.FromDirectedEdges(len(ids), edges)
	if err != nil {
		return nil, nil, err
	}

	return out, ids, nil
}

func sortedIDs(it graph.Nodes) []int64 {
	ids := make([]int64, 0, max(0, it.Len()))
	for it.Next() {
		ids = append(ids, it.Node().ID())
	}
	slices.Sort(ids)

	return ids
}

func toWeight(w float64) (int64, error) {
	switch {
	case math.IsNaN(w) || math.IsInf(w, 0) || w != math.Trunc(w) || math.Abs(w) > maxExactWeight:
		return 0, fmt.Errorf("w=%g: %w", w, ErrNonIntegralWeight)
	case w < 0:
		return 0, fmt.Errorf("w=%g: %w", w, ErrNegativeWeight)
	}

	return int64(w), nil
}

// ToWeightedDirected exports g; vertex v becomes node id v. Absent edges
// weigh 0.
func ToWeightedDirected(g *contraction.Graph) *simple.WeightedDirectedGraph {
	out := simple.NewWeightedDirectedGraph(0, 0)
	for v := 0; v < g.NumVertices(); v++ {
		out.AddNode(simple.Node(v))
	}
	for _, e := range g.DirectedEdges() {
		out.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(e.From), T: simple.Node(e.To), W: float64(e.Weight)})
	}

	return out
}

// ToWeightedUndirected exports a symmetric g. Asymmetric graphs are rejected
// with the error of g.Symmetric (matching contraction.ErrAsymmetric).
func ToWeightedUndirected(g *contraction.Graph) (*simple.WeightedUndirectedGraph, error) {
	if err := g.Symmetric(); err != nil {
		return nil, fmt.Errorf("ToWeightedUndirected: %w", err)
	}

	out := simple.NewWeightedUndirectedGraph(0, 0)
	for v := 0; v < g.NumVertices(); v++ {
		out.AddNode(simple.Node(v))
	}
	for _, e := range g.DirectedEdges() {
		if e.From < e.To {
			out.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(e.From), T: simple.Node(e.To), W: float64(e.Weight)})
		}
	}

	return out, nil
}
