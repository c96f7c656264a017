// SPDX-License-Identifier: MIT

package contraction

// Edge is one aggregated adjacency entry of a Node.
type Edge struct {
	To     int
	Weight int64
}

// Node is a (super-)vertex with its aggregated adjacency.
// Invariants: Weight == Σ Edges[i].Weight, no Edges[i].To == Vertex, and at
// most one entry per neighbor.
type Node struct {
	Vertex int
	Weight int64
	Edges  []Edge
}

// DirectedEdge is one input edge From→To.
type DirectedEdge struct {
	From, To int
	Weight   int64
}

// Unweighted returns the directed edge v→w with unit weight.
func Unweighted(v, w int) DirectedEdge {
	return DirectedEdge{From: v, To: w, Weight: 1}
}

// Weighted returns the directed edge v→w with the given weight.
func Weighted(v, w int, weight int64) DirectedEdge {
	return DirectedEdge{From: v, To: w, Weight: weight}
}

// Undirected expands each edge into both directions with equal weight.
// Self-loops are kept once; the graph drops them anyway.
func Undirected(edges []DirectedEdge) []DirectedEdge {
	out := make([]DirectedEdge, 0, 2*len(edges))
	for _, e := range edges {
		out = append(out, e)
		if e.From != e.To {
			out = append(out, DirectedEdge{From: e.To, To: e.From, Weight: e.Weight})
		}
	}

	return out
}
