// SPDX-License-Identifier: MIT

package contraction

import (
	"fmt"
	"strings"
)

// Graph is an immutable weighted multigraph on vertices 0..n-1.
type Graph struct {
	n      int
	weight int64
	nodes  []Node
}

// FromDirectedEdges builds a graph on n vertices.
//
// Steps:
//  1. Validate n ≥ 1 and every endpoint/weight, failing on the first bad edge
//     with an *EdgeError that wraps the sentinel.
//  2. Skip self-loops; sum parallel edges per (From, To), keeping neighbors in
//     first-insertion order.
//  3. Drop neighbors whose summed weight is zero and total each node.
//
// No partial graph is returned on error.
// Complexity: O(n + m) expected time, O(n + m) memory.
func FromDirectedEdges(n int, edges []DirectedEdge) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("FromDirectedEdges: n=%d: %w", n, ErrTooFewVertices)
	}

	lists := make([][]Edge, n)
	index := make([]map[int]int, n) // neighbor → position in lists[v]
	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, &EdgeError{Index: i, Edge: e, Err: ErrVertexOutOfRange}
		}
		if e.Weight < 0 {
			return nil, &EdgeError{Index: i, Edge: e, Err: ErrNegativeWeight}
		}
		if e.From == e.To {
			continue
		}
		if index[e.From] == nil {
			index[e.From] = make(map[int]int)
		}
		if at, ok := index[e.From][e.To]; ok {
			lists[e.From][at].Weight += e.Weight
			continue
		}
		index[e.From][e.To] = len(lists[e.From])
		lists[e.From] = append(lists[e.From], Edge{To: e.To, Weight: e.Weight})
	}

	nodes := make([]Node, n)
	for v := range nodes {
		nodes[v] = newNode(v, lists[v])
	}

	return newGraph(nodes), nil
}

// FromAdjacency builds a graph from literal adjacency lists: adj[v] holds the
// outgoing edges of v. It applies the same aggregation and validation as
// FromDirectedEdges.
func FromAdjacency(adj [][]Edge) (*Graph, error) {
	var edges []DirectedEdge
	for v, list := range adj {
		for _, e := range list {
			edges = append(edges, DirectedEdge{From: v, To: e.To, Weight: e.Weight})
		}
	}

	return FromDirectedEdges(len(adj), edges)
}

// newNode totals edges into a Node, dropping zero-weight entries in place.
func newNode(v int, edges []Edge) Node {
	kept := edges[:0]
	var w int64
	for _, e := range edges {
		if e.Weight == 0 {
			continue
		}
		kept = append(kept, e)
		w += e.Weight
	}
	if len(kept) == 0 {
		kept = nil
	}

	return Node{Vertex: v, Weight: w, Edges: kept}
}

func newGraph(nodes []Node) *Graph {
	var w int64
	for i := range nodes {
		w += nodes[i].Weight
	}

	return &Graph{n: len(nodes), weight: w, nodes: nodes}
}

// NumVertices returns the number of (super-)vertices.
func (g *Graph) NumVertices() int { return g.n }

// NumEdges returns the number of aggregated directed adjacency entries.
func (g *Graph) NumEdges() int {
	m := 0
	for i := range g.nodes {
		m += len(g.nodes[i].Edges)
	}

	return m
}

// Weight returns Σ Node.Weight. For a graph contracted to two vertices this
// is twice the weight of the represented cut.
func (g *Graph) Weight() int64 { return g.weight }

// Nodes returns the adjacency view indexed by vertex. The Edges slices are
// shared with the graph and must not be modified.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Node returns vertex v. It panics if v is outside [0, NumVertices()).
func (g *Graph) Node(v int) Node { return g.nodes[v] }

// DirectedEdges lists the aggregated edges, vertex by vertex in adjacency
// order. Feeding them back into FromDirectedEdges reproduces the graph.
func (g *Graph) DirectedEdges() []DirectedEdge {
	out := make([]DirectedEdge, 0, g.NumEdges())
	for _, node := range g.nodes {
		for _, e := range node.Edges {
			out = append(out, DirectedEdge{From: node.Vertex, To: e.To, Weight: e.Weight})
		}
	}

	return out
}

// String renders the graph compactly, e.g.
//
//	Graph{n=3 w=14 [0:4 (1:3 2:1)] [1:7 (0:2 2:5)] [2:3 (1:3)]}
func (g *Graph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Graph{n=%d w=%d", g.n, g.weight)
	for _, node := range g.nodes {
		fmt.Fprintf(&sb, " [%d:%d (", node.Vertex, node.Weight)
		for i, e := range node.Edges {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d:%d", e.To, e.Weight)
		}
		sb.WriteString(")]")
	}
	sb.WriteByte('}')

	return sb.String()
}
