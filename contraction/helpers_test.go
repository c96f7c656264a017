package contraction_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/contraction"
)

// triangle is the undirected triangle 0-1 (3), 0-2 (1), 1-2 (5).
// Cuts: {0}=4, {1}=8, {2}=6; reported weights are doubled.
func triangle(t testing.TB) *contraction.Graph {
	t.Helper()
	g, err := contraction.FromDirectedEdges(3, contraction.Undirected([]contraction.DirectedEdge{
		contraction.Weighted(0, 1, 3),
		contraction.Weighted(0, 2, 1),
		contraction.Weighted(1, 2, 5),
	}))
	require.NoError(t, err)

	return g
}

// randomGraph draws a symmetric graph on n vertices with edge probability p
// and weights in [1, maxW], threaded by a path so it stays connected.
func randomGraph(t testing.TB, rng *rand.Rand, n int, p float64, maxW int64) *contraction.Graph {
	t.Helper()
	var edges []contraction.DirectedEdge
	for v := 1; v < n; v++ {
		edges = append(edges, contraction.Weighted(v-1, v, rng.Int63n(maxW)+1))
	}
	for u := 0; u < n; u++ {
		for v := u + 2; v < n; v++ {
			if rng.Float64() < p {
				edges = append(edges, contraction.Weighted(u, v, rng.Int63n(maxW)+1))
			}
		}
	}
	g, err := contraction.FromDirectedEdges(n, contraction.Undirected(edges))
	require.NoError(t, err)

	return g
}

// bruteForceMinCut tries every two-way partition with vertex 0 on side 0 and
// returns the smallest crossing weight (doubled, like a contracted graph).
func bruteForceMinCut(g *contraction.Graph) int64 {
	n := g.NumVertices()
	best := int64(-1)
	labels := make([]int, n)
	for mask := 1; mask < 1<<(n-1); mask++ {
		for v := 1; v < n; v++ {
			labels[v] = (mask >> (v - 1)) & 1
		}
		if w := g.CrossingWeight(labels); best < 0 || w < best {
			best = w
		}
	}

	return best
}

// checkInvariants asserts the structural invariants every graph must hold.
func checkInvariants(t testing.TB, g *contraction.Graph) {
	t.Helper()
	var total int64
	for i, node := range g.Nodes() {
		require.Equal(t, i, node.Vertex)
		seen := make(map[int]bool, len(node.Edges))
		var w int64
		for _, e := range node.Edges {
			require.NotEqual(t, node.Vertex, e.To, "self-loop at %d", node.Vertex)
			require.False(t, seen[e.To], "duplicate neighbor %d at %d", e.To, node.Vertex)
			require.Positive(t, e.Weight)
			require.Less(t, e.To, g.NumVertices())
			seen[e.To] = true
			w += e.Weight
		}
		require.Equal(t, w, node.Weight)
		total += node.Weight
	}
	require.Equal(t, total, g.Weight())
}
