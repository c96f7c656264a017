// SPDX-License-Identifier: MIT

package contraction

// Symmetric checks the undirected-input convention: for every pair u≠v the
// total weight u→v equals the total weight v→u. It returns nil when the
// convention holds and an *AsymmetryError (matching ErrAsymmetric) naming the
// first offending pair, in adjacency order, otherwise.
//
// Asymmetric graphs are still valid inputs; their contracted weights are the
// sum of both endpoints' incident weight and may not equal twice an
// undirected cut capacity.
//
// Complexity: O(n + m) expected.
func (g *Graph) Symmetric() error {
	type pair struct{ u, v int }
	forward := make(map[pair]int64, g.NumEdges())
	for _, node := range g.nodes {
		for _, e := range node.Edges {
			forward[pair{node.Vertex, e.To}] = e.Weight
		}
	}

	var first *AsymmetryError
	bad := 0
	for _, node := range g.nodes {
		for _, e := range node.Edges {
			back := forward[pair{e.To, node.Vertex}]
			if back == e.Weight {
				continue
			}
			// Count each unordered pair once.
			if back != 0 && node.Vertex > e.To {
				continue
			}
			bad++
			if first == nil {
				first = &AsymmetryError{U: node.Vertex, V: e.To, Forward: e.Weight, Backward: back}
			}
		}
	}
	if first == nil {
		return nil
	}
	first.Inconsistent = bad

	return first
}
