// SPDX-License-Identifier: MIT

package contraction

// Partition splits a two-way labeling from ContractLabeled(2, …) into the
// vertices labeled 0 and the rest, both in ascending vertex order.
func Partition(labels []int) (side0, side1 []int) {
	for v, l := range labels {
		if l == 0 {
			side0 = append(side0, v)
		} else {
			side1 = append(side1, v)
		}
	}

	return side0, side1
}

// CrossingWeight sums the weight of g's directed edges whose endpoints carry
// different labels. For labels returned by ContractLabeled on g it equals the
// weight of the contracted graph.
func (g *Graph) CrossingWeight(labels []int) int64 {
	var w int64
	for _, node := range g.nodes {
		for _, e := range node.Edges {
			if labels[node.Vertex] != labels[e.To] {
				w += e.Weight
			}
		}
	}

	return w
}
