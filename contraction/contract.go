// SPDX-License-Identifier: MIT

package contraction

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mincut/fenwick"
	"github.com/katalvlaran/mincut/unionfind"
)

// Source is the randomness a contraction consumes. *rand.Rand satisfies it;
// a Source is never shared between concurrent contractions.
type Source interface {
	Int63n(n int64) int64
}

// globalSource draws from the goroutine-safe math/rand top-level generator.
type globalSource struct{}

func (globalSource) Int63n(n int64) int64 { return rand.Int63n(n) }

// ContractFull contracts the graph to exactly two super-vertices. The weight
// of the result is the candidate cut value (twice the cut for symmetric input).
func (g *Graph) ContractFull(rng Source) (*Graph, error) {
	return g.Contract(2, rng)
}

// Contract merges randomly sampled edges until t super-vertices remain and
// returns them as a new graph labeled 0..t-1. The receiver is unchanged.
// A nil rng uses the shared math/rand generator.
//
// Errors: ErrInvalidTarget if t ∉ [1, NumVertices()].
func (g *Graph) Contract(t int, rng Source) (*Graph, error) {
	out, _, err := g.ContractLabeled(t, rng)

	return out, err
}

// ContractLabeled is Contract that also returns labels, where labels[v] is
// the super-vertex of the result that original vertex v was merged into.
// For t == 2 the labels describe the two sides of the sampled cut.
func (g *Graph) ContractLabeled(t int, rng Source) (*Graph, []int, error) {
	if t < 1 || t > g.n {
		return nil, nil, fmt.Errorf("Contract: t=%d not in [1, %d]: %w", t, g.n, ErrInvalidTarget)
	}
	if rng == nil {
		rng = globalSource{}
	}
	out, labels := g.contract(t, rng)

	return out, labels, nil
}

// contract is the unchecked contraction loop; 1 ≤ t ≤ n must hold.
func (g *Graph) contract(t int, rng Source) (*Graph, []int) {
	var (
		n       = g.n
		weight  = g.weight
		nodes   = make([]*Node, n) // nil marks a slot whose component was merged away
		scratch = unionfind.NewScratch(n)
		forest  = unionfind.New(n)
		perNode = make([]int64, n)
	)
	for v := range g.nodes {
		nodes[v] = &g.nodes[v]
		perNode[v] = g.nodes[v].Weight
	}
	mass := fenwick.From(perNode)

	for step := t; step < n; step++ {
		var v, w int
		if weight > 0 {
			v, w = pickRandomEdge(rng, weight, nodes, forest, mass)
		} else {
			// No edge mass left: the remaining components are disconnected,
			// any merge keeps the cut at zero.
			v, w = firstTwoLive(nodes)
		}
		n1, n2 := nodes[v], nodes[w]

		x := forest.Union(v, w)
		merged := mergeNodes(x, scratch, forest.Root, n1.Edges, n2.Edges)
		weight -= n1.Weight + n2.Weight - merged.Weight

		mass.Update(v, n1.Weight, true)
		mass.Update(w, n2.Weight, true)
		mass.Update(x, merged.Weight, false)

		nodes[v], nodes[w] = nil, nil
		nodes[x] = &merged
	}

	labels := forest.Condense(scratch)
	relabel := func(u int) int { return labels[u] }

	out := make([]Node, 0, t)
	for _, node := range nodes {
		if node == nil {
			continue
		}
		out = append(out, mergeNodes(labels[node.Vertex], scratch, relabel, node.Edges))
	}

	return &Graph{n: t, weight: weight, nodes: out}, labels
}

// pickRandomEdge samples one edge with probability proportional to its weight
// and returns its endpoints as live component roots v ≠ w.
//
// Steps:
//  1. r ∈ [1, weight].
//  2. mass.LowerEntry(r) → v and the mass rw preceding v; v is a live root
//     because merged-away slots carry zero mass.
//  3. Walk v's edges until rw reaches r.
//  4. Resolve the far endpoint through the forest.
func pickRandomEdge(rng Source, weight int64, nodes []*Node, forest *unionfind.Forest, mass *fenwick.Tree) (int, int) {
	r := rng.Int63n(weight) + 1
	v, rw := mass.LowerEntry(r)

	edges := nodes[v].Edges
	to := edges[len(edges)-1].To
	for _, e := range edges {
		rw += e.Weight
		if rw >= r {
			to = e.To
			break
		}
	}

	return v, forest.Root(to)
}

// firstTwoLive returns the two lowest live slots.
func firstTwoLive(nodes []*Node) (int, int) {
	v := -1
	for i, node := range nodes {
		if node == nil {
			continue
		}
		if v < 0 {
			v = i
			continue
		}
		return v, i
	}
	panic("contraction: fewer than two live components")
}

// mergeNodes builds the node for super-vertex x from the given edge lists.
// Every neighbor is mapped through mapTo; references to x itself are dropped
// and neighbors that coincide after mapping are summed. Neighbors keep the
// order of their first appearance.
//
// The scratch Proxy entries touched here are reset before returning.
// Complexity: O(Σ len(lists)) plus the cost of mapTo.
func mergeNodes(x int, s *unionfind.Scratch, mapTo func(int) int, lists ...[]Edge) Node {
	top := 0
	for _, edges := range lists {
		for _, e := range edges {
			root := mapTo(e.To)
			if root == x {
				continue
			}
			if s.Proxy[root] == 0 {
				s.Stack[top] = root
				top++
			}
			s.Proxy[root] += e.Weight
		}
	}

	node := Node{Vertex: x}
	if top > 0 {
		node.Edges = make([]Edge, top)
	}
	for i := 0; i < top; i++ {
		to := s.Stack[i]
		node.Edges[i] = Edge{To: to, Weight: s.Proxy[to]}
		node.Weight += s.Proxy[to]
		s.Proxy[to] = 0
	}

	return node
}
