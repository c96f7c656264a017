// SPDX-License-Identifier: MIT

// api.go: public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildEdges(bopts, cons...). Resolves cfg, runs cons in order.
//   - Each constructor appends its own block of vertices; blocks are disjoint.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical lists.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mincut/contraction"
)

// Constructor appends one topology to the edge set using the resolved
// builderConfig. Constructors MUST validate parameters before touching the
// set and return sentinel errors (no panics).
type Constructor func(s *edgeSet, cfg builderConfig) error

// BuildEdges resolves bopts and applies all constructors in order. It returns
// the vertex count and the symmetric directed edge list. Constructor errors
// are wrapped with "BuildEdges: %w".
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func BuildEdges(bopts []BuilderOption, cons ...Constructor) (int, []contraction.DirectedEdge, error) {
	cfg := newBuilderConfig(bopts...)
	s := &edgeSet{}
	for i, fn := range cons {
		if fn == nil {
			return 0, nil, fmt.Errorf("BuildEdges: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return 0, nil, fmt.Errorf("BuildEdges: %w", err)
		}
	}

	return s.n, s.edges, nil
}

// BuildGraph is BuildEdges followed by contraction.FromDirectedEdges.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*contraction.Graph, error) {
	n, edges, err := BuildEdges(bopts, cons...)
	if err != nil {
		return nil, err
	}
	g, err := contraction.FromDirectedEdges(n, edges)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// edgeSet accumulates vertices and symmetric edges across constructors.
type edgeSet struct {
	n     int
	edges []contraction.DirectedEdge
}

// grow reserves k fresh vertices and returns the first index.
func (s *edgeSet) grow(k int) int {
	base := s.n
	s.n += k

	return base
}

// link emits u→v and v→u with one weight drawn from cfg.
func (s *edgeSet) link(method string, cfg builderConfig, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	if w < 0 {
		return fmt.Errorf("%s: edge %d-%d weight %d: %w", method, u, v, w, ErrNegativeWeight)
	}
	s.edges = append(s.edges,
		contraction.Weighted(u, v, w),
		contraction.Weighted(v, u, w))

	return nil
}
