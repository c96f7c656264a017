// SPDX-License-Identifier: MIT

package karger

import (
	"fmt"

	"github.com/katalvlaran/mincut/contraction"
)

// Witness searches for a two-way labeling of g whose crossing weight equals
// cut, the value an algorithm reported. It runs up to trials labeled full
// contractions and returns the first match. ok is false when none matched;
// a reported cut is only an upper bound found by some trial, so a bounded
// search may miss it.
//
// Options are the same as for the algorithms; only the generator is used.
func Witness(g *contraction.Graph, cut int64, trials int, opts ...Option) (labels []int, ok bool, err error) {
	if g == nil {
		return nil, false, ErrNilGraph
	}
	if g.NumVertices() < 2 {
		return nil, false, fmt.Errorf("Witness: n=%d: %w", g.NumVertices(), ErrTooFewVertices)
	}

	rng := newConfig(opts...).rng
	for i := 0; i < trials; i++ {
		out, l, err := g.ContractLabeled(2, rng)
		if err != nil {
			return nil, false, err
		}
		if out.Weight() == cut {
			return l, true, nil
		}
	}

	return nil, false, nil
}
