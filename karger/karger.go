// SPDX-License-Identifier: MIT

package karger

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/mincut/contraction"
)

// Karger repeats full contractions to two super-vertices.
type Karger struct {
	runner
}

var _ Algorithm = (*Karger)(nil)

// NewKarger returns Karger's algorithm over g.
//
// Errors: ErrNilGraph, ErrTooFewVertices, ErrInvalidWorkers.
func NewKarger(g *contraction.Graph, opts ...Option) (*Karger, error) {
	r, err := newRunner(g, opts)
	if err != nil {
		return nil, err
	}

	k := &Karger{runner: r}
	k.self = k

	return k, nil
}

// newBaseKarger builds the sequential Karger used as the Karger–Stein base
// case; it shares the caller's generator and logger.
func newBaseKarger(g *contraction.Graph, rng *rand.Rand, cfg config) *Karger {
	k := &Karger{runner: runner{g: g, cfg: config{rng: rng, workers: 1, logger: cfg.logger}}}
	k.self = k

	return k
}

// SingleTrialFailProb returns 1 - 2/n², the chance that a fixed minimum cut
// does not survive one full contraction.
func (k *Karger) SingleTrialFailProb() float64 {
	n := float64(k.g.NumVertices())

	return 1 - 2/(n*n)
}

// Iterate runs one full contraction and returns the candidate cut weight.
func (k *Karger) Iterate() int64 {
	return k.iterate(k.cfg.rng)
}

func (k *Karger) iterate(rng *rand.Rand) int64 {
	out, err := k.g.ContractFull(rng)
	if err != nil {
		// n ≥ 2 is checked at construction, so 2 is always a valid target.
		panic(err)
	}

	return out.Weight()
}

// ApproxExecute runs trials under an adaptive budget: it starts at n² and
// every improvement found at trial i rebases it to 2i + n.
func (k *Karger) ApproxExecute(verbose bool) int64 {
	step := k.g.NumVertices()
	budget := step * step
	best := NoCut

	start := time.Now()
	for i := 0; i < budget; {
		i++
		if c := k.iterate(k.cfg.rng); c < best {
			best = c
			budget = 2*i + step
			k.improved(i, budget, c)
		}
	}
	if verbose {
		k.report(budget, best, time.Since(start))
	}

	return best
}
