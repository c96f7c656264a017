// SPDX-License-Identifier: MIT

package karger

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/mincut/contraction"
)

// DefaultThreshold is the base-case size used when callers have no better
// value.
const DefaultThreshold = 10

// KargerStein is the recursive contraction algorithm. Graphs with at most
// Threshold vertices are solved by amplified Karger.
type KargerStein struct {
	runner
	threshold int
}

var _ Algorithm = (*KargerStein)(nil)

// NewKargerStein returns Karger–Stein over g with the given base-case size.
//
// Errors: ErrNilGraph, ErrTooFewVertices, ErrInvalidThreshold, ErrInvalidWorkers.
func NewKargerStein(g *contraction.Graph, threshold int, opts ...Option) (*KargerStein, error) {
	if threshold < 2 {
		return nil, fmt.Errorf("threshold=%d: %w", threshold, ErrInvalidThreshold)
	}
	r, err := newRunner(g, opts)
	if err != nil {
		return nil, err
	}

	ks := &KargerStein{runner: r, threshold: threshold}
	ks.self = ks

	return ks, nil
}

// Threshold returns the base-case size.
func (ks *KargerStein) Threshold() int { return ks.threshold }

// SingleTrialFailProb returns 1 - 1/(2⌈log2 n⌉ + 1).
func (ks *KargerStein) SingleTrialFailProb() float64 {
	height := 2 * math.Ceil(math.Log2(float64(ks.g.NumVertices())))

	return 1 - 1/(height+1)
}

// Iterate runs one recursive trial and returns its candidate cut weight.
func (ks *KargerStein) Iterate() int64 {
	return ks.iterate(ks.cfg.rng)
}

func (ks *KargerStein) iterate(rng *rand.Rand) int64 {
	return ks.recurse(ks.g, rng)
}

// recurse is one Karger–Stein trial on g.
//
// Steps:
//  1. n ≤ threshold: run Karger with enough trials for success 1/ln n.
//  2. Otherwise t = max(2, ⌈n/√2⌉), capped at n-1 so each level shrinks.
//  3. Contract g to t twice independently, recurse on both, keep the min.
func (ks *KargerStein) recurse(g *contraction.Graph, rng *rand.Rand) int64 {
	n := g.NumVertices()
	if n <= ks.threshold {
		return ks.base(g, rng)
	}

	t := max(2, int(math.Ceil(float64(n)/math.Sqrt2)))
	if t >= n {
		t = n - 1
	}

	return min(ks.recurse(contractTo(g, t, rng), rng), ks.recurse(contractTo(g, t, rng), rng))
}

// base amplifies plain Karger to success probability 1/ln n. For n = 2 that
// target exceeds 1; a single contraction is exact there.
func (ks *KargerStein) base(g *contraction.Graph, rng *rand.Rand) int64 {
	k := newBaseKarger(g, rng, ks.cfg)
	target := 1 / math.Log(float64(g.NumVertices()))
	trials := 1
	if target < 1 {
		trials = max(1, k.MinNumTrials(target))
	}

	return k.sequential(trials, rng)
}

// ApproxExecute runs trials under an adaptive budget: it starts at ⌈ln n⌉ and
// every improvement found at trial i rebases it to i + ⌈ln n⌉.
func (ks *KargerStein) ApproxExecute(verbose bool) int64 {
	step := max(1, int(math.Ceil(math.Log(float64(ks.g.NumVertices())))))
	budget := step
	best := NoCut

	start := time.Now()
	for i := 0; i < budget; {
		i++
		if c := ks.iterate(ks.cfg.rng); c < best {
			best = c
			budget = i + step
			ks.improved(i, budget, c)
		}
	}
	if verbose {
		ks.report(budget, best, time.Since(start))
	}

	return best
}

func contractTo(g *contraction.Graph, t int, rng *rand.Rand) *contraction.Graph {
	out, err := g.Contract(t, rng)
	if err != nil {
		// recurse only asks for 2 ≤ t < n.
		panic(err)
	}

	return out
}
