// SPDX-License-Identifier: MIT

package karger

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/katalvlaran/mincut/contraction"
)

// NoCut is returned when zero trials ran.
const NoCut int64 = math.MaxInt64

// maxProb caps requested probabilities: certainty needs infinitely many trials.
const maxProb = 1 - 1e-12

// Algorithm is the trial-control contract shared by Karger and KargerStein.
type Algorithm interface {
	// Graph returns the source graph.
	Graph() *contraction.Graph
	// SingleTrialFailProb bounds the probability that one Iterate misses
	// the minimum cut.
	SingleTrialFailProb() float64
	// Iterate runs one trial and returns its candidate cut weight.
	Iterate() int64
	// ApproxExecute runs trials under an adaptive budget.
	ApproxExecute(verbose bool) int64

	SuccessLowerBound(trials int) float64
	MinNumTrials(prob float64) int
	Execute(verbose bool) int64
	IterateN(n int, verbose bool) int64
	IterateSuccessLowerBound(prob float64, verbose bool) int64
}

// Names accepted by ByName.
const (
	NameKarger      = "karger"
	NameKargerStein = "karger-stein"
)

// ByName constructs the algorithm called name. threshold is only used by
// Karger–Stein.
func ByName(name string, g *contraction.Graph, threshold int, opts ...Option) (Algorithm, error) {
	var (
		a   Algorithm
		err error
	)
	switch strings.ToLower(name) {
	case NameKarger:
		a, err = NewKarger(g, opts...)
	case NameKargerStein, "kargerstein", "ks":
		a, err = NewKargerStein(g, threshold, opts...)
	default:
		return nil, fmt.Errorf("ByName(%q): %w", name, ErrUnknownAlgorithm)
	}
	if err != nil {
		// Keep a nil interface rather than a typed nil pointer.
		return nil, err
	}

	return a, nil
}

// trialer is the algorithm-specific half of a runner.
type trialer interface {
	SingleTrialFailProb() float64
	iterate(rng *rand.Rand) int64
}

// runner carries the shared trial-control logic. Karger and KargerStein embed
// it and point self back at themselves.
type runner struct {
	g    *contraction.Graph
	self trialer
	cfg  config
}

func newRunner(g *contraction.Graph, opts []Option) (runner, error) {
	if g == nil {
		return runner{}, ErrNilGraph
	}
	if g.NumVertices() < 2 {
		return runner{}, fmt.Errorf("n=%d: %w", g.NumVertices(), ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	if cfg.workers < 1 {
		return runner{}, fmt.Errorf("workers=%d: %w", cfg.workers, ErrInvalidWorkers)
	}

	return runner{g: g, cfg: cfg}, nil
}

// Graph returns the source graph.
func (r *runner) Graph() *contraction.Graph { return r.g }

// SuccessLowerBound returns 1 - f^trials for f = SingleTrialFailProb().
func (r *runner) SuccessLowerBound(trials int) float64 {
	return 1 - math.Pow(r.self.SingleTrialFailProb(), float64(trials))
}

// MinNumTrials returns the smallest trial count whose SuccessLowerBound
// reaches prob. prob ≤ 0 needs no trial; prob is capped just below 1.
//
// The closed form ⌈log2(1-p) / log2(f)⌉ is corrected by a step in either
// direction to absorb floating-point rounding.
func (r *runner) MinNumTrials(prob float64) int {
	if prob <= 0 || math.IsNaN(prob) {
		return 0
	}
	if prob > maxProb {
		prob = maxProb
	}
	f := r.self.SingleTrialFailProb()
	if f <= 0 {
		return 1
	}
	if f >= 1 {
		return math.MaxInt
	}

	k := int(math.Ceil(math.Log2(1-prob) / math.Log2(f)))
	for k > 0 && r.SuccessLowerBound(k-1) >= prob {
		k--
	}
	for r.SuccessLowerBound(k) < prob {
		k++
	}

	return k
}

// Execute runs enough trials to succeed with probability ≥ 1 - 1/n.
func (r *runner) Execute(verbose bool) int64 {
	return r.IterateSuccessLowerBound(1-1/float64(r.g.NumVertices()), verbose)
}

// IterateSuccessLowerBound runs MinNumTrials(prob) trials.
func (r *runner) IterateSuccessLowerBound(prob float64, verbose bool) int64 {
	return r.IterateN(r.MinNumTrials(prob), verbose)
}

// IterateN runs exactly n trials and returns the smallest candidate, or NoCut
// when n ≤ 0.
func (r *runner) IterateN(n int, verbose bool) int64 {
	start := time.Now()
	best := r.iterateN(n)
	if verbose {
		r.report(n, best, time.Since(start))
	}

	return best
}

// iterateN spreads n trials over the configured workers.
func (r *runner) iterateN(n int) int64 {
	workers := r.cfg.workers
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		return r.sequential(n, r.cfg.rng)
	}

	var (
		wg      sync.WaitGroup
		results = make([]int64, workers)
	)
	for w, rng := range workerStreams(r.cfg.rng, workers) {
		wg.Add(1)
		go func(slot, share int, rng *rand.Rand) {
			defer wg.Done()
			results[slot] = r.sequential(share, rng)
		}(w, trialShare(n, workers, w), rng)
	}
	wg.Wait()

	best := NoCut
	for _, c := range results {
		best = min(best, c)
	}

	return best
}

func (r *runner) sequential(n int, rng *rand.Rand) int64 {
	best := NoCut
	for i := 0; i < n; i++ {
		best = min(best, r.self.iterate(rng))
	}

	return best
}

// report publishes the Stats of a verbose run.
func (r *runner) report(trials int, minCut int64, elapsed time.Duration) {
	s := Stats{
		MinCut:      minCut,
		Vertices:    r.g.NumVertices(),
		Edges:       r.g.NumEdges(),
		Trials:      trials,
		SuccessProb: r.SuccessLowerBound(trials),
		Elapsed:     elapsed,
	}
	if r.cfg.onStats != nil {
		r.cfg.onStats(s)
	}
	r.cfg.logger.Info().
		Int64("min_cut", s.MinCut).
		Int("vertices", s.Vertices).
		Int("edges", s.Edges).
		Int("trials", s.Trials).
		Float64("success_prob", s.SuccessProb).
		Dur("elapsed", s.Elapsed).
		Msg("min cut trials finished")
}

// improved logs a new best candidate found by an adaptive run.
func (r *runner) improved(trial, budget int, cut int64) {
	r.cfg.logger.Debug().
		Int("trial", trial).
		Int("budget", budget).
		Int64("cut", cut).
		Msg("new minimum")
}
