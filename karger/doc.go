// SPDX-License-Identifier: MIT

// Package karger computes an approximate global minimum cut of a
// *contraction.Graph with Karger's contraction algorithm and its recursive
// Karger–Stein refinement.
//
// Both algorithms implement Algorithm. They differ in what one trial is and
// in how likely a single trial is to miss the minimum cut:
//
//   - Karger
//
//   - Trial:     contract the whole graph to two super-vertices.
//
//   - Miss:      ≤ 1 - 2/n².
//
//   - Cost:      O(m + n log n) per trial, O(n²) trials for constant confidence.
//
//   - Karger–Stein (threshold N ≥ 2)
//
//   - Trial:     contract to ⌈n/√2⌉ twice independently, recurse on both,
//     keep the smaller answer; graphs of ≤ N vertices run amplified
//     Karger (target success 1/ln n).
//
//   - Miss:      ≤ 1 - 1/(2⌈log2 n⌉ + 1).
//
//   - Cost:      O(n² log n) per trial.
//
// # Trial control
//
// The remaining entry points are shared:
//
//	SuccessLowerBound(k)        = 1 - SingleTrialFailProb()^k
//	MinNumTrials(p)             = smallest k with SuccessLowerBound(k) ≥ p
//	Execute(verbose)            runs MinNumTrials(1 - 1/n) trials
//	IterateN(k, verbose)        runs exactly k trials, returns the best
//	IterateSuccessLowerBound(p) runs MinNumTrials(p) trials
//	ApproxExecute(verbose)      adaptive budget, rebased on every improvement
//
// Every candidate is the weight of a real cut, so the best value can only be
// too high, never too low. Results use the contraction convention: for
// symmetric input the returned weight is twice the undirected cut weight.
//
// # Randomness and concurrency
//
// Each algorithm owns a seeded *rand.Rand (WithSeed / WithRand). The zero
// seed maps to a fixed default, so runs are reproducible. An Algorithm value
// is not safe for concurrent use. WithWorkers(k) lets IterateN fan its trials
// across k goroutines; every worker draws from its own stream derived from the
// algorithm's generator and the results are reduced with min.
//
// # Reporting
//
// With verbose=true an entry point reports a Stats value: to the WithOnStats
// hook when one is set, and always as an Info event on the WithLogger logger
// (zerolog.Nop by default).
//
// # Errors
//
//	ErrNilGraph           - graph is nil.
//	ErrTooFewVertices     - graph has fewer than 2 vertices.
//	ErrInvalidThreshold   - Karger–Stein threshold < 2.
//	ErrInvalidWorkers     - WithWorkers(k) with k < 1.
//	ErrUnknownAlgorithm   - ByName with an unsupported name.
package karger
