// SPDX-License-Identifier: MIT

// Random streams for contraction trials.
//
// Every algorithm owns one *rand.Rand. Sequential trials draw from it
// directly; parallel IterateN gives each worker its own stream derived
// from it, so a fixed seed and worker count reproduce the same candidates.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; a worker only touches its own stream.
//   - Streams are derived on the calling goroutine before workers start.

package karger

import "math/rand"

// defaultRNGSeed stands in for seed 0 so default runs are reproducible.
const defaultRNGSeed int64 = 1

// rngFromSeed returns the algorithm's base stream.
// Policy: seed 0 ⇒ defaultRNGSeed; any other seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// mixSeed folds a worker slot into a parent seed with the SplitMix64
// finalizer (Vigna 2014). Neighbouring slots land far apart.
//
// Complexity: O(1).
func mixSeed(parent int64, slot uint64) int64 {
	x := uint64(parent) ^ (slot + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// workerStreams derives one stream per worker slot from base.
// It draws a single parent value from base per call, so two parallel
// IterateN runs on the same algorithm see different trials while a fresh
// algorithm with the same seed replays the first. A nil base uses
// defaultRNGSeed as the parent.
//
// Complexity: O(workers).
func workerStreams(base *rand.Rand, workers int) []*rand.Rand {
	parent := defaultRNGSeed
	if base != nil {
		parent = base.Int63()
	}

	streams := make([]*rand.Rand, workers)
	for w := range streams {
		streams[w] = rand.New(rand.NewSource(mixSeed(parent, uint64(w))))
	}

	return streams
}

// trialShare splits n trials over workers; the first n%workers slots run
// one extra trial.
func trialShare(n, workers, slot int) int {
	share := n / workers
	if slot < n%workers {
		share++
	}

	return share
}
