package karger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNGFromSeed_ZeroIsDefault(t *testing.T) {
	a, b := rngFromSeed(0), rngFromSeed(defaultRNGSeed)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}

func TestMixSeed_Slots(t *testing.T) {
	seen := map[int64]bool{}
	for s := uint64(0); s < 64; s++ {
		v := mixSeed(42, s)
		assert.False(t, seen[v], "slot %d collides", s)
		seen[v] = true
	}
	assert.Equal(t, mixSeed(7, 3), mixSeed(7, 3))
	assert.NotEqual(t, mixSeed(7, 3), mixSeed(8, 3))
}

func TestWorkerStreams(t *testing.T) {
	base := rngFromSeed(5)
	first := workerStreams(base, 3)
	second := workerStreams(base, 3)
	assert.Len(t, first, 3)
	assert.NotEqual(t, first[0].Int63(), first[1].Int63(), "slots differ")
	assert.NotEqual(t, first[2].Int63(), second[2].Int63(), "each call draws from base")

	// Same seed replays the same streams.
	replay := workerStreams(rngFromSeed(5), 3)
	fresh := workerStreams(rngFromSeed(5), 3)
	for w := range replay {
		assert.Equal(t, replay[w].Int63(), fresh[w].Int63(), "slot %d", w)
	}

	// nil base falls back to the default seed.
	c, d := workerStreams(nil, 1), workerStreams(nil, 1)
	assert.Equal(t, c[0].Int63(), d[0].Int63())
}

func TestTrialShare(t *testing.T) {
	for _, tc := range []struct{ n, workers int }{{10, 3}, {7, 7}, {5, 2}, {100, 8}} {
		total := 0
		for w := 0; w < tc.workers; w++ {
			s := trialShare(tc.n, tc.workers, w)
			assert.GreaterOrEqual(t, s, tc.n/tc.workers)
			assert.LessOrEqual(t, s, tc.n/tc.workers+1)
			total += s
		}
		assert.Equal(t, tc.n, total, "n=%d workers=%d", tc.n, tc.workers)
	}
}
