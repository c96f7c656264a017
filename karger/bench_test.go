package karger_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/karger"
)

// benchFixture returns the largest recorded fixture.
func benchFixture(b *testing.B) fixture {
	b.Helper()
	var best fixture
	for _, f := range loadFixtures(b) {
		if best.g == nil || f.g.NumVertices() > best.g.NumVertices() {
			best = f
		}
	}

	return best
}

func BenchmarkKarger_Iterate(b *testing.B) {
	f := benchFixture(b)
	k, err := karger.NewKarger(f.g, karger.WithSeed(1))
	require.NoError(b, err)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = k.Iterate()
	}
}

func BenchmarkKargerStein_Iterate(b *testing.B) {
	f := benchFixture(b)
	ks, err := karger.NewKargerStein(f.g, 4, karger.WithSeed(1))
	require.NoError(b, err)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ks.Iterate()
	}
}

func BenchmarkKarger_IterateN_Workers4(b *testing.B) {
	f := benchFixture(b)
	k, err := karger.NewKarger(f.g, karger.WithSeed(1), karger.WithWorkers(4))
	require.NoError(b, err)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = k.IterateN(64, false)
	}
}
