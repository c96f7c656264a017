package karger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/builder"
	"github.com/katalvlaran/mincut/karger"
)

// Builder topologies too large for exhaustive search, checked against their
// analytic minimum cut (doubled).
func TestBuilderTopologies(t *testing.T) {
	cases := []struct {
		name string
		ctor builder.Constructor
		want int64
	}{
		{"Grid(5,5)", builder.Grid(5, 5), 4},
		{"Cycle(20)", builder.Cycle(20), 4},
		{"Complete(9)", builder.Complete(9), 16},
		{"Wheel(16)", builder.Wheel(16), 6},
		{"Barbell(7,2)", builder.Barbell(7, 2), 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)

			for _, algo := range []string{karger.NameKarger, karger.NameKargerStein} {
				best := karger.NoCut
				for seed := int64(1); seed <= 3; seed++ {
					a, err := karger.ByName(algo, g, karger.DefaultThreshold, karger.WithSeed(seed), karger.WithWorkers(2))
					require.NoError(t, err)
					got := a.Execute(false)
					assert.GreaterOrEqual(t, got, tc.want, algo)
					best = min(best, got)
				}
				assert.Equal(t, tc.want, best, algo)
			}
		})
	}
}
