package karger_test

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/contraction"
	"github.com/katalvlaran/mincut/edgelist"
)

// triangle is 0-1 (3), 0-2 (1), 1-2 (5); its doubled min cut is 8.
func triangle(t testing.TB) *contraction.Graph {
	t.Helper()
	g, err := contraction.FromDirectedEdges(3, contraction.Undirected([]contraction.DirectedEdge{
		contraction.Weighted(0, 1, 3),
		contraction.Weighted(0, 2, 1),
		contraction.Weighted(1, 2, 5),
	}))
	require.NoError(t, err)

	return g
}

// fixture is one testdata pair: an edge list and its recorded doubled min cut.
type fixture struct {
	name string
	g    *contraction.Graph
	want int64
}

// loadFixtures reads every testdata/input_<name>.txt with its output_<name>.txt.
func loadFixtures(t testing.TB) []fixture {
	t.Helper()
	inputs, err := filepath.Glob(filepath.Join("testdata", "input_*.txt"))
	require.NoError(t, err)
	require.NotEmpty(t, inputs)

	out := make([]fixture, 0, len(inputs))
	for _, in := range inputs {
		name := strings.TrimSuffix(strings.TrimPrefix(filepath.Base(in), "input_"), ".txt")
		g, err := edgelist.LoadFile(in)
		require.NoError(t, err, in)

		raw, err := os.ReadFile(filepath.Join("testdata", "output_"+name+".txt"))
		require.NoError(t, err, name)
		want, err := strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64)
		require.NoError(t, err, name)

		out = append(out, fixture{name: name, g: g, want: want})
	}

	return out
}
