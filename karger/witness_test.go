package karger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/contraction"
	"github.com/katalvlaran/mincut/karger"
)

func TestWitness(t *testing.T) {
	g := triangle(t)

	labels, ok, err := karger.Witness(g, 8, 200, karger.WithSeed(3))
	require.NoError(t, err)
	require.True(t, ok)
	side0, side1 := contraction.Partition(labels)
	// The only cut of weight 4 isolates vertex 0.
	if len(side0) == 1 {
		assert.Equal(t, []int{0}, side0)
		assert.Equal(t, []int{1, 2}, side1)
	} else {
		assert.Equal(t, []int{0}, side1)
		assert.Equal(t, []int{1, 2}, side0)
	}
	assert.Equal(t, int64(8), g.CrossingWeight(labels))

	// No cut weighs 2.
	_, ok, err = karger.Witness(g, 2, 50)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = karger.Witness(nil, 8, 1)
	assert.ErrorIs(t, err, karger.ErrNilGraph)
	single, err := contraction.FromDirectedEdges(1, nil)
	require.NoError(t, err)
	_, _, err = karger.Witness(single, 0, 1)
	assert.ErrorIs(t, err, karger.ErrTooFewVertices)
}
