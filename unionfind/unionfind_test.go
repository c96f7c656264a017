package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/unionfind"
)

func TestForest_Basics(t *testing.T) {
	f := unionfind.New(5)
	assert.Equal(t, 5, f.Len())
	assert.Equal(t, 5, f.Count())

	assert.Equal(t, 1, f.Union(1, 3))
	assert.Equal(t, 1, f.Union(3, 4))
	assert.Equal(t, 3, f.Count())
	assert.Equal(t, 1, f.Root(4))
	assert.True(t, f.Connected(1, 4))
	assert.False(t, f.Connected(0, 4))

	// Already connected: no-op, shared root returned.
	assert.Equal(t, 1, f.Union(3, 4))
	assert.Equal(t, 3, f.Count())
	assert.Equal(t, 1, f.Root(4))
}

func TestForest_LargerSetSurvives(t *testing.T) {
	f := unionfind.New(4)
	f.Union(0, 1)
	// {0,1} is larger than {2}; its root survives even as second argument.
	assert.Equal(t, 0, f.Union(2, 0))
	assert.Equal(t, 0, f.Root(2))
}

func TestCondense_Table(t *testing.T) {
	cases := []struct {
		name   string
		n      int
		unions [][2]int
		want   []int
	}{
		{"no unions", 4, nil, []int{0, 1, 2, 3}},
		{"six", 6, [][2]int{{3, 4}, {0, 3}, {1, 2}}, []int{1, 0, 0, 1, 1, 2}},
		{"eight", 8, [][2]int{{3, 0}, {4, 7}, {1, 2}, {0, 4}}, []int{1, 0, 0, 1, 1, 2, 3, 1}},
		{"all", 5, [][2]int{{0, 1}, {2, 3}, {4, 0}, {3, 1}}, []int{0, 0, 0, 0, 0}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := unionfind.New(c.n)
			for _, u := range c.unions {
				f.Union(u[0], u[1])
			}
			s := unionfind.NewScratch(c.n)
			assert.Equal(t, c.want, f.Condense(s))
			assert.True(t, s.Clean(), "proxy must be zeroed after condense")
		})
	}
}

// TestForest_RandomizedAgainstLabels checks Connected and Condense against a
// naive relabel-on-merge partition.
func TestForest_RandomizedAgainstLabels(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n = 60

	f := unionfind.New(n)
	naive := make([]int, n)
	for i := range naive {
		naive[i] = i
	}
	sets := n

	for step := 0; step < 45; step++ {
		p, q := rng.Intn(n), rng.Intn(n)
		f.Union(p, q)
		if a, b := naive[p], naive[q]; a != b {
			sets--
			for i := range naive {
				if naive[i] == b {
					naive[i] = a
				}
			}
		}
		require.Equal(t, sets, f.Count())
	}

	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			require.Equal(t, naive[p] == naive[q], f.Connected(p, q), "p=%d q=%d", p, q)
		}
	}

	ids := f.Condense(unionfind.NewScratch(n))
	labels := make(map[int]bool)
	for i := 0; i < n; i++ {
		require.GreaterOrEqual(t, ids[i], 0)
		require.Less(t, ids[i], sets)
		labels[ids[i]] = true
		for j := 0; j < n; j++ {
			require.Equal(t, naive[i] == naive[j], ids[i] == ids[j])
		}
	}
	assert.Len(t, labels, sets, "labels must be compact")
}
