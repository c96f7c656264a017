// SPDX-License-Identifier: MIT

package fenwick

// Tree is a Fenwick tree over n keys. tree[1..n] holds the partial sums of
// the 1-based implicit tree; tree[0] is unused.
type Tree struct {
	n    int
	top  int // highest power of two ≤ n, start of the binary descent
	tree []int64
}

// New returns a tree of n keys, all with zero weight.
// Complexity: O(n).
func New(n int) *Tree {
	if n < 0 {
		n = 0
	}

	return &Tree{n: n, top: highBit(n), tree: make([]int64, n+1)}
}

// From builds a tree whose key i starts with weights[i].
//
// Steps:
//  1. Copy weights[i-1] into tree[i].
//  2. Push each completed node into its parent i + lowbit(i) once.
//
// Complexity: O(n) time, O(n) memory. The input slice is not retained.
func From(weights []int64) *Tree {
	n := len(weights)
	t := &Tree{n: n, top: highBit(n), tree: make([]int64, n+1)}
	for i := 1; i <= n; i++ {
		t.tree[i] += weights[i-1]
		if j := i + (i & -i); j <= n {
			t.tree[j] += t.tree[i]
		}
	}

	return t
}

// Len reports the number of keys.
func (t *Tree) Len() int { return t.n }

// Query returns weights[0] + … + weights[i].
// Query(-1) is the empty prefix and returns 0.
// Complexity: O(log n).
func (t *Tree) Query(i int) int64 {
	if i < -1 || i >= t.n {
		panic("fenwick: index out of range")
	}
	var sum int64
	for id := i + 1; id > 0; id -= id & -id {
		sum += t.tree[id]
	}

	return sum
}

// Sum returns the total weight of all keys.
func (t *Tree) Sum() int64 {
	if t.n == 0 {
		return 0
	}

	return t.Query(t.n - 1)
}

// Update adds delta to weights[i], or subtracts it when subtract is true.
// Complexity: O(log n).
func (t *Tree) Update(i int, delta int64, subtract bool) {
	if i < 0 || i >= t.n {
		panic("fenwick: index out of range")
	}
	if subtract {
		delta = -delta
	}
	for id := i + 1; id <= t.n; id += id & -id {
		t.tree[id] += delta
	}
}

// LowerEntry returns the smallest key index whose cumulative sum Query(index)
// is ≥ r, together with Query(index-1), the weight accumulated strictly
// before that key.
//
// Edge cases:
//   - r ≤ weights[0] (including r ≤ 0) returns (0, 0).
//   - r > Sum() clamps to the last key and its preceding prefix.
//   - An empty tree returns (0, 0).
//
// Keys with zero weight are never returned for r in [1, Sum()], because a
// zero-weight key cannot be the first one to reach r.
//
// Complexity: O(log n). The descent walks powers of two from the top, taking a
// step whenever the covered block keeps the running sum below r.
func (t *Tree) LowerEntry(r int64) (int, int64) {
	if t.n == 0 {
		return 0, 0
	}

	pos, acc := 0, int64(0)
	for step := t.top; step > 0; step >>= 1 {
		next := pos + step
		if next <= t.n && acc+t.tree[next] < r {
			pos = next
			acc += t.tree[next]
		}
	}

	// pos now counts the keys whose prefix stays below r.
	if pos >= t.n {
		last := t.n - 1
		return last, t.Query(last - 1)
	}

	return pos, acc
}

func highBit(n int) int {
	b := 1
	for b<<1 <= n {
		b <<= 1
	}
	if n == 0 {
		return 0
	}

	return b
}
