// SPDX-License-Identifier: MIT

package unionfind

// Forest is a disjoint-set forest with union by size.
type Forest struct {
	parent []int
	size   []int
	count  int // live sets
}

// New returns n singleton sets {0}, {1}, …, {n-1}.
func New(n int) *Forest {
	f := &Forest{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range f.parent {
		f.parent[i] = i
		f.size[i] = 1
	}

	return f
}

// Len reports the number of elements.
func (f *Forest) Len() int { return len(f.parent) }

// Count reports the number of live sets.
func (f *Forest) Count() int { return f.count }

// Root returns the representative of p's set, halving the path on the way up.
// Complexity: O(log n) worst case, near O(1) amortized.
func (f *Forest) Root(p int) int {
	for f.parent[p] != p {
		f.parent[p] = f.parent[f.parent[p]]
		p = f.parent[p]
	}

	return p
}

// Union merges the sets of p and q and returns the surviving root. The root
// of the larger set survives; on a tie the root of p survives. When p and q
// are already connected Union returns their shared root and changes nothing.
func (f *Forest) Union(p, q int) int {
	i, j := f.Root(p), f.Root(q)
	if i == j {
		return i
	}
	if f.size[i] < f.size[j] {
		i, j = j, i
	}
	f.parent[j] = i
	f.size[i] += f.size[j]
	f.count--

	return i
}

// Connected reports whether p and q belong to the same set.
func (f *Forest) Connected(p, q int) bool {
	return f.Root(p) == f.Root(q)
}

// Condense returns ids where ids[i] is the dense label of i's set. Roots are
// labeled 0..Count()-1 in ascending index order, so the output is stable for a
// given sequence of unions.
//
// Steps:
//  1. Walk indices ascending; each root gets Proxy[root] = label+1 and is
//     pushed on the scratch stack.
//  2. Flatten every parent entry to its root, then overwrite it with the
//     root's label. The forest storage becomes the result, which is why the
//     forest is consumed.
//  3. Zero the Proxy entries recorded on the stack.
//
// The scratch must be sized to at least Len() with all Proxy entries zero.
// After Condense the forest must not be used.
// Complexity: O(n) time, no allocation.
func (f *Forest) Condense(s *Scratch) []int {
	top := 0
	for id := range f.parent {
		if f.Root(id) == id {
			s.Stack[top] = id
			top++
			s.Proxy[id] = int64(top)
		}
	}

	for i := range f.parent {
		f.parent[i] = f.Root(i)
	}
	ids := f.parent
	for i, root := range ids {
		ids[i] = int(s.Proxy[root] - 1)
	}
	for i := 0; i < top; i++ {
		s.Proxy[s.Stack[i]] = 0
	}

	f.parent, f.size, f.count = nil, nil, 0

	return ids
}
