// SPDX-License-Identifier: MIT

package unionfind

// Scratch holds the reusable merge buffers owned by one contraction run.
//
// Stack records the ids touched during one pass, Proxy accumulates a value per
// id (edge weight while merging adjacency, label+1 while condensing). A zero
// Proxy entry means "untouched"; every pass resets the entries it touched.
type Scratch struct {
	Stack []int
	Proxy []int64
}

// NewScratch allocates buffers for ids in [0, n).
func NewScratch(n int) *Scratch {
	return &Scratch{
		Stack: make([]int, n),
		Proxy: make([]int64, n),
	}
}

// Clean reports whether every Proxy entry is zero.
func (s *Scratch) Clean() bool {
	for _, v := range s.Proxy {
		if v != 0 {
			return false
		}
	}

	return true
}
