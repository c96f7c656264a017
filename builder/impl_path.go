// SPDX-License-Identifier: MIT

// impl_path.go: Path(n): P_n over a fresh block, edges i–(i+1).

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that appends the simple path P_n (n ≥ 2).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(s *edgeSet, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base := s.grow(n)
		for i := 0; i+1 < n; i++ {
			if err := s.link(methodPath, cfg, base+i, base+i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
