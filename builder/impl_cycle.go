// SPDX-License-Identifier: MIT

// impl_cycle.go: implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order i → (i+1)%n for i=0..n-1.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that appends the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(s *edgeSet, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := s.grow(n)
		for i := 0; i < n; i++ {
			if err := s.link(methodCycle, cfg, base+i, base+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
