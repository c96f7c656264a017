// SPDX-License-Identifier: MIT

// impl_wheel.go: Wheel(n) = C_{n-1} on the rim plus a hub.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • The hub is the block's first vertex; rim vertices follow in ring order.
//   • Emission order: rim edges first, then spokes.

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that appends the wheel graph W_n.
// Complexity: O(n) vertices + 2(n-1) edges.
func Wheel(n int) Constructor {
	return func(s *edgeSet, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		hub := s.grow(n)
		rim := n - 1
		for i := 0; i < rim; i++ {
			if err := s.link(methodWheel, cfg, hub+1+i, hub+1+(i+1)%rim); err != nil {
				return err
			}
		}
		for i := 0; i < rim; i++ {
			if err := s.link(methodWheel, cfg, hub, hub+1+i); err != nil {
				return err
			}
		}

		return nil
	}
}
