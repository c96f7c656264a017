// SPDX-License-Identifier: MIT

// impl_barbell.go: Barbell(k, bridge): two K_k joined by parallel bridges.
//
// Contract:
//   • k ≥ 2 (else ErrTooFewVertices); 1 ≤ bridge ≤ k (else ErrInvalidBridge).
//   • Left clique is [base, base+k), right clique is [base+k, base+2k).
//   • Bridge i joins base+i to base+k+i for i < bridge.
//
// With unit weights the minimum cut is min(bridge, k-1): either the bridges
// or the star around a clique vertex without a bridge.

package builder

import "fmt"

const (
	methodBarbell    = "Barbell"
	minBarbellClique = 2
)

// Barbell returns a Constructor that appends the barbell graph.
// Complexity: O(k²).
func Barbell(k, bridge int) Constructor {
	return func(s *edgeSet, cfg builderConfig) error {
		if k < minBarbellClique {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodBarbell, k, minBarbellClique, ErrTooFewVertices)
		}
		if bridge < 1 || bridge > k {
			return fmt.Errorf("%s: bridge=%d not in [1,%d]: %w", methodBarbell, bridge, k, ErrInvalidBridge)
		}
		base := s.grow(2 * k)
		if err := completeBlock(methodBarbell, s, cfg, base, k); err != nil {
			return err
		}
		if err := completeBlock(methodBarbell, s, cfg, base+k, k); err != nil {
			return err
		}
		for i := 0; i < bridge; i++ {
			if err := s.link(methodBarbell, cfg, base+i, base+k+i); err != nil {
				return err
			}
		}

		return nil
	}
}
