// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that appends K_n (n ≥ 1), emitting pairs
// (i, j) with i < j in lexicographic order.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(s *edgeSet, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := s.grow(n)

		return completeBlock(methodComplete, s, cfg, base, n)
	}
}

// completeBlock links every pair inside [base, base+n).
func completeBlock(method string, s *edgeSet, cfg builderConfig, base, n int) error {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := s.link(method, cfg, base+i, base+j); err != nil {
				return err
			}
		}
	}

	return nil
}
