// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that appends a star: the block's first vertex is
// the center, joined to n-1 leaves (n ≥ 2).
func Star(n int) Constructor {
	return func(s *edgeSet, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		center := s.grow(n)
		for leaf := center + 1; leaf < center+n; leaf++ {
			if err := s.link(methodStar, cfg, center, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
