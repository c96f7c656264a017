// SPDX-License-Identifier: MIT

// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood.
//   • Cell (r,c) is vertex base + r*cols + c (row-major).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each cell emit Right then Bottom where the neighbor exists.
//
// Complexity: O(rows*cols) time, O(1) extra space.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that appends a rows×cols grid.
func Grid(rows, cols int) Constructor {
	return func(s *edgeSet, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		base := s.grow(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cell := base + r*cols + c
				if c+1 < cols {
					if err := s.link(methodGrid, cfg, cell, cell+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := s.link(methodGrid, cfg, cell, cell+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
