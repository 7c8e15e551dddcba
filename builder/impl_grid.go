// SPDX-License-Identifier: MIT
// Package: romandom/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Model:
//   - 2D orthogonal grid with 4-neighborhood.
//   - Cell (r,c) gets id base + r*cols + c (row-major).
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - For each cell, emits Right then Bottom where they exist.
//
// Complexity: O(rows·cols) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/romandom/graph"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *graph.Graph, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		base := appendVertices(g, rows*cols)
		cell := func(r, c int) int { return base + r*cols + c }

		var r, c int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				u := cell(r, c)
				if c+1 < cols {
					if err := g.AddEdge(u, cell(r, c+1)); err != nil {
						return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodGrid, u, cell(r, c+1), err)
					}
				}
				if r+1 < rows {
					if err := g.AddEdge(u, cell(r+1, c)); err != nil {
						return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodGrid, u, cell(r+1, c), err)
					}
				}
			}
		}

		return nil
	}
}
