// SPDX-License-Identifier: MIT
// Package: romandom/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Edges i-(i+1) in ascending order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/romandom/graph"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *graph.Graph, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base := appendVertices(g, n)

		var i int
		for i = 0; i+1 < n; i++ {
			if err := g.AddEdge(base+i, base+i+1); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodPath, base+i, base+i+1, err)
			}
		}

		return nil
	}
}
