// SPDX-License-Identifier: MIT
// Package: romandom/builder
//
// impl_complete.go - Complete(n) and Empty(n) constructors.
//
// Contract:
//   - Complete: n ≥ 1; emits every pair i<j in lexicographic order.
//   - Empty: n ≥ 0; appends n isolated vertices.

package builder

import (
	"fmt"

	"github.com/katalvlaran/romandom/graph"
)

const (
	methodComplete   = "Complete"
	methodEmpty      = "Empty"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n.
// Complexity: O(n²) edges.
func Complete(n int) Constructor {
	return func(g *graph.Graph, _ builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := appendVertices(g, n)

		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if err := g.AddEdge(base+i, base+j); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodComplete, base+i, base+j, err)
				}
			}
		}

		return nil
	}
}

// Empty returns a Constructor that appends n isolated vertices.
func Empty(n int) Constructor {
	return func(g *graph.Graph, _ builderConfig) error {
		if n < 0 {
			return fmt.Errorf("%s: n=%d < 0: %w", methodEmpty, n, ErrTooFewVertices)
		}
		appendVertices(g, n)

		return nil
	}
}
