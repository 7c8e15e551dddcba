// SPDX-License-Identifier: MIT
// Package: romandom/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The hub is the first appended vertex; leaves follow in ascending order.
//   - Spokes are emitted hub → leaf[i] for i = 1..n-1.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/romandom/graph"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with n vertices:
// one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *graph.Graph, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := appendVertices(g, n)

		var i int
		for i = 1; i < n; i++ {
			if err := g.AddEdge(hub, hub+i); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodStar, hub, hub+i, err)
			}
		}

		return nil
	}
}
