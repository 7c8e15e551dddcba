// SPDX-License-Identifier: MIT
// Package: romandom/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1,n2) constructor.
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - Left partition takes ids base..base+n1-1, right partition the next n2.
//   - Emits every cross pair, i asc over the left side, inner j asc.
//
// Complexity: O(n1 + n2) vertices, O(n1·n2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/romandom/graph"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *graph.Graph, _ builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		left := appendVertices(g, n1)
		right := appendVertices(g, n2)

		var i, j int
		for i = 0; i < n1; i++ {
			for j = 0; j < n2; j++ {
				if err := g.AddEdge(left+i, right+j); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodCompleteBipartite, left+i, right+j, err)
				}
			}
		}

		return nil
	}
}
