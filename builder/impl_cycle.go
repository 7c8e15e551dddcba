// SPDX-License-Identifier: MIT
// Package: romandom/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Edges i-(i+1 mod n) in ascending i.

package builder

import (
	"fmt"

	"github.com/katalvlaran/romandom/graph"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *graph.Graph, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := appendVertices(g, n)

		var i int
		for i = 0; i < n; i++ {
			if err := g.AddEdge(base+i, base+(i+1)%n); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodCycle, base+i, base+(i+1)%n, err)
			}
		}

		return nil
	}
}
