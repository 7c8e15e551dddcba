// SPDX-License-Identifier: MIT
// Package: romandom/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Canonical definition:
//   - Wₙ = Cₙ₋₁ + hub; the rim takes ids base..base+n-2, the hub base+n-1.
//   - n ≥ 4 (the rim must be a valid cycle).
//
// Complexity: O(n) vertices and edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/romandom/graph"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // rim C_{n-1} needs n-1 ≥ 3
)

// Wheel returns a Constructor that builds a wheel Wₙ = Cₙ₋₁ + hub.
func Wheel(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		base := g.Order()
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		hub := appendVertices(g, 1)

		// Spokes in increasing rim order.
		var i int
		for i = 0; i < n-1; i++ {
			if err := g.AddEdge(hub, base+i); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodWheel, hub, base+i, err)
			}
		}

		return nil
	}
}
