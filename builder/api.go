// SPDX-License-Identifier: MIT
// Package: romandom/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates an empty graph,
//     resolves cfg, runs cons in order.
//   - Every constructor APPENDS its own vertices (ids continue from the current
//     order), so composing constructors yields a disjoint union.
//   - Determinism: same options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors return sentinel errors; they never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/romandom/graph"
)

// Constructor appends a topology to g using the resolved builderConfig.
// Constructors MUST validate parameters before touching g.
type Constructor func(g *graph.Graph, cfg builderConfig) error

// BuildGraph creates a new empty graph, resolves the builder configuration
// from bopts, and applies all constructors in order. The first constructor
// error is wrapped with "BuildGraph: %w" and returned.
//
// Complexity: Σ cost of each constructor; wrapper overhead O(K).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	g, err := graph.New(0)
	if err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// appendVertices adds n fresh vertices and returns the id of the first one.
func appendVertices(g *graph.Graph, n int) int {
	base := g.Order()

	var i int
	for i = 0; i < n; i++ {
		g.AddVertex()
	}

	return base
}
