// SPDX-License-Identifier: MIT
// Package: romandom/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi G(n, p).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Trial order: for each i asc, j > i asc. Fixed seed ⇒ identical graph.
//
// Complexity: O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/romandom/graph"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples each of the n(n-1)/2
// possible edges independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		base := appendVertices(g, n)

		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if p < probMax && (p == probMin || cfg.rng.Float64() >= p) {
					continue
				}
				if err := g.AddEdge(base+i, base+j); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodRandomSparse, base+i, base+j, err)
				}
			}
		}

		return nil
	}
}
