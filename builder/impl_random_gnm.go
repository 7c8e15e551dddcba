// SPDX-License-Identifier: MIT
// Package: romandom/builder
//
// impl_random_gnm.go - RandomGNM(n, m) and RandomDensity(n, d): uniform
// graphs with an exact edge count, the generator used for benchmark bases.
//
// Contract:
//   - n ≥ 1; 0 ≤ m ≤ n(n-1)/2 (else ErrTooManyEdges).
//   - RandomDensity: 0 ≤ d ≤ 1, m = ⌊d · n(n-1)/2⌋.
//   - cfg.rng must be non-nil when 0 < m < max.
//
// Sampling:
//   - Robert Floyd's algorithm draws m distinct pair indices from
//     [0, n(n-1)/2) with exactly m RNG calls; indices are decoded to pairs
//     and inserted in ascending index order.
//
// Complexity: O(m log m) time, O(m) space.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/romandom/graph"
)

const (
	methodRandomGNM     = "RandomGNM"
	methodRandomDensity = "RandomDensity"
)

// RandomGNM returns a Constructor that samples a graph uniformly among those
// with n vertices and exactly m edges.
func RandomGNM(n, m int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomGNM, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		total := n * (n - 1) / 2
		if m < 0 || m > total {
			return fmt.Errorf("%s: m=%d not in [0,%d]: %w", methodRandomGNM, m, total, ErrTooManyEdges)
		}
		if cfg.rng == nil && m > 0 && m < total {
			return fmt.Errorf("%s: rng is required: %w", methodRandomGNM, ErrNeedRandSource)
		}
		base := appendVertices(g, n)

		picked := make([]int, 0, m)
		if m == total {
			var k int
			for k = 0; k < total; k++ {
				picked = append(picked, k)
			}
		} else {
			seen := make(map[int]struct{}, m)

			var j, t int
			for j = total - m; j < total; j++ {
				t = cfg.rng.Intn(j + 1)
				if _, dup := seen[t]; dup {
					t = j
				}
				seen[t] = struct{}{}
				picked = append(picked, t)
			}
			sort.Ints(picked)
		}

		var u, v int
		for _, k := range picked {
			u, v = pairFromIndex(k, n)
			if err := g.AddEdge(base+u, base+v); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodRandomGNM, base+u, base+v, err)
			}
		}

		return nil
	}
}

// RandomDensity returns RandomGNM(n, ⌊d·n(n-1)/2⌋).
func RandomDensity(n int, d float64) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if d < probMin || d > probMax {
			return fmt.Errorf("%s: d=%.6f not in [%.1f,%.1f]: %w",
				methodRandomDensity, d, probMin, probMax, ErrInvalidProbability)
		}
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomDensity, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		m := int(d * float64(n*(n-1)/2))

		return RandomGNM(n, m)(g, cfg)
	}
}

// pairFromIndex maps k ∈ [0, n(n-1)/2) to the k-th pair (u, v), u < v, in
// row-major order over the strict upper triangle.
func pairFromIndex(k, n int) (int, int) {
	var u, row int
	row = n - 1
	for k >= row {
		k -= row
		u++
		row--
	}

	return u, u + 1 + k
}
