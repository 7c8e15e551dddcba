package roman

import (
	"fmt"

	"github.com/katalvlaran/romandom/graph"
)

// DominanceCounts returns count[v] = [f(v) ≥ 1] + |{u ∈ N(v) : f(u) = 2}|.
// Complexity: O(n + m).
func DominanceCounts(g *graph.Graph, f Labeling) ([]int, error) {
	if err := validate(g, f); err != nil {
		return nil, err
	}
	count := make([]int, len(f))
	recount(g.Adjacency(), f, count)

	return count, nil
}

// Verify checks the domination condition of variant v for every label-0
// vertex and returns ErrInfeasible wrapped with the first offending vertex.
// Complexity: O(n + m).
func Verify(g *graph.Graph, f Labeling, v Variant) error {
	if err := validate(g, f); err != nil {
		return err
	}
	adj := g.Adjacency()

	var u, w, twos int
	for u = range f {
		if f[u] != Zero {
			continue
		}
		twos = 0
		for _, w = range adj[u] {
			if f[w] == Two {
				twos++
			}
		}
		if !v.accepts(twos) {
			return fmt.Errorf("vertex %d has %d label-2 neighbors (%s): %w", u, twos, v, ErrInfeasible)
		}
	}

	return nil
}

// Feasible reports whether Verify succeeds.
func Feasible(g *graph.Graph, f Labeling, v Variant) bool {
	return Verify(g, f, v) == nil
}

// validate enforces the entry preconditions shared by every exported operation.
func validate(g *graph.Graph, f Labeling) error {
	if g == nil {
		return ErrNilGraph
	}
	if len(f) != g.Order() {
		return fmt.Errorf("labeling has %d entries, graph has %d vertices: %w", len(f), g.Order(), ErrLengthMismatch)
	}
	for u, l := range f {
		if l > Two {
			return fmt.Errorf("vertex %d label %d: %w", u, l, ErrInvalidLabel)
		}
	}

	return nil
}

// recount rebuilds count from scratch for labeling f.
func recount(adj [][]int, f Labeling, count []int) {
	var u, w int
	for u = range count {
		count[u] = 0
	}
	for u = range f {
		if f[u] == Zero {
			continue
		}
		count[u]++
		if f[u] == Two {
			for _, w = range adj[u] {
				count[w]++
			}
		}
	}
}

// forceIsolated labels every degree-0 vertex 1.
func forceIsolated(adj [][]int, f Labeling) {
	var u int
	for u = range adj {
		if len(adj[u]) == 0 {
			f[u] = One
		}
	}
}

// hasProtectedZeroNeighbor reports whether some label-0 neighbor of u is
// already covered; labeling u with 2 would then double-cover it.
func hasProtectedZeroNeighbor(adj [][]int, f Labeling, count []int, u int) bool {
	for _, w := range adj[u] {
		if f[w] == Zero && count[w] >= 1 {
			return true
		}
	}

	return false
}

// placeDominator labels u with 2 and floods protection onto N(u).
func placeDominator(adj [][]int, f Labeling, count []int, u int) {
	f[u] = Two
	count[u]++
	for _, w := range adj[u] {
		count[w]++
	}
}
