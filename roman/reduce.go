package roman

import "github.com/katalvlaran/romandom/graph"

// ReduceWeight applies the weight-reduction local search to a copy of f and
// returns it. The input must already be feasible for variant v; the result is
// feasible and never heavier.
//
// Rules, applied in vertex-id order:
//
//	D: a label-2 vertex that is no label-0 neighbor's sole protector becomes 1
//	   (neighbor counts are decremented).
//	Z: a label-1 vertex covered by itself and one label-2 neighbor becomes 0
//	   (Standard: by itself and at least one).
//
// A sweep is one full D pass followed by one full Z pass. SingleSweep stops
// there; FixedPoint repeats until a sweep makes no change.
//
// Complexity: O(n + m) per sweep.
func ReduceWeight(g *graph.Graph, f Labeling, v Variant, mode SweepMode) (Labeling, error) {
	if err := validate(g, f); err != nil {
		return nil, err
	}
	out := f.Clone()
	reduce(g.Adjacency(), out, make([]int, len(out)), v, mode)

	return out, nil
}

// reduce runs the D/Z sweeps in place. count is scratch space; it is rebuilt
// from f before the first sweep.
func reduce(adj [][]int, f Labeling, count []int, v Variant, mode SweepMode) {
	recount(adj, f, count)
	for {
		changed := sweep(adj, f, count, v)
		if mode != FixedPoint || !changed {
			return
		}
	}
}

// sweep performs one D pass and one Z pass and reports whether any label changed.
func sweep(adj [][]int, f Labeling, count []int, v Variant) bool {
	var (
		u, w    int
		sole    bool
		changed bool
	)

	for u = range f {
		if f[u] != Two {
			continue
		}
		sole = false
		for _, w = range adj[u] {
			if f[w] == Zero && count[w] == 1 {
				sole = true
				break
			}
		}
		if sole {
			continue
		}
		f[u] = One
		for _, w = range adj[u] {
			count[w]--
		}
		changed = true
	}

	for u = range f {
		if f[u] == One && v.dropsSelfProtector(count[u]) {
			f[u] = Zero
			count[u]--
			changed = true
		}
	}

	return changed
}
