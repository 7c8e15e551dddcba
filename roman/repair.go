package roman

import "github.com/katalvlaran/romandom/graph"

// Repair turns an arbitrary labeling into a feasible one for variant v and
// then applies ReduceWeight with the given sweep mode. The input is not
// modified.
//
// Steps:
//  1. Isolated vertices are labeled 1.
//  2. Dominance counts are recomputed.
//  3. Each label-0 vertex, in id order, is kept when its count satisfies v;
//     otherwise it becomes 2 (flooding its neighbors) when it is uncovered and
//     no label-0 neighbor is already covered, and 1 in every other case.
//  4. ReduceWeight.
//
// Complexity: O(n + m) plus the reduction sweeps.
func Repair(g *graph.Graph, f Labeling, v Variant, mode SweepMode) (Labeling, error) {
	if err := validate(g, f); err != nil {
		return nil, err
	}
	adj := g.Adjacency()
	out := f.Clone()
	count := make([]int, len(out))

	repairLabels(adj, out, count, v)
	reduce(adj, out, count, v, mode)

	return out, nil
}

// repairLabels performs steps 1-3 of Repair in place.
func repairLabels(adj [][]int, f Labeling, count []int, v Variant) {
	forceIsolated(adj, f)
	recount(adj, f, count)

	var u int
	for u = range f {
		if f[u] != Zero || v.accepts(count[u]) {
			continue
		}
		if count[u] == 0 && !hasProtectedZeroNeighbor(adj, f, count, u) {
			placeDominator(adj, f, count, u)
			continue
		}
		f[u] = One
		count[u]++
	}
}
