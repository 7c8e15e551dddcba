package roman

import "sort"

// OrderPolicy is the greedy random-key decoder. Vertices are visited by
// decreasing key (ties by ascending id):
//
//   - already labeled: skipped;
//   - covered once (label-0 with a valid protector): stays 0;
//   - covered twice or more: labeled 1;
//   - uncovered, no covered label-0 neighbor: labeled 2, neighbors covered;
//   - otherwise: labeled 1.
//
// Isolated vertices are labeled 1 before the visit.
type OrderPolicy struct {
	// LightProtection, when positive, labels an already covered vertex 1 with
	// this probability. The draw is a hash of the vertex and its visit rank, so
	// decoding stays pure and survives canonicalization. Feasibility is
	// unaffected; cost may change.
	LightProtection float64
}

// Name returns "order".
func (OrderPolicy) Name() string { return "order" }

// Assign runs the greedy visit.
func (p OrderPolicy) Assign(adj [][]int, keys []float64, v Variant, f Labeling, count []int) {
	forceIsolated(adj, f)
	recount(adj, f, count)

	for r, u := range keyOrder(keys) {
		if f[u] != Zero {
			continue
		}
		c := count[u]
		if c >= 1 && v.accepts(c) {
			if p.LightProtection > 0 && unitHash(u, r) < p.LightProtection {
				f[u] = One
				count[u]++
			}
			continue
		}
		if c == 0 && !hasProtectedZeroNeighbor(adj, f, count, u) {
			placeDominator(adj, f, count, u)
			continue
		}
		f[u] = One
		count[u]++
	}
}

// Canonicalize replaces keys by evenly spaced ranks that preserve the visit
// order: the r-th visited vertex gets (n-r-0.5)/n. Since Assign only depends on
// the order, the rank chromosome decodes to the same labeling.
func (OrderPolicy) Canonicalize(_ Labeling, keys []float64) []float64 {
	n := len(keys)
	out := make([]float64, n)
	for r, u := range keyOrder(keys) {
		out[u] = (float64(n-r) - 0.5) / float64(n)
	}

	return out
}

// keyOrder returns vertex ids sorted by decreasing key, ties by ascending id.
func keyOrder(keys []float64) []int {
	order := make([]int, len(keys))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return keys[order[a]] > keys[order[b]]
	})

	return order
}

// unitHash maps (u, rank) to [0,1) with a SplitMix64 finalizer.
func unitHash(u, rank int) float64 {
	x := uint64(rank)<<32 ^ uint64(u)*0x9e3779b97f4a7c15
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return float64(x>>11) / (1 << 53)
}
