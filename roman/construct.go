package roman

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/romandom/graph"
)

// Greedy builds a labeling by visiting vertices in decreasing degree order
// (ties by ascending id):
//
//   - isolated vertices get 1;
//   - an unprotected vertex whose neighbors are all unlabeled gets 2 and its
//     neighbors become protected 0s;
//   - any other unprotected vertex gets 1;
//   - protected vertices stay 0.
//
// The result is feasible for both variants. It is not reduced.
//
// Complexity: O(n log n + m).
func Greedy(g *graph.Graph) (Labeling, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	adj := g.Adjacency()
	n := len(adj)

	var (
		order     = make([]int, n)
		f         = make(Labeling, n)
		assigned  = make([]bool, n)
		protected = make([]bool, n)
		u, w      int
		free      bool
	)
	for u = range order {
		order[u] = u
	}
	sort.SliceStable(order, func(a, b int) bool {
		return len(adj[order[a]]) > len(adj[order[b]])
	})

	for _, u = range order {
		if assigned[u] {
			continue
		}
		assigned[u] = true
		if len(adj[u]) == 0 {
			f[u] = One
			continue
		}
		if protected[u] {
			continue
		}
		free = true
		for _, w = range adj[u] {
			if assigned[w] {
				free = false
				break
			}
		}
		if !free {
			f[u] = One
			continue
		}
		f[u] = Two
		for _, w = range adj[u] {
			assigned[w] = true
			protected[w] = true
		}
	}

	return f, nil
}

// Dominator returns the labeling with v labeled 2 (1 when v is isolated) and
// every other vertex 0. It is generally infeasible; callers pass it to Repair.
func Dominator(g *graph.Graph, v int) (Labeling, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	deg, err := g.Degree(v)
	if err != nil {
		return nil, fmt.Errorf("dominator: %w", err)
	}
	f := make(Labeling, g.Order())
	f[v] = Two
	if deg == 0 {
		f[v] = One
	}

	return f, nil
}
