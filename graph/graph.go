package graph

import (
	"fmt"
	"sort"
)

// AddVertex appends a new isolated vertex and returns its id (the previous order).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() int {
	g.adj = append(g.adj, nil)

	return len(g.adj) - 1
}

// AddEdge inserts the undirected edge {u, v}.
//
// Behavior highlights:
//   - Self-loops (u == v) are ignored and return nil.
//   - Duplicate edges are ignored and return nil; Size is unchanged.
//   - Both neighbor lists stay sorted ascending.
//
// Errors:
//   - ErrVertexNotFound if u or v is outside [0, n).
//
// Complexity:
//   - Time O(deg u + deg v) for the sorted insertion, Space O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if err := g.check(u); err != nil {
		return err
	}
	if err := g.check(v); err != nil {
		return err
	}
	if u == v {
		return nil
	}

	var inserted bool
	g.adj[u], inserted = insertSorted(g.adj[u], v)
	if !inserted {
		return nil
	}
	g.adj[v], _ = insertSorted(g.adj[v], u)
	g.size++

	return nil
}

// HasEdge reports whether {u, v} is an edge.
// Complexity: O(log deg u).
func (g *Graph) HasEdge(u, v int) (bool, error) {
	if err := g.check(u); err != nil {
		return false, err
	}
	if err := g.check(v); err != nil {
		return false, err
	}
	nb := g.adj[u]
	i := sort.SearchInts(nb, v)

	return i < len(nb) && nb[i] == v, nil
}

// Neighbors returns a copy of v's neighbor ids in ascending order.
// Complexity: O(deg v).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if err := g.check(v); err != nil {
		return nil, err
	}
	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// Degree returns the number of neighbors of v.
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	if err := g.check(v); err != nil {
		return 0, err
	}

	return len(g.adj[v]), nil
}

// Order returns |V|.
func (g *Graph) Order() int { return len(g.adj) }

// Size returns |E|, counting each undirected edge once.
func (g *Graph) Size() int { return g.size }

// Density returns 2|E| / (|V|(|V|-1)), or 0 when |V| < 2.
func (g *Graph) Density() float64 {
	n := len(g.adj)
	if n < 2 {
		return 0
	}

	return 2 * float64(g.size) / (float64(n) * float64(n-1))
}

// Isolated returns the ascending ids of all degree-0 vertices.
// Complexity: O(n).
func (g *Graph) Isolated() []int {
	out := make([]int, 0)

	var v int
	for v = range g.adj {
		if len(g.adj[v]) == 0 {
			out = append(out, v)
		}
	}

	return out
}

// Adjacency exposes the live neighbor lists, indexed by vertex id.
//
// The returned slices are shared with the Graph and MUST NOT be mutated.
// This is the allocation-free access path used by hot loops (decoders,
// repair passes) that have already validated their inputs against Order().
//
// Complexity: O(1).
func (g *Graph) Adjacency() [][]int { return g.adj }

// check validates that v addresses an existing vertex.
func (g *Graph) check(v int) error {
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("vertex %d (order %d): %w", v, len(g.adj), ErrVertexNotFound)
	}

	return nil
}

// insertSorted inserts x into the ascending slice s unless already present.
func insertSorted(s []int, x int) ([]int, bool) {
	i := sort.SearchInts(s, x)
	if i < len(s) && s[i] == x {
		return s, false
	}
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = x

	return s, true
}
