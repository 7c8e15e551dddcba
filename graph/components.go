package graph

import "sort"

// Components returns the connected components of g.
//
// Each component lists its vertex ids in ascending order, and components are
// ordered by their smallest id. Isolated vertices form singleton components.
// The traversal is a breadth-first search seeded at every unvisited vertex in
// id order.
//
// Complexity: O(n + m) time, O(n) extra space.
func (g *Graph) Components() [][]int {
	n := len(g.adj)
	visited := make([]bool, n)
	queue := make([]int, 0, n)
	out := make([][]int, 0)

	var (
		s, head, u, w int
		comp          []int
	)
	for s = 0; s < n; s++ {
		if visited[s] {
			continue
		}
		visited[s] = true
		queue = append(queue[:0], s)
		for head = 0; head < len(queue); head++ {
			u = queue[head]
			for _, w = range g.adj[u] {
				if !visited[w] {
					visited[w] = true
					queue = append(queue, w)
				}
			}
		}
		comp = make([]int, len(queue))
		copy(comp, queue)
		sort.Ints(comp)
		out = append(out, comp)
	}

	return out
}
