package graph

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrNegativeOrder indicates New was asked for a negative vertex count.
	ErrNegativeOrder = errors.New("graph: negative order")

	// ErrVertexNotFound indicates an operation addressed a vertex outside [0, n).
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrMalformedInput indicates a graph file that cannot be parsed or is inconsistent.
	ErrMalformedInput = errors.New("graph: malformed input")
)

// Graph is a simple undirected graph over the vertex ids 0..n-1.
//
// adj[v] holds the neighbors of v in ascending order. size counts each
// undirected edge once.
type Graph struct {
	adj  [][]int
	size int
}

// New creates a Graph with n isolated vertices.
// Complexity: O(n).
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeOrder
	}

	return &Graph{adj: make([][]int, n)}, nil
}
