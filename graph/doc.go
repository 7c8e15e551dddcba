// Package graph provides the immutable-after-load undirected graph used by the
// Roman domination solvers.
//
// Vertices are the dense integer ids 0..n-1 and adjacency is stored as one sorted
// neighbor slice per vertex. There are no vertex objects, no edge objects and no
// locks: a Graph is built once (by New/AddEdge, Read, or the builder package) and
// then shared read-only by every decoder, repair pass and evolutionary run.
//
// Construction policy:
//
//	– AddEdge(u, v) is idempotent: self-loops and duplicate edges are silently ignored.
//	– Any id outside [0, n) yields ErrVertexNotFound.
//	– Neighbor lists stay sorted ascending, so every traversal is deterministic.
//
// Core Methods:
//
//	New(n int) (*Graph, error)          // O(n)
//	AddVertex() int                     // O(1) amortized
//	AddEdge(u, v int) error             // O(deg u + deg v)
//	HasEdge(u, v int) (bool, error)     // O(log deg u)
//	Neighbors(v int) ([]int, error)     // O(deg v), returns a copy
//	Degree(v int) (int, error)          // O(1)
//	Order() int / Size() int            // O(1)
//	Density() float64                   // O(1)
//	Isolated() []int                    // O(n)
//	Components() [][]int                // O(n+m)
//	Adjacency() [][]int                 // O(1), live read-only view
//
// Text format (Read/Write):
//
//	n m
//	u v      (m lines, 0-indexed endpoints)
//
// Errors:
//
//	ErrNegativeOrder   – New called with n < 0
//	ErrVertexNotFound  – vertex id outside [0, n)
//	ErrMalformedInput  – unreadable or inconsistent graph file
package graph
