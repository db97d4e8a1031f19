// Package core defines the simple undirected Graph used by the null-model
// samplers and the curvature pipeline.
//
// Vertices are the dense integer range 0..n-1, fixed at construction.
// Edges are unordered pairs: no self-loops, no parallel edges.
//
// This file declares Edge, Graph, the sentinel errors and the NewGraph
// constructor.
//
// Errors:
//
//	ErrVertexNotFound      - vertex index outside 0..n-1.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop requested.
//	ErrMultiEdgeNotAllowed - edge already present.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex outside 0..n-1.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an undirected connection between vertices U and V.
//
// The stored orientation is the one supplied to AddEdge; Key returns the
// orientation-free identity used for lookups and comparisons.
type Edge struct {
	// U is the first endpoint as supplied to AddEdge.
	U int

	// V is the second endpoint as supplied to AddEdge.
	V int
}

// Key returns the canonical form of e with U < V.
func (e Edge) Key() Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}

	return e
}

// Graph is a simple undirected graph over vertices 0..n-1.
//
// adj holds one neighbour set per vertex. edges is a dense slice of the
// current edge set so that a uniformly random edge is one index draw away;
// pos maps each canonical edge to its slot in edges.
// mu guards all three.
type Graph struct {
	mu sync.RWMutex

	adj   []map[int]struct{} // vertex → neighbour set
	edges []Edge             // live edges, insertion orientation
	pos   map[Edge]int       // canonical edge → index in edges
}

// NewGraph creates a graph with n isolated vertices 0..n-1.
// A non-positive n yields the empty graph.
// Complexity: O(n).
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{
		adj: make([]map[int]struct{}, n),
		pos: make(map[Edge]int),
	}
	for i := range g.adj {
		g.adj[i] = make(map[int]struct{})
	}

	return g
}
