// Package core: Graph method implementations.
//
// Edge operations are O(1) expected: adjacency is a set per vertex and the
// dense edge slice uses swap-remove, with pos tracking slots.
// All exported methods take mu; unexported helpers assume it is held.

package core

import (
	"fmt"
	"sort"
)

// Order returns the number of vertices.
// Complexity: O(1).
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// Size returns the number of edges.
// Complexity: O(1).
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// HasVertex reports whether v is in 0..n-1.
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.inRange(v)
}

// AddEdge inserts the undirected edge u—v.
// Returns ErrVertexNotFound, ErrLoopNotAllowed or ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) Both endpoints must exist.
	if !g.inRange(u) || !g.inRange(v) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrVertexNotFound)
	}
	// 2) Simple graph constraints.
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	if _, dup := g.adj[u][v]; dup {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrMultiEdgeNotAllowed)
	}

	// 3) Mirror adjacency and append to the dense edge list.
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	e := Edge{U: u, V: v}
	g.pos[e.Key()] = len(g.edges)
	g.edges = append(g.edges, e)

	return nil
}

// RemoveEdge deletes the edge u—v (either orientation).
// Returns ErrVertexNotFound or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inRange(u) || !g.inRange(v) {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", u, v, ErrVertexNotFound)
	}
	key := Edge{U: u, V: v}.Key()
	idx, ok := g.pos[key]
	if !ok {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", u, v, ErrEdgeNotFound)
	}

	delete(g.adj[u], v)
	delete(g.adj[v], u)

	// Swap-remove: move the last edge into the freed slot.
	last := len(g.edges) - 1
	if idx != last {
		moved := g.edges[last]
		g.edges[idx] = moved
		g.pos[moved.Key()] = idx
	}
	g.edges = g.edges[:last]
	delete(g.pos, key)

	return nil
}

// HasEdge reports whether u—v exists. Out-of-range vertices report false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(u) || !g.inRange(v) {
		return false
	}
	_, ok := g.adj[u][v]

	return ok
}

// EdgeAt returns the i-th edge of the live edge list in its stored
// orientation. The slot order changes as edges are removed, so indices are
// only meaningful between mutations; pair it with Size for uniform sampling.
// Complexity: O(1).
func (g *Graph) EdgeAt(i int) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if i < 0 || i >= len(g.edges) {
		return Edge{}, false
	}

	return g.edges[i], true
}

// Neighbors returns the neighbours of v in ascending order.
// Complexity: O(d log d).
func (g *Graph) Neighbors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(v) {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrVertexNotFound)
	}

	return g.sortedNeighbors(v), nil
}

// Degree returns the number of neighbours of v.
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(v) {
		return 0, fmt.Errorf("Degree(%d): %w", v, ErrVertexNotFound)
	}

	return len(g.adj[v]), nil
}

// Degrees returns the realized degree sequence indexed by vertex.
// Complexity: O(V).
func (g *Graph) Degrees() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(g.adj))
	for v, set := range g.adj {
		out[v] = len(set)
	}

	return out
}

// Adjacency returns a snapshot of all neighbour lists, each sorted
// ascending, taken under a single read lock.
// Complexity: O(V + E log Δ).
func (g *Graph) Adjacency() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]int, len(g.adj))
	for v := range g.adj {
		out[v] = g.sortedNeighbors(v)
	}

	return out
}

// Edges returns all edges in canonical form (U < V), sorted by (U, V).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	for i, e := range g.edges {
		out[i] = e.Key()
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// inRange reports whether v is a valid vertex index. Caller holds mu.
func (g *Graph) inRange(v int) bool {
	return v >= 0 && v < len(g.adj)
}

// sortedNeighbors copies adj[v] into an ascending slice. Caller holds mu.
func (g *Graph) sortedNeighbors(v int) []int {
	out := make([]int, 0, len(g.adj[v]))
	for w := range g.adj[v] {
		out = append(out, w)
	}
	sort.Ints(out)

	return out
}
