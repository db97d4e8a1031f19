// File: methods_clone.go
// Role: Cloning and structural comparison of graph instances.
// Determinism:
//   - Clone preserves the live edge-slot order, so a seeded sampler run on a
//     clone makes the same draws as on the original.
// Concurrency:
//   - Read locks for snapshotting; the source graph is never mutated.

package core

// Clone returns a deep copy of the Graph: vertices, adjacency and the
// edge list in its current slot order.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(len(g.adj))
	clone.edges = make([]Edge, len(g.edges))
	copy(clone.edges, g.edges)
	for i, e := range g.edges {
		clone.adj[e.U][e.V] = struct{}{}
		clone.adj[e.V][e.U] = struct{}{}
		clone.pos[e.Key()] = i
	}

	return clone
}

// Equal reports whether g and other have the same order and the same edge
// set. Edge orientation and slot order are ignored.
// Complexity: O(V + E).
func (g *Graph) Equal(other *Graph) bool {
	if g == other {
		return true
	}
	if other == nil {
		return false
	}
	// Snapshot one side so the two locks are never held together.
	g.mu.RLock()
	order := len(g.adj)
	keys := make([]Edge, 0, len(g.pos))
	for key := range g.pos {
		keys = append(keys, key)
	}
	g.mu.RUnlock()

	other.mu.RLock()
	defer other.mu.RUnlock()
	if order != len(other.adj) || len(keys) != len(other.pos) {
		return false
	}
	for _, key := range keys {
		if _, ok := other.pos[key]; !ok {
			return false
		}
	}

	return true
}
