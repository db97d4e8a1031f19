// File: gonum.go
// Role: Conversion between core.Graph and gonum graph values.
// Determinism:
//   - FromGonum assigns dense indices in ascending gonum node-ID order.

package core

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// ToGonum copies g into a new gonum simple.UndirectedGraph whose node IDs
// equal the core vertex indices. Isolated vertices are kept.
// Complexity: O(V + E).
func (g *Graph) ToGonum() *simple.UndirectedGraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := simple.NewUndirectedGraph()
	for v := range g.adj {
		out.AddNode(simple.Node(int64(v)))
	}
	for _, e := range g.edges {
		out.SetEdge(out.NewEdge(simple.Node(int64(e.U)), simple.Node(int64(e.V))))
	}

	return out
}

// FromGonum builds a core.Graph from any gonum undirected graph.
// Vertex i of the result corresponds to ids[i], the i-th smallest gonum
// node ID. Self-loops in src are rejected with ErrLoopNotAllowed.
// Complexity: O(V log V + E).
func FromGonum(src graph.Undirected) (g *Graph, ids []int64, err error) {
	nodes := graph.NodesOf(src.Nodes())
	ids = make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	g = NewGraph(len(ids))
	for _, uid := range ids {
		u := index[uid]
		for _, w := range graph.NodesOf(src.From(uid)) {
			v := index[w.ID()]
			if v == u {
				return nil, nil, fmt.Errorf("FromGonum(%d): %w", uid, ErrLoopNotAllowed)
			}
			// Each undirected edge is seen from both ends; insert once.
			if u < v {
				if err = g.AddEdge(u, v); err != nil {
					return nil, nil, err
				}
			}
		}
	}

	return g, ids, nil
}
