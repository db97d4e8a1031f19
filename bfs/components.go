package bfs

import (
	"fmt"

	"github.com/katalvlaran/ricci/core"
)

// Components labels every vertex of g with its connected component.
// Labels are 0..k-1 in order of each component's smallest vertex; sizes[c]
// is the vertex count of component c.
// Complexity: O(V + E log Δ).
func Components(g *core.Graph) (labels, sizes []int, err error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	n := g.Order()
	labels = filled(n, Unreached)
	for v := 0; v < n; v++ {
		if labels[v] != Unreached {
			continue
		}
		res, walkErr := BFS(g, v)
		if walkErr != nil {
			return nil, nil, fmt.Errorf("Components: %w", walkErr)
		}
		for _, w := range res.Order {
			labels[w] = len(sizes)
		}
		sizes = append(sizes, len(res.Order))
	}

	return labels, sizes, nil
}

// LargestComponent returns the induced subgraph on the largest connected
// component (ties go to the component with the smaller first vertex),
// relabelled 0..k-1, and ids[i] = original vertex of new vertex i.
// The empty graph yields an empty result.
func LargestComponent(g *core.Graph) (sub *core.Graph, ids []int, err error) {
	labels, sizes, err := Components(g)
	if err != nil {
		return nil, nil, err
	}
	best := -1
	for c, s := range sizes {
		if best < 0 || s > sizes[best] {
			best = c
		}
	}
	if best < 0 {
		return core.NewGraph(0), nil, nil
	}

	index := filled(len(labels), Unreached)
	for v, c := range labels {
		if c == best {
			index[v] = len(ids)
			ids = append(ids, v)
		}
	}
	sub = core.NewGraph(len(ids))
	for _, e := range g.Edges() {
		if labels[e.U] != best {
			continue
		}
		if err = sub.AddEdge(index[e.U], index[e.V]); err != nil {
			return nil, nil, fmt.Errorf("LargestComponent: %w", err)
		}
	}

	return sub, ids, nil
}
