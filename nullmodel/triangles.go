package nullmodel

import (
	"sort"

	"github.com/katalvlaran/ricci/core"
)

// CountTriangles returns the number of triangles in g.
//
// For every node, each pair of its neighbours that is itself adjacent is
// counted; every triangle is seen once from each of its three corners, so
// the sum is divided by 3.
//
// Complexity: O(Σ deg(v)² · log Δ) on a sorted adjacency snapshot.
func CountTriangles(g *core.Graph) int {
	adj := g.Adjacency()
	total := 0
	for _, nbrs := range adj {
		for i := 0; i < len(nbrs); i++ {
			row := adj[nbrs[i]]
			for j := i + 1; j < len(nbrs); j++ {
				if containsSorted(row, nbrs[j]) {
					total++
				}
			}
		}
	}

	return total / 3
}

// containsSorted reports whether x is in the ascending slice s.
func containsSorted(s []int, x int) bool {
	k := sort.SearchInts(s, x)

	return k < len(s) && s[k] == x
}
