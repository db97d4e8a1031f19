package bfs

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ricci/core"
)

// Distances returns the hop distance from src to every vertex of g, with
// Unreached (-1) for vertices in other components.
func Distances(g *core.Graph, src int) ([]int, error) {
	res, err := BFS(g, src)
	if err != nil {
		return nil, fmt.Errorf("Distances: %w", err)
	}

	return res.Depth, nil
}

// DistanceMatrix returns the k×k hop-distance matrix restricted to nodes,
// D[i,j] = hops(nodes[i], nodes[j]), +Inf when unreachable. One BFS per row.
func DistanceMatrix(g *core.Graph, nodes []int) (*mat.Dense, error) {
	k := len(nodes)
	if k == 0 {
		return nil, fmt.Errorf("DistanceMatrix: empty node set: %w", ErrStartVertexNotFound)
	}
	d := mat.NewDense(k, k, nil)
	for i, src := range nodes {
		dist, err := Distances(g, src)
		if err != nil {
			return nil, fmt.Errorf("DistanceMatrix: row %d: %w", i, err)
		}
		for j, dst := range nodes {
			if dst < 0 || dst >= len(dist) {
				return nil, fmt.Errorf("DistanceMatrix: column %d (%d): %w", j, dst, ErrStartVertexNotFound)
			}
			if h := dist[dst]; h == Unreached {
				d.Set(i, j, math.Inf(1))
			} else {
				d.Set(i, j, float64(h))
			}
		}
	}

	return d, nil
}
