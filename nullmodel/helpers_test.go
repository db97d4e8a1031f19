package nullmodel_test

import (
	"testing"

	"github.com/katalvlaran/ricci/core"
	"github.com/stretchr/testify/require"
)

// graphOf builds an n-vertex graph from an edge list.
func graphOf(t testing.TB, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph(n)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// cycleWithChords builds C_n plus chords i—(i+step) for every even i.
func cycleWithChords(t testing.TB, n, step int) *core.Graph {
	t.Helper()
	g := core.NewGraph(n)
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddEdge(i, (i+1)%n))
	}
	for i := 0; i < n; i += 2 {
		j := (i + step) % n
		if !g.HasEdge(i, j) && i != j {
			require.NoError(t, g.AddEdge(i, j))
		}
	}

	return g
}

// sum adds up ints.
func sum(xs []int) int {
	s := 0
	for _, x := range xs {
		s += x
	}

	return s
}
