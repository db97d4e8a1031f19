package bfs_test

import (
	"testing"

	"github.com/katalvlaran/ricci/bfs"
	"github.com/katalvlaran/ricci/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestComponents labels by smallest vertex and counts sizes.
func TestComponents(t *testing.T) {
	g := twoComponents(t)
	labels, sizes, err := bfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0, 1, 1}, labels)
	assert.Equal(t, []int{4, 2}, sizes)

	_, _, err = bfs.Components(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

// TestLargestComponent relabels the biggest component densely.
func TestLargestComponent(t *testing.T) {
	g := core.NewGraph(7)
	for _, e := range [][2]int{{0, 1}, {2, 3}, {3, 4}, {4, 6}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	sub, ids, err := bfs.LargestComponent(g)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4, 6}, ids)
	assert.Equal(t, 4, sub.Order())
	assert.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}}, sub.Edges())

	empty, ids, err := bfs.LargestComponent(core.NewGraph(0))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Order())
	assert.Empty(t, ids)
}
