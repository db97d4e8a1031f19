package bfs_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/ricci/bfs"
	"github.com/katalvlaran/ricci/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoComponents: path 0-1-2-3 plus the separate edge 4-5.
func twoComponents(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph(6)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {4, 5}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// TestBFS_Errors covers nil graph, bad start and bad options.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := twoComponents(t)
	_, err = bfs.BFS(g, 6)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	_, err = bfs.BFS(g, -1)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_OrderDepthParent checks the full result on a small graph.
func TestBFS_OrderDepthParent(t *testing.T) {
	g := twoComponents(t)
	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 0, 2, 3}, res.Order)
	assert.Equal(t, []int{1, 0, 1, 2, -1, -1}, res.Depth)
	assert.Equal(t, []int{1, -1, 1, 2, -1, -1}, res.Parent)

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, path)

	_, err = res.PathTo(5)
	assert.Error(t, err)
}

// TestBFS_MaxDepth stops expanding past the limit.
func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(twoComponents(t), 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	assert.Equal(t, bfs.Unreached, res.Depth[3])
}

// TestBFS_Filter skips the edge 1—2.
func TestBFS_Filter(t *testing.T) {
	res, err := bfs.BFS(twoComponents(t), 0, bfs.WithFilterNeighbor(func(c, n int) bool {
		return !(c == 1 && n == 2)
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
}

// TestBFS_OnVisitError aborts and wraps the hook error.
func TestBFS_OnVisitError(t *testing.T) {
	stop := errors.New("stop")
	_, err := bfs.BFS(twoComponents(t), 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

// TestBFS_Cancelled returns the context error.
func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(twoComponents(t), 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestDistances returns -1 for other components.
func TestDistances(t *testing.T) {
	d, err := bfs.Distances(twoComponents(t), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, -1, -1}, d)

	_, err = bfs.Distances(twoComponents(t), 9)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

// TestDistanceMatrix restricts to a node subset and marks unreachable pairs.
func TestDistanceMatrix(t *testing.T) {
	g := twoComponents(t)
	d, err := bfs.DistanceMatrix(g, []int{0, 3, 5})
	require.NoError(t, err)

	r, c := d.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 0.0, d.At(0, 0))
	assert.Equal(t, 3.0, d.At(0, 1))
	assert.Equal(t, 3.0, d.At(1, 0))
	assert.True(t, math.IsInf(d.At(0, 2), 1))
	assert.True(t, math.IsInf(d.At(2, 1), 1))

	_, err = bfs.DistanceMatrix(g, nil)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	_, err = bfs.DistanceMatrix(g, []int{0, 7})
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}
