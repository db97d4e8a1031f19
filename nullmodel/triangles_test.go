package nullmodel_test

import (
	"testing"

	"github.com/katalvlaran/ricci/core"
	"github.com/katalvlaran/ricci/nullmodel"
	"github.com/stretchr/testify/assert"
)

// TestCountTriangles covers the classic shapes.
func TestCountTriangles(t *testing.T) {
	k4 := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	cases := []struct {
		name  string
		g     *core.Graph
		count int
	}{
		{"empty", core.NewGraph(0), 0},
		{"isolated", core.NewGraph(5), 0},
		{"triangle", graphOf(t, 3, [][2]int{{0, 1}, {1, 2}, {2, 0}}), 1},
		{"triangle+tail", graphOf(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}}), 1},
		{"square", graphOf(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}), 0},
		{"K4", graphOf(t, 4, k4), 4},
		{"bowtie", graphOf(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4}, {4, 2}}), 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.count, nullmodel.CountTriangles(tc.g))
		})
	}
}
