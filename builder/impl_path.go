// SPDX-License-Identifier: MIT
// Package: ricci/builder
//
// impl_path.go — Path() and Grid(rows, cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/ricci/core"
)

const (
	methodPath = "Path"
	methodGrid = "Grid"

	minPathVertices = 2
)

// Path returns a Constructor for the simple path 0—1—…—(n-1) (n ≥ 2).
// Complexity: O(n).
func Path() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		n, err := atLeast(g, methodPath, minPathVertices)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = link(g, methodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Grid returns a Constructor for a rows×cols 4-neighbour grid with vertex
// r·cols+c. Requires rows, cols ≥ 1 and rows·cols == n. Emission order is
// row-major: right neighbour first, then down.
// Complexity: O(n).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("%s: rows=%d cols=%d: %w", methodGrid, rows, cols, ErrTooFewVertices)
		}
		if n := g.Order(); rows*cols != n {
			return fmt.Errorf("%s: %d×%d ≠ n=%d: %w", methodGrid, rows, cols, n, ErrBadSize)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*cols + c
				if c+1 < cols {
					if err := link(g, methodGrid, v, v+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, methodGrid, v, v+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
