// SPDX-License-Identifier: MIT
// Package: ricci/builder
//
// impl_complete.go — Complete() and CompleteBipartite(k).

package builder

import (
	"fmt"

	"github.com/katalvlaran/ricci/core"
)

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
)

// Complete returns a Constructor for K_n (n ≥ 1), pairs (i,j), i<j, in
// lexicographic order.
// Complexity: O(n²).
func Complete() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		n, err := atLeast(g, methodComplete, 1)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = link(g, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor for K_{k,n-k} with left side
// 0..k-1 and right side k..n-1. Requires 1 ≤ k < n.
// Complexity: O(k·(n-k)).
func CompleteBipartite(k int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		n := g.Order()
		if k < 1 || k >= n {
			return fmt.Errorf("%s: k=%d not in [1,%d): %w", methodCompleteBipartite, k, n, ErrBadSize)
		}
		for i := 0; i < k; i++ {
			for j := k; j < n; j++ {
				if err := link(g, methodCompleteBipartite, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
