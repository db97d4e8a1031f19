// SPDX-License-Identifier: MIT
// Package: ricci/builder
//
// impl_random_sparse.go — RandomSparse(p), an Erdős–Rényi G(n, p) overlay.
//
// Pairs (i,j), i<j, are visited in lexicographic order and each is kept
// with probability p (one rng.Float64 draw per pair). p ∈ {0,1} needs no
// rng; 0<p<1 requires WithSeed or WithRand.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ricci/core"
)

const methodRandomSparse = "RandomSparse"

// RandomSparse returns a Constructor that adds every unordered pair
// independently with probability p.
// Complexity: O(n²) pair checks.
func RandomSparse(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n, err := atLeast(g, methodRandomSparse, 1)
		if err != nil {
			return err
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if p == 0 {
			return nil
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p < 1 && cfg.rng.Float64() >= p {
					continue
				}
				if err = link(g, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
