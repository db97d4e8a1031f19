// SPDX-License-Identifier: MIT
// Package: ricci/builder
//
// impl_random_regular.go — RandomRegular(d) by stub matching.
//
// Unlike the configuration-model null sampler, this fixture wants an exact
// d-regular simple graph: a pairing containing a loop, a duplicate or an
// already present edge is rejected as a whole and the stubs are reshuffled,
// up to maxStubMatchingAttempts times.
//
// Contract:
//   • 0 ≤ d < n, n·d even (else ErrTooFewVertices).
//   • rng required (else ErrNeedRandSource).
//   • ErrConstructFailed once every attempt failed; g is left untouched.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ricci/core"
)

const (
	methodRandomRegular     = "RandomRegular"
	maxStubMatchingAttempts = 100
)

// RandomRegular returns a Constructor for a uniformly shuffled d-regular graph.
// Complexity: ~O(n·d) per attempt, bounded attempts.
func RandomRegular(d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n, err := atLeast(g, methodRandomRegular, 1)
		if err != nil {
			return err
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomRegular, ErrNeedRandSource)
		}
		if d == 0 {
			return nil
		}

		// 1) Stubs: vertex i repeated d times.
		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		// 2) Reshuffle until the whole pairing is simple and new to g.
		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(g, stubs) {
				continue
			}
			for i := 0; i < len(stubs); i += 2 {
				if err = link(g, methodRandomRegular, stubs[i], stubs[i+1]); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether consecutive stub pairs form a loop-free,
// duplicate-free edge set disjoint from g.
func simplePairing(g *core.Graph, stubs []int) bool {
	seen := make(map[core.Edge]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		e := core.Edge{U: stubs[i], V: stubs[i+1]}
		if e.U == e.V || g.HasEdge(e.U, e.V) {
			return false
		}
		key := e.Key()
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
