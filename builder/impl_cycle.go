// SPDX-License-Identifier: MIT
// Package: ricci/builder
//
// impl_cycle.go — Cycle() and Chords(step, stride).
//
// Emission order: i ascending, edge i—(i+1) mod n (Cycle) or
// i—(i+step) mod n (Chords). Existing edges are skipped.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ricci/core"
)

const (
	methodCycle  = "Cycle"
	methodChords = "Chords"

	minCycleVertices = 3
)

// Cycle returns a Constructor for the simple cycle C_n (n ≥ 3).
// Complexity: O(n).
func Cycle() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		n, err := atLeast(g, methodCycle, minCycleVertices)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = link(g, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Chords returns a Constructor adding i—(i+step) mod n for every i that is
// a multiple of stride. step must be in [2, n-2] so no chord is a loop or a
// ring edge of the same cycle; stride ≥ 1.
// Complexity: O(n / stride).
func Chords(step, stride int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		n, err := atLeast(g, methodChords, minCycleVertices+1)
		if err != nil {
			return err
		}
		if step < 2 || step > n-2 {
			return fmt.Errorf("%s: step=%d not in [2,%d]: %w", methodChords, step, n-2, ErrBadSize)
		}
		if stride < 1 {
			return fmt.Errorf("%s: stride=%d < 1: %w", methodChords, stride, ErrBadSize)
		}
		for i := 0; i < n; i += stride {
			if err = link(g, methodChords, i, (i+step)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
