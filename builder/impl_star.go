// SPDX-License-Identifier: MIT
// Package: ricci/builder
//
// impl_star.go — Star() and Wheel(); vertex 0 is the hub in both.

package builder

import "github.com/katalvlaran/ricci/core"

const (
	methodStar  = "Star"
	methodWheel = "Wheel"

	minStarVertices  = 2
	minWheelVertices = 4
)

// Star returns a Constructor for the star with hub 0 and leaves 1..n-1 (n ≥ 2).
// Complexity: O(n).
func Star() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		n, err := atLeast(g, methodStar, minStarVertices)
		if err != nil {
			return err
		}
		for leaf := 1; leaf < n; leaf++ {
			if err = link(g, methodStar, 0, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor for W_n: rim cycle 1..n-1 followed by spokes
// 0—i in ascending i (n ≥ 4).
// Complexity: O(n).
func Wheel() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		n, err := atLeast(g, methodWheel, minWheelVertices)
		if err != nil {
			return err
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			if err = link(g, methodWheel, 1+i, 1+(i+1)%rim); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err = link(g, methodWheel, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
