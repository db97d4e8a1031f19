// SPDX-License-Identifier: MIT
// Package: ricci/builder
//
// api.go — the BuildGraph orchestrator and the Constructor type.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ricci/core"
)

// Constructor adds edges to g over its existing vertices using the resolved
// builderConfig. Constructors validate parameters before touching g, emit
// edges in a stable order and return sentinel errors instead of panicking.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph with n vertices, resolves bopts and applies
// cons in order. Any constructor error is wrapped as "BuildGraph: %w" and
// returned immediately; the partial graph is discarded.
//
// Complexity: O(n + len(bopts)) plus the cost of every constructor.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("BuildGraph: n=%d: %w", n, ErrBadSize)
	}
	g := core.NewGraph(n)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// link adds u—v unless it already exists. Any other core error is returned
// with the method tag.
func link(g *core.Graph, method string, u, v int) error {
	err := g.AddEdge(u, v)
	if err == nil || errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		return nil
	}

	return fmt.Errorf("%s: %w", method, err)
}

// atLeast checks g.Order() ≥ min for method.
func atLeast(g *core.Graph, method string, min int) (int, error) {
	n := g.Order()
	if n < min {
		return n, fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}

	return n, nil
}
