// SPDX-License-Identifier: MIT
// Package: ricci/builder
//
// config.go — resolved, immutable configuration handed to constructors.

package builder

import "math/rand"

// builderConfig is resolved once per BuildGraph call.
type builderConfig struct {
	// rng drives stochastic constructors; nil unless WithSeed/WithRand.
	rng *rand.Rand
}

// newBuilderConfig applies opts in order over the zero configuration.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
