package nullmodel

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/ricci/core"
	"github.com/katalvlaran/ricci/internal/workpool"
)

// GenerateConfigurationModels draws nSamples independent configuration-model
// graphs for degrees in parallel. Replicate i uses its own source seeded
// with Seed+i and lands in out[i], so the result does not depend on the
// worker count.
//
// Errors: ErrNegativeSamples for nSamples < 0; the context error when ctx is
// cancelled before all replicates started (finished slots are kept, the rest
// are nil).
func GenerateConfigurationModels(ctx context.Context, degrees []int, nSamples int, opts ...Option) ([]*core.Graph, error) {
	if nSamples < 0 {
		return nil, fmt.Errorf("GenerateConfigurationModels(n=%d): %w", nSamples, ErrNegativeSamples)
	}

	return generate(ctx, "configuration", nSamples, resolve(opts), func(rng *rand.Rand, _ Options) *core.Graph {
		return SampleConfigurationModel(degrees, rng)
	})
}

// GenerateTriadicRewires draws nSamples independent triadic rewires of g in
// parallel, seeded like GenerateConfigurationModels. g is only read.
//
// Errors: ErrGraphNil, ErrNegativeSamples, or the context error.
func GenerateTriadicRewires(ctx context.Context, g *core.Graph, nSamples int, opts ...Option) ([]*core.Graph, error) {
	if g == nil {
		return nil, fmt.Errorf("GenerateTriadicRewires: %w", ErrGraphNil)
	}
	if nSamples < 0 {
		return nil, fmt.Errorf("GenerateTriadicRewires(n=%d): %w", nSamples, ErrNegativeSamples)
	}

	return generate(ctx, "triadic", nSamples, resolve(opts), func(rng *rand.Rand, o Options) *core.Graph {
		return SampleTriadicRewire(g, rng, WithSwapsPerEdge(o.SwapsPerEdge))
	})
}

// generate fans nSamples replicates of sample out over the worker pool.
func generate(ctx context.Context, model string, nSamples int, o Options,
	sample func(rng *rand.Rand, o Options) *core.Graph) ([]*core.Graph, error) {
	out := make([]*core.Graph, nSamples)
	log.Debug().Str("model", model).Int("samples", nSamples).Int("workers", o.Workers).
		Int64("seed", o.Seed).Msg("null model batch start")

	err := workpool.Run(ctx, nSamples, o.Workers, func(i int) {
		rng := rand.New(rand.NewSource(o.Seed + int64(i)))
		out[i] = sample(rng, o)
	}, o.Progress)
	if err != nil {
		return out, fmt.Errorf("generate %s: %w", model, err)
	}

	log.Debug().Str("model", model).Int("samples", nSamples).Msg("null model batch done")

	return out, nil
}
