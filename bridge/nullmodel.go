package bridge

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/ricci/core"
	"github.com/katalvlaran/ricci/nullmodel"
)

// GenerateConfigurationModels draws nSamples configuration-model graphs for
// degrees on all available cores. nSamples ≤ 0 yields an empty slice.
// Replicates are seeded from the global generator; use
// nullmodel.GenerateConfigurationModels with WithSeed for reproducible
// batches.
func GenerateConfigurationModels(degrees []int, nSamples int) []*core.Graph {
	if nSamples <= 0 {
		return []*core.Graph{}
	}

	out, err := nullmodel.GenerateConfigurationModels(context.Background(), degrees, nSamples)
	if err != nil {
		// Background context and a positive count leave no failure path.
		log.Error().Err(err).Int("samples", nSamples).Msg("configuration model batch failed")
	}

	return out
}
