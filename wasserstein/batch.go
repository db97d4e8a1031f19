package wasserstein

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ricci/internal/workpool"
	"github.com/katalvlaran/ricci/sinkhorn"
)

// Problem is one entry of a DistanceBatch.
type Problem struct {
	Mu, Nu []float64
	Cost   *mat.Dense
}

// DistanceBatch evaluates every problem with the same solver options on
// workers goroutines (≤ 0 means GOMAXPROCS). out[i] belongs to problems[i].
// On cancellation the returned slice holds the finished entries and NaN
// stays in the rest.
//
// Complexity: Σ O(iterations · n_i²) spread over the workers.
func DistanceBatch(ctx context.Context, problems []Problem, opts *sinkhorn.Options, workers int) ([]float64, error) {
	out := make([]float64, len(problems))
	for i := range out {
		out[i] = math.NaN()
	}

	log.Debug().Int("problems", len(problems)).Int("workers", workers).Msg("wasserstein batch start")
	err := workpool.Run(ctx, len(problems), workers, func(i int) {
		p := problems[i]
		out[i], _ = Evaluate(p.Mu, p.Nu, p.Cost, opts)
	}, nil)
	if err != nil {
		return out, fmt.Errorf("DistanceBatch: %w", err)
	}
	log.Debug().Int("problems", len(problems)).Msg("wasserstein batch done")

	return out, nil
}
