package bridge

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/ricci/wasserstein"
)

// ComputeWasserstein1 validates its arguments and returns the entropic W1
// between mu and nu under the n×n row-major cost.
//
// Any failed check (see ValidateWasserstein1) logs the reason at error level
// and returns NaN; nothing panics. Only the first n (measures) and n·n (cost)
// elements are read. Zero-mass or negative measures are not rejected here;
// a zero-mass measure still comes back as NaN from the solve.
func ComputeWasserstein1(mu, nu, cost []float64, n int, epsilon float64, maxIterations int) float64 {
	if err := ValidateWasserstein1(mu, nu, cost, n, epsilon, maxIterations); err != nil {
		log.Error().Err(err).Int("n", n).Float64("epsilon", epsilon).
			Int("max_iterations", maxIterations).Msg("wasserstein-1 input rejected")

		return math.NaN()
	}

	return wasserstein.Distance(mu, nu, cost, n, epsilon, maxIterations)
}

// ValidateWasserstein1 runs the boundary checks of ComputeWasserstein1 in
// order: nil slices, n, epsilon, maxIterations, slice lengths, finiteness.
// The first failure is returned wrapped around one of the package sentinels.
//
// Complexity: O(n²) for the finiteness scan of cost.
func ValidateWasserstein1(mu, nu, cost []float64, n int, epsilon float64, maxIterations int) error {
	switch {
	case mu == nil:
		return fmt.Errorf("mu: %w", ErrNilInput)
	case nu == nil:
		return fmt.Errorf("nu: %w", ErrNilInput)
	case cost == nil:
		return fmt.Errorf("cost: %w", ErrNilInput)
	case n <= 0:
		return fmt.Errorf("n=%d: %w", n, ErrBadSize)
	case math.IsNaN(epsilon) || math.IsInf(epsilon, 0) || epsilon <= 0:
		return fmt.Errorf("epsilon=%g: %w", epsilon, ErrBadEpsilon)
	case maxIterations <= 0:
		return fmt.Errorf("maxIterations=%d: %w", maxIterations, ErrBadIterations)
	case len(mu) < n:
		return fmt.Errorf("len(mu)=%d < %d: %w", len(mu), n, ErrShortInput)
	case len(nu) < n:
		return fmt.Errorf("len(nu)=%d < %d: %w", len(nu), n, ErrShortInput)
	case len(cost) < n*n:
		return fmt.Errorf("len(cost)=%d < %d: %w", len(cost), n*n, ErrShortInput)
	}

	if i, ok := firstNonFinite(mu[:n]); !ok {
		return fmt.Errorf("mu[%d]: %w", i, ErrNonFinite)
	}
	if i, ok := firstNonFinite(nu[:n]); !ok {
		return fmt.Errorf("nu[%d]: %w", i, ErrNonFinite)
	}
	if i, ok := firstNonFinite(cost[:n*n]); !ok {
		return fmt.Errorf("cost[%d]: %w", i, ErrNonFinite)
	}

	return nil
}

// firstNonFinite returns the index of the first NaN/Inf in xs and false, or
// (-1, true) when every element is finite.
func firstNonFinite(xs []float64) (int, bool) {
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return i, false
		}
	}

	return -1, true
}
