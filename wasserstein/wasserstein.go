package wasserstein

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ricci/sinkhorn"
)

// Distance returns the entropic W1 between mu and nu under the n×n
// row-major cost, solved with the given epsilon and iteration cap and the
// default tolerance.
//
// Steps:
//  1. Normalize copies of mu and nu by their own sums (sum 0 → NaN).
//  2. Run Sinkhorn on K = exp(-cost/epsilon).
//  3. Return Σ P[i,j]·cost[i,j].
//
// Preconditions (not checked): len(mu), len(nu) ≥ n, len(cost) ≥ n·n,
// epsilon > 0, maxIterations > 0. Callers' slices are never modified.
//
// Complexity: O(maxIterations · n²).
func Distance(mu, nu, cost []float64, n int, epsilon float64, maxIterations int) float64 {
	c := mat.NewDense(n, n, cost[:n*n])
	opts := sinkhorn.DefaultOptions()
	opts.Epsilon = epsilon
	opts.MaxIterations = maxIterations

	w, _ := Evaluate(mu[:n], nu[:n], c, &opts)

	return w
}

// Evaluate is Distance over a gonum cost matrix with full solver options.
// It also returns the solver result (plan, scalings, iteration count).
// opts == nil means sinkhorn.DefaultOptions().
func Evaluate(mu, nu []float64, cost *mat.Dense, opts *sinkhorn.Options) (float64, *sinkhorn.Result) {
	a := Normalize(mu)
	b := Normalize(nu)
	res := sinkhorn.SolveCost(a, b, cost, opts)

	return res.Cost(cost), res
}

// Normalize returns a copy of m scaled to unit sum. A zero sum produces NaN
// (or ±Inf) entries, which then propagate through the solve.
func Normalize(m []float64) []float64 {
	out := make([]float64, len(m))
	copy(out, m)
	floats.Scale(1/floats.Sum(out), out)

	return out
}
