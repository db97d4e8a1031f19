// Package sinkhorn defines options and results for the Sinkhorn-Knopp solver.
package sinkhorn

import "gonum.org/v1/gonum/mat"

// Defaults (single source of truth for DefaultOptions).
const (
	// DefaultEpsilon is the entropic regularization strength.
	DefaultEpsilon = 0.01

	// DefaultMaxIterations bounds the number of full u/v rounds.
	DefaultMaxIterations = 100

	// DefaultTolerance is the L1 threshold on successive u vectors below
	// which the solver stops early.
	DefaultTolerance = 1e-9

	// DefaultCheckEvery is the convergence-check period in iterations.
	DefaultCheckEvery = 10

	// DenominatorFloor: a scaling entry is only updated when its
	// denominator (K·v)[i] or (Kᵀ·u)[j] is strictly greater than this.
	DenominatorFloor = 1e-10
)

// Options configures a Sinkhorn solve.
//
// Fields:
//   - Epsilon       — regularization used by SolveCost to build the kernel.
//     Solve ignores it (the kernel is already built).
//   - MaxIterations — upper bound on u/v rounds.
//   - Tolerance     — early-stop threshold on ‖u - u_prev‖₁.
//   - CheckEvery    — check convergence on iterations k>0 with k%CheckEvery==0.
//     A value ≤ 0 disables early stopping.
//
// Example:
//
//	opts := sinkhorn.DefaultOptions()
//	opts.Epsilon = 0.1
//	opts.MaxIterations = 500
//	res := sinkhorn.SolveCost(mu, nu, cost, &opts)
type Options struct {
	Epsilon       float64
	MaxIterations int
	Tolerance     float64
	CheckEvery    int
}

// DefaultOptions returns Options with the documented defaults.
func DefaultOptions() Options {
	return Options{
		Epsilon:       DefaultEpsilon,
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		CheckEvery:    DefaultCheckEvery,
	}
}

// Result is the outcome of a solve.
//
//   - Plan       — transport plan P[i,j] = U[i]·K[i,j]·V[j].
//   - U, V       — final scaling vectors.
//   - Iterations — u/v rounds actually performed.
//   - Converged  — true when the early-stop test fired.
type Result struct {
	Plan       *mat.Dense
	U, V       []float64
	Iterations int
	Converged  bool
}
