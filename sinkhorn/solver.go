package sinkhorn

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Solve runs Sinkhorn-Knopp scaling for the measures mu, nu against a
// prebuilt Gibbs kernel and returns the transport plan.
//
// Algorithm Outline:
//  1. u = v = 1.
//  2. Per iteration, strictly in this order:
//     a) u[i] = mu[i] / (K·v)[i]   for every i (full u-update);
//     b) v[j] = nu[j] / (Kᵀ·u)[j]  for every j, using the new u.
//     An entry whose denominator is ≤ DenominatorFloor keeps its value.
//  3. On iterations k > 0 with k % CheckEvery == 0, stop when
//     ‖u - u_before_k‖₁ < Tolerance.
//  4. P[i,j] = u[i]·K[i,j]·v[j].
//
// Preconditions (not checked): len(mu) == len(nu) == n ≥ 1, kernel is n×n,
// measures are normalized. Solve never fails: degenerate rows or columns
// keep their last valid scaling and whatever numerical artifact follows is
// returned as is. Fully deterministic for identical inputs.
//
// opts == nil means DefaultOptions().
//
// Complexity: O(iterations · n²) time, O(n²) memory for the plan.
func Solve(mu, nu []float64, kernel *mat.Dense, opts *Options) *Result {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	n := len(mu)

	// 1) Scaling vectors; the VecDense views share the slices.
	u := ones(n)
	v := ones(n)
	uVec := mat.NewVecDense(n, u)
	vVec := mat.NewVecDense(n, v)
	kv := mat.NewVecDense(n, nil)
	ktu := mat.NewVecDense(n, nil)
	prev := make([]float64, n)

	res := &Result{U: u, V: v}
	for it := 0; it < o.MaxIterations; it++ {
		check := o.CheckEvery > 0 && it > 0 && it%o.CheckEvery == 0
		if check {
			copy(prev, u)
		}

		// 2a) Full u-update against the previous v.
		kv.MulVec(kernel, vVec)
		for i := 0; i < n; i++ {
			if d := kv.AtVec(i); d > DenominatorFloor {
				u[i] = mu[i] / d
			}
		}

		// 2b) Full v-update against the new u.
		ktu.MulVec(kernel.T(), uVec)
		for j := 0; j < n; j++ {
			if d := ktu.AtVec(j); d > DenominatorFloor {
				v[j] = nu[j] / d
			}
		}
		res.Iterations = it + 1

		// 3) Early stop.
		if check && floats.Distance(u, prev, 1) < o.Tolerance {
			res.Converged = true
			break
		}
	}

	// 4) Plan = diag(u)·K·diag(v).
	plan := mat.NewDense(n, n, nil)
	plan.Apply(func(i, j int, k float64) float64 {
		return u[i] * k * v[j]
	}, kernel)
	res.Plan = plan

	return res
}

// SolveCost builds the Gibbs kernel from cost with opts.Epsilon and runs Solve.
// opts == nil means DefaultOptions().
func SolveCost(mu, nu []float64, cost mat.Matrix, opts *Options) *Result {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	return Solve(mu, nu, GibbsKernel(cost, o.Epsilon), &o)
}

// RowSums returns Σ_j P[i,j] for each row i (approximates mu).
func (r *Result) RowSums() []float64 {
	n, _ := r.Plan.Dims()
	out := make([]float64, n)
	for i := range out {
		out[i] = floats.Sum(r.Plan.RawRowView(i))
	}

	return out
}

// ColSums returns Σ_i P[i,j] for each column j (approximates nu).
func (r *Result) ColSums() []float64 {
	rows, n := r.Plan.Dims()
	out := make([]float64, n)
	col := make([]float64, rows)
	for j := range out {
		mat.Col(col, j, r.Plan)
		out[j] = floats.Sum(col)
	}

	return out
}

// Cost returns Σ_{i,j} P[i,j]·cost[i,j].
func (r *Result) Cost(cost mat.Matrix) float64 {
	var weighted mat.Dense
	weighted.MulElem(r.Plan, cost)

	return mat.Sum(&weighted)
}

// ones returns a slice of n ones.
func ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}

	return out
}
