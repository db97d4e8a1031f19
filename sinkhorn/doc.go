// Package sinkhorn solves entropy-regularized optimal transport between two
// discrete measures with Sinkhorn-Knopp matrix scaling.
//
// What it computes:
//
//	Given measures μ, ν on n points and a Gibbs kernel K = exp(-C/ε),
//	find scaling vectors u, v so that P = diag(u)·K·diag(v) has row sums
//	≈ μ and column sums ≈ ν. P is the entropic transport plan.
//
// Key properties:
//   - never fails: degenerate denominators (≤ DenominatorFloor) freeze the
//     affected entry instead of dividing by ~0;
//   - deterministic: identical inputs give bit-identical plans;
//   - early stop: every CheckEvery iterations the L1 change of u is
//     compared against Tolerance.
//
// Usage:
//
//	opts := sinkhorn.DefaultOptions()
//	opts.Epsilon = 0.1
//	res := sinkhorn.SolveCost(mu, nu, cost, &opts)
//	w := res.Cost(cost) // Σ P∘C
//
// Numerical note: very small ε underflows exp(-C/ε) for off-diagonal
// costs. With two disjoint point masses the floor then freezes every
// scaling entry and the plan collapses to ~0; use ε ≥ 0.05 for such
// inputs.
//
// Performance:
//
//   - Time:   O(iterations · n²)
//   - Memory: O(n²) for kernel and plan
package sinkhorn
