// Package wasserstein evaluates the entropic Wasserstein-1 distance between
// two discrete measures on n points.
//
// Pipeline:
//
//	normalize(mu), normalize(nu)  →  sinkhorn.Solve  →  W1 = Σ P[i,j]·C[i,j]
//
// Distance takes flattened row-major costs and performs no validation: a
// zero-mass measure yields NaN, mismatched lengths panic. The validating
// entry point lives in package bridge. Evaluate is the options-driven form
// over a *mat.Dense cost; DistanceBatch evaluates many problems in parallel.
package wasserstein
