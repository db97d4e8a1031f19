package sinkhorn

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// GibbsKernel builds K[i,j] = exp(-cost[i,j]/epsilon).
//
// Pure: cost is only read. epsilon must be finite and > 0 and cost must be
// at least 1×1; neither is checked here.
//
// Small epsilon drives K towards a (near) permutation structure: sharper
// plans, slower and less stable scaling. Large epsilon flattens K towards
// uniform: fast convergence, diffuse plans.
//
// Complexity: O(r·c).
func GibbsKernel(cost mat.Matrix, epsilon float64) *mat.Dense {
	r, c := cost.Dims()
	k := mat.NewDense(r, c, nil)
	k.Apply(func(_, _ int, x float64) float64 {
		return math.Exp(-x / epsilon)
	}, cost)

	return k
}
