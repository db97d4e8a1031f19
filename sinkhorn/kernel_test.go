package sinkhorn_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ricci/sinkhorn"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

// TestGibbsKernel_Values checks exp(-C/ε) entrywise and that cost is untouched.
func TestGibbsKernel_Values(t *testing.T) {
	cost := mat.NewDense(2, 2, []float64{0, 1, 2, 0})
	k := sinkhorn.GibbsKernel(cost, 0.5)

	assert.Equal(t, 1.0, k.At(0, 0), "zero cost maps to 1")
	assert.InDelta(t, math.Exp(-2), k.At(0, 1), 1e-15)
	assert.InDelta(t, math.Exp(-4), k.At(1, 0), 1e-15)
	assert.Equal(t, 1.0, k.At(1, 1))
	assert.Equal(t, 2.0, cost.At(1, 0), "cost must not be mutated")
}

// TestGibbsKernel_Underflow shows the small-ε regime: off-diagonal entries vanish.
func TestGibbsKernel_Underflow(t *testing.T) {
	cost := mat.NewDense(2, 2, []float64{0, 1, 1, 0})
	k := sinkhorn.GibbsKernel(cost, 0.001)

	assert.Equal(t, 1.0, k.At(0, 0))
	assert.Less(t, k.At(0, 1), 1e-300, "exp(-1000) underflows")
}
