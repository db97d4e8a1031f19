package wasserstein_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/ricci/sinkhorn"
	"github.com/katalvlaran/ricci/wasserstein"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

var swap = []float64{0, 1, 1, 0}

// TestDistance_IdenticalMeasures expects ~0 for mu = nu at every size.
func TestDistance_IdenticalMeasures(t *testing.T) {
	for n := 1; n <= 6; n++ {
		mu := make([]float64, n)
		cost := make([]float64, n*n)
		for i := 0; i < n; i++ {
			mu[i] = float64(i + 1)
			for j := 0; j < n; j++ {
				cost[i*n+j] = math.Abs(float64(i - j))
			}
		}
		w := wasserstein.Distance(mu, mu, cost, n, 0.01, 100)
		assert.Less(t, w, 1e-6, "n=%d", n)
		assert.GreaterOrEqual(t, w, 0.0)
	}
}

// TestDistance_TwoPoint moves all mass across unit distance.
func TestDistance_TwoPoint(t *testing.T) {
	w := wasserstein.Distance([]float64{1, 0}, []float64{0, 1}, swap, 2, 0.1, 100)
	assert.InDelta(t, 1.0, w, 1e-6)
}

// TestDistance_EntropicBias shrinks towards the exact W1 = 0.1 as epsilon
// decreases.
func TestDistance_EntropicBias(t *testing.T) {
	mu := []float64{0.3, 0.7}
	nu := []float64{0.4, 0.6}
	prev := math.Inf(1)
	for _, eps := range []float64{1, 0.5, 0.2, 0.1, 0.05} {
		w := wasserstein.Distance(mu, nu, swap, 2, eps, 1000)
		assert.Less(t, w, prev, "eps=%v", eps)
		assert.GreaterOrEqual(t, w, 0.1-1e-9, "eps=%v", eps)
		prev = w
	}
	assert.InDelta(t, 0.1, prev, 1e-6)
}

// TestDistance_TwoPointCollapse pins the floor guard: once exp(-1/eps) drops
// under the 1e-10 denominator floor, the disjoint two-point plan stays near
// zero instead of moving the mass.
func TestDistance_TwoPointCollapse(t *testing.T) {
	for _, eps := range []float64{0.05, 0.044} {
		w := wasserstein.Distance([]float64{1, 0}, []float64{0, 1}, swap, 2, eps, 100)
		assert.InDelta(t, 1.0, w, 1e-6, "eps=%v", eps)
	}
	for _, eps := range []float64{0.04, 0.02, 0.01} {
		w := wasserstein.Distance([]float64{1, 0}, []float64{0, 1}, swap, 2, eps, 100)
		assert.False(t, math.IsNaN(w), "eps=%v", eps)
		assert.Less(t, w, 1e-9, "eps=%v", eps)
	}
}

// TestDistance_Unnormalized treats mass ratios only.
func TestDistance_Unnormalized(t *testing.T) {
	a := wasserstein.Distance([]float64{3, 7}, []float64{4, 6}, swap, 2, 0.1, 500)
	b := wasserstein.Distance([]float64{0.3, 0.7}, []float64{0.4, 0.6}, swap, 2, 0.1, 500)
	assert.InDelta(t, b, a, 1e-12)
	assert.InDelta(t, 0.1, a, 1e-4)
}

// TestDistance_DoesNotMutate leaves the caller's slices untouched.
func TestDistance_DoesNotMutate(t *testing.T) {
	mu := []float64{2, 2}
	nu := []float64{1, 3}
	cost := []float64{0, 1, 1, 0}
	_ = wasserstein.Distance(mu, nu, cost, 2, 0.1, 50)
	assert.Equal(t, []float64{2, 2}, mu)
	assert.Equal(t, []float64{1, 3}, nu)
	assert.Equal(t, []float64{0, 1, 1, 0}, cost)
}

// TestDistance_ZeroMass propagates NaN instead of failing.
func TestDistance_ZeroMass(t *testing.T) {
	w := wasserstein.Distance([]float64{0, 0}, []float64{0, 1}, swap, 2, 0.1, 50)
	assert.True(t, math.IsNaN(w))
}

// TestEvaluate_ReturnsResult exposes the solver result alongside W1.
func TestEvaluate_ReturnsResult(t *testing.T) {
	opts := sinkhorn.DefaultOptions()
	opts.Epsilon = 0.1
	opts.MaxIterations = 500
	cost := mat.NewDense(2, 2, swap)

	w, res := wasserstein.Evaluate([]float64{0.3, 0.7}, []float64{0.4, 0.6}, cost, &opts)
	require.NotNil(t, res)
	assert.InDelta(t, 0.1, w, 1e-4)
	assert.InDeltaSlice(t, []float64{0.3, 0.7}, res.RowSums(), 0.05)
	assert.InDeltaSlice(t, []float64{0.4, 0.6}, res.ColSums(), 0.05)
}

// TestNormalize_Copy returns a unit-sum copy.
func TestNormalize_Copy(t *testing.T) {
	in := []float64{1, 3}
	out := wasserstein.Normalize(in)
	assert.Equal(t, []float64{0.25, 0.75}, out)
	assert.Equal(t, []float64{1, 3}, in)
}

// TestDistanceBatch matches sequential evaluation slot by slot.
func TestDistanceBatch(t *testing.T) {
	opts := sinkhorn.DefaultOptions()
	opts.Epsilon = 0.1
	cost := mat.NewDense(2, 2, swap)
	problems := []wasserstein.Problem{
		{Mu: []float64{1, 0}, Nu: []float64{0, 1}, Cost: cost},
		{Mu: []float64{0.5, 0.5}, Nu: []float64{0.5, 0.5}, Cost: cost},
		{Mu: []float64{0.3, 0.7}, Nu: []float64{0.4, 0.6}, Cost: cost},
	}

	got, err := wasserstein.DistanceBatch(context.Background(), problems, &opts, 2)
	require.NoError(t, err)
	require.Len(t, got, len(problems))
	for i, p := range problems {
		want, _ := wasserstein.Evaluate(p.Mu, p.Nu, p.Cost, &opts)
		assert.Equal(t, want, got[i], "slot %d", i)
	}
}

// TestDistanceBatch_Cancelled reports the context error and leaves NaN slots.
func TestDistanceBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	problems := []wasserstein.Problem{{Mu: []float64{1}, Nu: []float64{1}, Cost: mat.NewDense(1, 1, nil)}}

	got, err := wasserstein.DistanceBatch(ctx, problems, nil, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, math.IsNaN(got[0]))
}
