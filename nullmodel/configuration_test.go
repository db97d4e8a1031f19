package nullmodel_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ricci/nullmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfigurationModel_Basic checks node count and the degree upper bound.
func TestConfigurationModel_Basic(t *testing.T) {
	degrees := []int{2, 2, 2, 2}
	for seed := int64(0); seed < 50; seed++ {
		g := nullmodel.SampleConfigurationModel(degrees, rand.New(rand.NewSource(seed)))
		require.Equal(t, 4, g.Order())
		for v, d := range g.Degrees() {
			assert.LessOrEqual(t, d, degrees[v], "seed %d node %d", seed, v)
		}
	}
}

// TestConfigurationModel_TotalDegreeBound never exceeds the requested sum.
func TestConfigurationModel_TotalDegreeBound(t *testing.T) {
	degrees := []int{5, 3, 3, 2, 2, 2, 1, 1, 1, 0}
	rng := rand.New(rand.NewSource(11))
	for k := 0; k < 50; k++ {
		g := nullmodel.SampleConfigurationModel(degrees, rng)
		got := g.Degrees()
		assert.LessOrEqual(t, sum(got), sum(degrees))
		for v := range degrees {
			assert.LessOrEqual(t, got[v], degrees[v])
		}
		assert.Equal(t, 0, got[9], "degree-0 node stays isolated")
	}
}

// TestConfigurationModel_SinglePair always realizes the only possible edge.
func TestConfigurationModel_SinglePair(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		g := nullmodel.SampleConfigurationModel([]int{1, 1}, rand.New(rand.NewSource(seed)))
		assert.Equal(t, 1, g.Size())
		assert.True(t, g.HasEdge(0, 1))
	}
}

// TestConfigurationModel_OddSum drops the trailing stub.
func TestConfigurationModel_OddSum(t *testing.T) {
	g, st := nullmodel.SampleConfigurationModelStats([]int{1, 1, 1}, rand.New(rand.NewSource(3)))
	assert.Equal(t, 3, g.Order())
	assert.Equal(t, 1, g.Size())
	assert.Equal(t, 1, st.Dropped)
	assert.Equal(t, 1, st.Pairs)
}

// TestConfigurationModel_SelfLoopRejected is never retried.
func TestConfigurationModel_SelfLoopRejected(t *testing.T) {
	g, st := nullmodel.SampleConfigurationModelStats([]int{2}, rand.New(rand.NewSource(1)))
	assert.Equal(t, 1, g.Order())
	assert.Equal(t, 0, g.Size())
	assert.Equal(t, 1, st.SelfLoops)
}

// TestConfigurationModel_StatsBalance checks the stub bookkeeping identities.
func TestConfigurationModel_StatsBalance(t *testing.T) {
	degrees := []int{4, 4, 3, 3, 2, 2, 1, 1, 1}
	for seed := int64(0); seed < 20; seed++ {
		g, st := nullmodel.SampleConfigurationModelStats(degrees, rand.New(rand.NewSource(seed)))
		assert.Equal(t, sum(degrees), st.Stubs)
		assert.Equal(t, st.Stubs, 2*st.Pairs+st.Dropped)
		assert.Equal(t, st.Pairs, st.Edges+st.SelfLoops+st.Duplicates)
		assert.Equal(t, g.Size(), st.Edges)
	}
}

// TestConfigurationModel_EmptyAndNegative handles degenerate sequences.
func TestConfigurationModel_EmptyAndNegative(t *testing.T) {
	g := nullmodel.SampleConfigurationModel(nil, rand.New(rand.NewSource(1)))
	assert.Equal(t, 0, g.Order())

	g = nullmodel.SampleConfigurationModel([]int{-3, 0, 1}, rand.New(rand.NewSource(1)))
	assert.Equal(t, 3, g.Order())
	assert.Equal(t, 0, g.Size())
}

// TestConfigurationModel_Deterministic repeats a draw with the same seed.
func TestConfigurationModel_Deterministic(t *testing.T) {
	degrees := []int{3, 3, 2, 2, 2, 1, 1}
	a := nullmodel.SampleConfigurationModel(degrees, rand.New(rand.NewSource(99)))
	b := nullmodel.SampleConfigurationModel(degrees, rand.New(rand.NewSource(99)))
	assert.True(t, a.Equal(b))
}

// TestConfigurationModel_NilRand falls back to a global-seeded source.
func TestConfigurationModel_NilRand(t *testing.T) {
	g := nullmodel.SampleConfigurationModel([]int{1, 1}, nil)
	assert.True(t, g.HasEdge(0, 1))
}
