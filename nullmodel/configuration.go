package nullmodel

import (
	"math/rand"

	"github.com/katalvlaran/ricci/core"
)

// SampleConfigurationModel draws one configuration-model graph with
// len(degrees) nodes whose degrees approximate degrees.
//
// See SampleConfigurationModelStats for the algorithm; this form discards
// the stats. rng == nil draws from a source seeded by the global generator.
func SampleConfigurationModel(degrees []int, rng *rand.Rand) *core.Graph {
	g, _ := SampleConfigurationModelStats(degrees, rng)

	return g
}

// SampleConfigurationModelStats draws one configuration-model graph and
// reports how the stubs were consumed.
//
// Steps:
//  1. Stub list: node i repeated degrees[i] times (negative counts as 0).
//  2. Uniform in-place shuffle (Fisher-Yates via rng.Shuffle).
//  3. Pair stubs (0,1), (2,3), ...; add u—v unless u == v or u—v exists.
//     Rejected pairs are dropped and never retried; an odd last stub is
//     ignored.
//
// Realized degree of node i is ≤ degrees[i]. Odd degree sums are not
// corrected.
//
// Complexity: O(n + Σdegrees) time and memory.
func SampleConfigurationModelStats(degrees []int, rng *rand.Rand) (*core.Graph, ConfigurationStats) {
	rng = orGlobal(rng)
	var st ConfigurationStats

	// 1) Stubs.
	for _, d := range degrees {
		if d > 0 {
			st.Stubs += d
		}
	}
	stubs := make([]int, 0, st.Stubs)
	for i, d := range degrees {
		for k := 0; k < d; k++ {
			stubs = append(stubs, i)
		}
	}

	// 2) Shuffle.
	rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

	// 3) Pair.
	g := core.NewGraph(len(degrees))
	for i := 0; i+1 < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		st.Pairs++
		switch {
		case u == v:
			st.SelfLoops++
		case g.HasEdge(u, v):
			st.Duplicates++
		default:
			// u != v and u—v absent: AddEdge cannot fail.
			_ = g.AddEdge(u, v)
			st.Edges++
		}
	}
	st.Dropped = len(stubs) % 2

	return g, st
}
