package nullmodel

import (
	"math/rand"

	"github.com/katalvlaran/ricci/core"
)

// SampleTriadicRewire returns a rewired copy of g with the same node count,
// edge count and triangle count. g itself is never modified.
// rng == nil draws from a source seeded by the global generator.
func SampleTriadicRewire(g *core.Graph, rng *rand.Rand, opts ...Option) *core.Graph {
	h, _ := SampleTriadicRewireStats(g, rng, opts...)

	return h
}

// SampleTriadicRewireStats is SampleTriadicRewire that also reports how many
// trials were eligible and accepted.
//
// Loop (on an exclusively owned clone h):
//
//	T0 := triangles(h); repeat SwapsPerEdge·|E| times:
//	  draw distinct slots i ≠ j, edges (a,b)=E[i], (c,d)=E[j]
//	  skip unless a≠c, b≠d, a≠d, b≠c and neither a—c nor b—d exists
//	  remove a—b, c—d; add a—c, b—d
//	  keep if triangles(h) == T0, otherwise restore a—b, c—d
//
// Graphs with fewer than 3 nodes or 3 edges are returned as an unchanged
// clone. Each swap keeps every degree, so the degree sequence survives too.
//
// Complexity: O(SwapsPerEdge · |E| · Σ deg²·log Δ) worst case, dominated by
// the triangle recount after each eligible swap.
func SampleTriadicRewireStats(g *core.Graph, rng *rand.Rand, opts ...Option) (*core.Graph, RewireStats) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	h := g.Clone()
	var st RewireStats
	n, m := h.Order(), h.Size()
	if n < 3 || m < 3 {
		return h, st
	}
	rng = orGlobal(rng)

	target := CountTriangles(h)
	trials := o.SwapsPerEdge * m
	for t := 0; t < trials; t++ {
		st.Trials++

		// 1) Two distinct slots, uniformly.
		i := rng.Intn(m)
		j := rng.Intn(m - 1)
		if j >= i {
			j++
		}
		e1, _ := h.EdgeAt(i)
		e2, _ := h.EdgeAt(j)
		a, b, c, d := e1.U, e1.V, e2.U, e2.V

		// 2) Eligibility.
		if a == c || b == d || a == d || b == c {
			continue
		}
		if h.HasEdge(a, c) || h.HasEdge(b, d) {
			continue
		}
		st.Eligible++

		// 3) Tentative swap. Endpoints are distinct and the new pairs are
		// absent, so none of these calls can fail.
		_ = h.RemoveEdge(a, b)
		_ = h.RemoveEdge(c, d)
		_ = h.AddEdge(a, c)
		_ = h.AddEdge(b, d)

		// 4) Accept or revert.
		if CountTriangles(h) == target {
			st.Accepted++
			continue
		}
		_ = h.RemoveEdge(a, c)
		_ = h.RemoveEdge(b, d)
		_ = h.AddEdge(a, b)
		_ = h.AddEdge(c, d)
	}

	return h, st
}
