package nullmodel_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/ricci/builder"
	"github.com/katalvlaran/ricci/nullmodel"
)

// BenchmarkConfigurationModel draws from uniform degree-4 sequences.
func BenchmarkConfigurationModel(b *testing.B) {
	for _, n := range []int{10, 50, 100, 500} {
		degrees := make([]int, n)
		for i := range degrees {
			degrees[i] = 4
		}
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(1))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = nullmodel.SampleConfigurationModel(degrees, rng)
			}
		})
	}
}

// BenchmarkTriadicRewire runs on cycles with a chord every third vertex.
func BenchmarkTriadicRewire(b *testing.B) {
	for _, n := range []int{10, 20, 50} {
		g, err := builder.BuildGraph(n, nil, builder.Cycle(), builder.Chords(2, 3))
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(1))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = nullmodel.SampleTriadicRewire(g, rng)
			}
		})
	}
}

// BenchmarkCountTriangles measures the recount used after each swap.
func BenchmarkCountTriangles(b *testing.B) {
	g := cycleWithChords(b, 200, 2)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = nullmodel.CountTriangles(g)
	}
}

// BenchmarkConfigurationModel_Skewed draws from a decaying degree sequence
// clamped to [2,20] with an even sum.
func BenchmarkConfigurationModel_Skewed(b *testing.B) {
	for _, n := range []int{50, 100, 200} {
		degrees := make([]int, n)
		total := 0
		for i := range degrees {
			d := 10 * int(1/math.Sqrt(float64(i+1)))
			degrees[i] = min(max(d, 2), 20)
			total += degrees[i]
		}
		if total%2 == 1 {
			degrees[0]++
		}
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(1))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = nullmodel.SampleConfigurationModel(degrees, rng)
			}
		})
	}
}
