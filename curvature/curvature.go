package curvature

import (
	"context"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/ricci/bfs"
	"github.com/katalvlaran/ricci/core"
	"github.com/katalvlaran/ricci/internal/workpool"
	"github.com/katalvlaran/ricci/sinkhorn"
	"github.com/katalvlaran/ricci/wasserstein"
)

// EdgeCurvature returns κ(x,y) = 1 - W1(m_x, m_y)/d(x,y). x and y need not
// be adjacent but must be distinct and connected.
//
// Steps:
//  1. Support S = {x} ∪ N(x) ∪ {y} ∪ N(y), ascending.
//  2. m_x, m_y on S (alpha at the centre, (1-alpha)/deg on neighbours;
//     an isolated centre keeps all its mass).
//  3. Cost = hop distances between the points of S.
//  4. W1 by Sinkhorn with the configured epsilon and iteration cap.
//
// Complexity: O(|S|·(V+E log Δ)) for the costs plus O(iterations·|S|²).
func EdgeCurvature(g *core.Graph, x, y int, opts ...Option) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	o := resolve(opts)
	if x == y {
		return 0, fmt.Errorf("EdgeCurvature(%d,%d): %w", x, y, ErrSameVertex)
	}

	nx, err := g.Neighbors(x)
	if err != nil {
		return 0, fmt.Errorf("EdgeCurvature(%d,%d): %w", x, y, err)
	}
	ny, err := g.Neighbors(y)
	if err != nil {
		return 0, fmt.Errorf("EdgeCurvature(%d,%d): %w", x, y, err)
	}

	// 1) Support.
	support := unionSorted(append(append([]int{x, y}, nx...), ny...))
	at := make(map[int]int, len(support))
	for i, v := range support {
		at[v] = i
	}

	// 2) Measures.
	mx := lazyWalk(len(support), at, x, nx, o.Alpha)
	my := lazyWalk(len(support), at, y, ny, o.Alpha)

	// 3) Ground cost.
	cost, err := bfs.DistanceMatrix(g, support)
	if err != nil {
		return 0, fmt.Errorf("EdgeCurvature(%d,%d): %w", x, y, err)
	}
	d := cost.At(at[x], at[y])
	if math.IsInf(d, 1) {
		return 0, fmt.Errorf("EdgeCurvature(%d,%d): %w", x, y, ErrUnreachable)
	}

	// 4) Transport.
	so := sinkhorn.DefaultOptions()
	so.Epsilon = o.Epsilon
	so.MaxIterations = o.MaxIterations
	w, _ := wasserstein.Evaluate(mx, my, cost, &so)

	return 1 - w/d, nil
}

// EdgeCurvatures returns κ for every edge of g, sorted by canonical edge,
// computed on o.Workers goroutines. Cancellation is observed between edges.
func EdgeCurvatures(ctx context.Context, g *core.Graph, opts ...Option) ([]EdgeValue, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := resolve(opts)
	edges := g.Edges()
	out := make([]EdgeValue, len(edges))
	errs := make([]error, len(edges))

	err := workpool.Run(ctx, len(edges), o.Workers, func(i int) {
		e := edges[i]
		k, err := EdgeCurvature(g, e.U, e.V, withOptions(o))
		out[i] = EdgeValue{Edge: e, Kappa: k}
		errs[i] = err
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("EdgeCurvatures: %w", err)
	}
	for _, e := range errs {
		if e != nil {
			return nil, fmt.Errorf("EdgeCurvatures: %w", e)
		}
	}

	return out, nil
}

// MeanCurvature averages κ over the edges of g (of its largest component by
// default). Returns ErrNoEdges when there is nothing to average.
func MeanCurvature(ctx context.Context, g *core.Graph, opts ...Option) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	o := resolve(opts)
	if o.LargestComponent {
		sub, _, err := bfs.LargestComponent(g)
		if err != nil {
			return 0, fmt.Errorf("MeanCurvature: %w", err)
		}
		g = sub
	}

	vals, err := EdgeCurvatures(ctx, g, withOptions(o))
	if err != nil {
		return 0, fmt.Errorf("MeanCurvature: %w", err)
	}
	if len(vals) == 0 {
		return 0, fmt.Errorf("MeanCurvature: %w", ErrNoEdges)
	}
	ks := make([]float64, len(vals))
	for i, v := range vals {
		ks[i] = v.Kappa
	}

	return stat.Mean(ks, nil), nil
}

// lazyWalk builds the alpha-lazy random-walk measure of centre c on a
// support of size n.
func lazyWalk(n int, at map[int]int, c int, nbrs []int, alpha float64) []float64 {
	m := make([]float64, n)
	if len(nbrs) == 0 {
		m[at[c]] = 1

		return m
	}
	m[at[c]] = alpha
	share := (1 - alpha) / float64(len(nbrs))
	for _, v := range nbrs {
		m[at[v]] += share
	}

	return m
}

// unionSorted sorts xs and removes duplicates in place.
func unionSorted(xs []int) []int {
	sort.Ints(xs)
	out := xs[:0]
	for _, v := range xs {
		if len(out) == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}

	return out
}

// withOptions replays a resolved Options value as a single Option.
func withOptions(o Options) Option {
	return func(dst *Options) { *dst = o }
}
