package curvature

import (
	"errors"

	"github.com/katalvlaran/ricci/core"
)

// Defaults.
const (
	DefaultAlpha         = 0.5
	DefaultEpsilon       = 0.1
	DefaultMaxIterations = 1000
)

// Sentinel errors.
var (
	// ErrGraphNil indicates a nil graph.
	ErrGraphNil = errors.New("curvature: graph is nil")

	// ErrSameVertex indicates x == y.
	ErrSameVertex = errors.New("curvature: endpoints coincide")

	// ErrUnreachable indicates x and y lie in different components.
	ErrUnreachable = errors.New("curvature: endpoints are not connected")

	// ErrNoEdges indicates a mean over an empty edge set.
	ErrNoEdges = errors.New("curvature: graph has no edges")
)

// Options configures curvature computations.
//
//   - Alpha            — idleness: mass kept at the centre of each measure, in [0,1].
//   - Epsilon          — Sinkhorn regularization.
//   - MaxIterations    — Sinkhorn iteration cap.
//   - Workers          — goroutines for EdgeCurvatures; ≤ 0 means GOMAXPROCS.
//   - LargestComponent — MeanCurvature averages over the largest connected
//     component only.
type Options struct {
	Alpha            float64
	Epsilon          float64
	MaxIterations    int
	Workers          int
	LargestComponent bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns alpha 0.5, epsilon 0.1, 1000 iterations, GOMAXPROCS
// workers, restricted to the largest component.
func DefaultOptions() Options {
	return Options{
		Alpha:            DefaultAlpha,
		Epsilon:          DefaultEpsilon,
		MaxIterations:    DefaultMaxIterations,
		LargestComponent: true,
	}
}

// WithAlpha sets the idleness. Panics outside [0,1].
func WithAlpha(a float64) Option {
	if a < 0 || a > 1 {
		panic("curvature: WithAlpha(a∉[0,1])")
	}
	return func(o *Options) { o.Alpha = a }
}

// WithEpsilon sets the Sinkhorn regularization. Panics if eps <= 0.
func WithEpsilon(eps float64) Option {
	if !(eps > 0) {
		panic("curvature: WithEpsilon(eps<=0)")
	}
	return func(o *Options) { o.Epsilon = eps }
}

// WithMaxIterations sets the Sinkhorn iteration cap. Panics if n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic("curvature: WithMaxIterations(n<=0)")
	}
	return func(o *Options) { o.MaxIterations = n }
}

// WithWorkers sets the EdgeCurvatures goroutine count.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLargestComponent toggles the largest-component restriction of
// MeanCurvature.
func WithLargestComponent(on bool) Option {
	return func(o *Options) { o.LargestComponent = on }
}

// EdgeValue is the curvature of one edge, in canonical orientation (U < V).
type EdgeValue struct {
	Edge  core.Edge
	Kappa float64
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
