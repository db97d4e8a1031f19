package nullmodel

import (
	"errors"
	"math/rand"
)

// DefaultSwapsPerEdge is the triadic-rewire trial budget per edge.
const DefaultSwapsPerEdge = 10

// Sentinel errors for the batch drivers.
var (
	// ErrNegativeSamples indicates a negative replicate count.
	ErrNegativeSamples = errors.New("nullmodel: negative sample count")

	// ErrGraphNil indicates a nil input graph.
	ErrGraphNil = errors.New("nullmodel: graph is nil")
)

// ConfigurationStats reports what happened to the stubs of one
// configuration-model draw.
type ConfigurationStats struct {
	Stubs      int // total stubs (Σ positive degrees)
	Pairs      int // consecutive stub pairs examined
	Edges      int // pairs realized as edges
	SelfLoops  int // pairs dropped as u == v
	Duplicates int // pairs dropped as already present
	Dropped    int // odd trailing stub (0 or 1)
}

// RewireStats reports the trial outcome of one triadic rewire.
type RewireStats struct {
	Trials   int // swap attempts drawn
	Eligible int // attempts passing the endpoint and duplicate checks
	Accepted int // eligible swaps that kept the triangle count
}

// Options configures samplers and batch drivers.
//
//   - SwapsPerEdge — rewire trials per edge (default 10).
//   - Seed         — base seed; replicate i uses Seed+i.
//   - Workers      — batch goroutines; ≤ 0 means GOMAXPROCS.
//   - Progress     — optional batch progress callback (serialized).
type Options struct {
	SwapsPerEdge int
	Seed         int64
	Workers      int
	Progress     func(done, total int)

	seeded bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults. Seed is left unset; a
// batch without WithSeed draws its base seed from the global source.
func DefaultOptions() Options {
	return Options{SwapsPerEdge: DefaultSwapsPerEdge}
}

// WithSwapsPerEdge sets the rewire trial budget per edge. Panics if k < 0.
func WithSwapsPerEdge(k int) Option {
	if k < 0 {
		panic("nullmodel: WithSwapsPerEdge(k<0)")
	}
	return func(o *Options) {
		o.SwapsPerEdge = k
	}
}

// WithSeed fixes the base seed of a batch.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.seeded = true
	}
}

// WithWorkers sets the batch goroutine count; ≤ 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithProgress installs a batch progress callback. Panics on nil.
func WithProgress(fn func(done, total int)) Option {
	if fn == nil {
		panic("nullmodel: WithProgress(nil)")
	}
	return func(o *Options) {
		o.Progress = fn
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.seeded {
		o.Seed = rand.Int63()
		o.seeded = true
	}

	return o
}

// orGlobal returns rng, or a source seeded from the global generator when
// rng is nil.
func orGlobal(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}

	return rand.New(rand.NewSource(rand.Int63()))
}
