package bridge

import "errors"

// Rejection reasons reported by ValidateWasserstein1.
var (
	// ErrNilInput indicates a nil mu, nu or cost slice.
	ErrNilInput = errors.New("bridge: nil input slice")

	// ErrBadSize indicates n ≤ 0.
	ErrBadSize = errors.New("bridge: n must be positive")

	// ErrBadEpsilon indicates epsilon ≤ 0, NaN or ±Inf.
	ErrBadEpsilon = errors.New("bridge: epsilon must be finite and positive")

	// ErrBadIterations indicates maxIterations ≤ 0.
	ErrBadIterations = errors.New("bridge: maxIterations must be positive")

	// ErrShortInput indicates a slice shorter than n (measures) or n·n (cost).
	ErrShortInput = errors.New("bridge: input slice too short")

	// ErrNonFinite indicates a NaN or ±Inf element.
	ErrNonFinite = errors.New("bridge: non-finite element")
)
