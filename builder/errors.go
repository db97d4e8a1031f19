// SPDX-License-Identifier: MIT
// Package: ricci/builder
//
// errors.go — sentinel errors returned by constructors.

package builder

import "errors"

// ErrTooFewVertices indicates n (or a size parameter) below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates p outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadSize indicates inconsistent size parameters (e.g. rows·cols ≠ n).
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrConstructFailed indicates a construction that could not complete
// (nil constructor, exhausted retries).
var ErrConstructFailed = errors.New("builder: construction failed")
