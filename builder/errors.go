// SPDX-License-Identifier: MIT
// Package: romandom/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context using `%w`.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is smaller than the
// minimum allowed for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability or density outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrTooManyEdges indicates an edge count above n(n-1)/2.
var ErrTooManyEdges = errors.New("builder: too many edges")

// ErrConstructFailed indicates a programmer error during composition
// (e.g., a nil constructor passed to BuildGraph).
var ErrConstructFailed = errors.New("builder: construction failed")
