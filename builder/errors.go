// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w: "<Method>: <detail>: <sentinel>".
//   • Validation panics are confined to option constructors (WithX...).
//
// Priority when several validations fail:
//   ErrTooFewVertices, then ErrInvalidProbability, then ErrEmptyLabel,
//   then ErrNeedRandSource.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that RandomLabeled ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrEmptyLabel indicates an empty edge label or an empty label set. Path
// queries skip unlabeled edges, so a generator never emits one.
var ErrEmptyLabel = errors.New("builder: empty edge label")

// ErrConstructFailed indicates a nil constructor or target graph.
var ErrConstructFailed = errors.New("builder: construction failed")
