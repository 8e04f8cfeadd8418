// SPDX-License-Identifier: MIT
// Package: rcgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Constructors attach context with builderErrorf/%w, never by editing
//     the sentinel text.
//   - Validation order: ErrNilValueFn, ErrTooFewNodes, ErrInvalidProbability,
//     ErrNeedRandSource.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewNodes indicates that a size parameter (n, width, layers, depth)
// is below the minimum for the requested constructor.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrTooManyNodes indicates a size parameter above the constructor's maximum.
var ErrTooManyNodes = errors.New("builder: parameter too large")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrNilValueFn indicates a nil ValueFn.
var ErrNilValueFn = errors.New("builder: nil value function")

// builderErrorf returns "<method>: <message>: <sentinel>" keeping the
// sentinel for errors.Is.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
