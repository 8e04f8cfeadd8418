// SPDX-License-Identifier: MIT
// Package: rcgraph/builder
//
// validators.go - parameter checks shared by constructors.
//
// Each helper returns an error wrapping the matching sentinel via
// builderErrorf when its precondition is violated.

package builder

import "math"

// validateFn rejects a nil ValueFn.
func validateFn[T any](method string, fn ValueFn[T]) error {
	if fn == nil {
		return builderErrorf(method, ErrNilValueFn, "fn")
	}

	return nil
}

// validateMin ensures got >= min for the parameter called name.
//
// Complexity: O(1).
func validateMin(method, name string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewNodes, "%s=%d < min=%d", name, got, min)
	}

	return nil
}

// validateMax ensures got <= max for the parameter called name.
func validateMax(method, name string, got, max int) error {
	if got > max {
		return builderErrorf(method, ErrTooManyNodes, "%s=%d > max=%d", name, got, max)
	}

	return nil
}

// validateProbability ensures p is within [0,1]; NaN is rejected.
func validateProbability(method string, p float64) error {
	if math.IsNaN(p) || p < minProbability || p > maxProbability {
		return builderErrorf(method, ErrInvalidProbability, "p=%g", p)
	}

	return nil
}
