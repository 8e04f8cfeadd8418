// SPDX-License-Identifier: MIT
// Package: rcgraph/scenario
//
// errors.go - sentinel errors for loading and running scenarios.

package scenario

import "errors"

var (
	// ErrNoSteps indicates a scenario without any [[step]].
	ErrNoSteps = errors.New("scenario: no steps")

	// ErrUnknownKey indicates a TOML key the schema does not define.
	ErrUnknownKey = errors.New("scenario: unknown key")

	// ErrUnknownOp indicates a step op outside the supported set.
	ErrUnknownOp = errors.New("scenario: unknown op")

	// ErrMissingField indicates a step without a field its op requires.
	ErrMissingField = errors.New("scenario: missing field")

	// ErrUnknownName indicates a reference to a name that is not bound.
	ErrUnknownName = errors.New("scenario: unknown name")

	// ErrDuplicateName indicates binding a name that is already bound.
	ErrDuplicateName = errors.New("scenario: name already bound")

	// ErrExpectation indicates a failed expect_* step or an attach whose
	// outcome contradicted want.
	ErrExpectation = errors.New("scenario: expectation failed")

	// ErrLeak indicates allocations still live after every binding was dropped.
	ErrLeak = errors.New("scenario: allocations leaked")

	// ErrUnknownBuiltin indicates a Builtin name with no embedded scenario.
	ErrUnknownBuiltin = errors.New("scenario: unknown builtin")
)
