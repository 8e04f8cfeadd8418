// SPDX-License-Identifier: MIT
// Package: rcgraph/rc
//
// types.go - Handle, allocation box, options and sentinel errors.

package rc

import "errors"

// Sentinel errors for handle operations.
var (
	// ErrReleased indicates an operation on a handle that was already dropped.
	ErrReleased = errors.New("rc: handle released")

	// ErrNilHandle indicates an operation on a nil *Handle.
	ErrNilHandle = errors.New("rc: nil handle")
)

// Key identifies one allocation. Two handles alias the same storage iff
// their keys are equal. Keys are never reused within a process.
type Key uint64

// nextKey is the atomic allocation key generator.
var nextKey uint64

// box is the single allocation shared by every handle cloned from it.
type box[T any] struct {
	key     Key      // stable identity
	strong  int      // number of live handles
	value   T        // payload; zeroed when strong reaches 0
	tracker *Tracker // optional bookkeeping, nil-safe
}

// Handle is a reference-counted pointer to a shared value of type T.
//
// The zero Handle and a dropped Handle are both "released": they refer to no
// allocation. Always pass handles as *Handle[T]; copying the struct would
// duplicate ownership without touching the count.
type Handle[T any] struct {
	b *box[T]
}

// Option configures a new allocation.
type Option func(*config)

type config struct {
	tracker *Tracker
}

// WithTracker records the allocation, its clones, drops and its free in t.
// Clones inherit the tracker of their source. Panics on nil.
func WithTracker(t *Tracker) Option {
	if t == nil {
		panic("rc: WithTracker(nil)")
	}
	return func(c *config) { c.tracker = t }
}
