// SPDX-License-Identifier: MIT
// Package: rcgraph/rc
//
// handle.go - allocation, cloning, identity and counting.

package rc

import (
	"fmt"
	"sync/atomic"
)

// New allocates storage for value with a strong count of 1.
//
// Complexity: O(len(opts)).
func New[T any](value T, opts ...Option) *Handle[T] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &box[T]{
		key:     Key(atomic.AddUint64(&nextKey, 1)),
		strong:  1,
		value:   value,
		tracker: cfg.tracker,
	}
	b.tracker.alloc(b.key, fmt.Sprintf("%T", value))

	return &Handle[T]{b: b}
}

// live returns the allocation or panics if h is nil or released.
func (h *Handle[T]) live(op string) *box[T] {
	if h == nil {
		panic(fmt.Errorf("rc: %s: %w", op, ErrNilHandle))
	}
	if h.b == nil {
		panic(fmt.Errorf("rc: %s: %w", op, ErrReleased))
	}

	return h.b
}

// Clone increments the strong count and returns a new handle aliasing the
// same storage. No data is copied.
//
// Complexity: O(1).
func (h *Handle[T]) Clone() *Handle[T] {
	b := h.live("Clone")
	b.strong++
	b.tracker.clone(b.key, b.strong)

	return &Handle[T]{b: b}
}

// Get returns a pointer to the shared value. Every handle aliasing the
// allocation observes writes made through the pointer. The pointer must not
// be retained after the last handle is dropped.
func (h *Handle[T]) Get() *T {
	return &h.live("Get").value
}

// Key returns the allocation identity.
func (h *Handle[T]) Key() Key {
	return h.live("Key").key
}

// StrongCount reports how many live handles alias this allocation, or 0 if
// h is nil or released.
func (h *Handle[T]) StrongCount() int {
	if h.Released() {
		return 0
	}

	return h.b.strong
}

// Released reports whether h no longer refers to an allocation.
func (h *Handle[T]) Released() bool {
	return h == nil || h.b == nil
}

// Same reports whether a and b alias the same allocation. Released handles
// are never the same as anything.
func Same[T any](a, b *Handle[T]) bool {
	if a.Released() || b.Released() {
		return false
	}

	return a.b == b.b
}

// CloneAll returns a new slice holding a clone of every handle in hs.
// Use it before handing a slice to a constructor that takes ownership.
func CloneAll[T any](hs []*Handle[T]) []*Handle[T] {
	out := make([]*Handle[T], len(hs))
	for i, h := range hs {
		out[i] = h.Clone()
	}

	return out
}

// String renders the handle as rc(<key>:<count>) for trace output.
func (h *Handle[T]) String() string {
	if h.Released() {
		return "rc(released)"
	}

	return fmt.Sprintf("rc(%d:%d)", h.b.key, h.b.strong)
}
