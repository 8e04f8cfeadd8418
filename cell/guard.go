// SPDX-License-Identifier: MIT
// Package: rcgraph/cell
//
// guard.go - Ref and RefMut guards.

package cell

import "fmt"

// Ref is a shared guard. Any number of Refs may coexist; none may coexist
// with a RefMut.
type Ref[T any] struct {
	c *Cell[T]
}

// Get returns a copy of the guarded value.
func (r *Ref[T]) Get() T {
	return r.cell("Ref.Get").value
}

// Release gives the guard back. Releasing twice is a no-op.
func (r *Ref[T]) Release() {
	if r == nil || r.c == nil {
		return
	}
	r.c.borrows--
	r.c = nil
}

func (r *Ref[T]) cell(op string) *Cell[T] {
	if r == nil || r.c == nil {
		panic(fmt.Errorf("cell: %s: %w", op, ErrGuardReleased))
	}

	return r.c
}

// RefMut is the exclusive guard.
type RefMut[T any] struct {
	c *Cell[T]
}

// Get returns a copy of the guarded value.
func (w *RefMut[T]) Get() T {
	return w.cell("RefMut.Get").value
}

// Set overwrites the guarded value.
func (w *RefMut[T]) Set(v T) {
	w.cell("RefMut.Set").value = v
}

// Ptr returns a pointer to the guarded value, valid until Release.
func (w *RefMut[T]) Ptr() *T {
	return &w.cell("RefMut.Ptr").value
}

// Release gives the guard back. Releasing twice is a no-op.
func (w *RefMut[T]) Release() {
	if w == nil || w.c == nil {
		return
	}
	w.c.borrows = 0
	w.c = nil
}

func (w *RefMut[T]) cell(op string) *Cell[T] {
	if w == nil || w.c == nil {
		panic(fmt.Errorf("cell: %s: %w", op, ErrGuardReleased))
	}

	return w.c
}
