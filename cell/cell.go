// SPDX-License-Identifier: MIT
// Package: rcgraph/cell
//
// cell.go - Cell type, borrow bookkeeping and scoped helpers.

package cell

import (
	"errors"
	"fmt"
)

// Sentinel errors for borrow conflicts.
var (
	// ErrAlreadyBorrowed indicates BorrowMut while another guard is outstanding.
	ErrAlreadyBorrowed = errors.New("cell: already borrowed")

	// ErrAlreadyMutablyBorrowed indicates Borrow while a writer is outstanding.
	ErrAlreadyMutablyBorrowed = errors.New("cell: already mutably borrowed")

	// ErrGuardReleased indicates access through a guard after Release.
	ErrGuardReleased = errors.New("cell: guard released")
)

// BorrowState describes the outstanding guards of a Cell.
type BorrowState int

const (
	Unused  BorrowState = iota // no guard outstanding
	Reading                    // one or more shared guards
	Writing                    // one exclusive guard
)

// String implements fmt.Stringer.
func (s BorrowState) String() string {
	switch s {
	case Unused:
		return "unused"
	case Reading:
		return "reading"
	case Writing:
		return "writing"
	default:
		return fmt.Sprintf("BorrowState(%d)", int(s))
	}
}

// writing marks an outstanding exclusive guard in Cell.borrows.
const writing = -1

// Cell holds a value of type T behind a dynamic borrow flag.
type Cell[T any] struct {
	value T
	// borrows > 0: number of shared guards; writing: one exclusive guard.
	borrows int
}

// New returns a Cell holding v with no outstanding guards.
func New[T any](v T) Cell[T] {
	return Cell[T]{value: v}
}

// TryBorrow acquires a shared guard.
func (c *Cell[T]) TryBorrow() (*Ref[T], error) {
	if c.borrows == writing {
		return nil, ErrAlreadyMutablyBorrowed
	}
	c.borrows++

	return &Ref[T]{c: c}, nil
}

// Borrow acquires a shared guard and panics on conflict.
func (c *Cell[T]) Borrow() *Ref[T] {
	r, err := c.TryBorrow()
	if err != nil {
		panic(fmt.Errorf("cell: Borrow: %w", err))
	}

	return r
}

// TryBorrowMut acquires the exclusive guard.
func (c *Cell[T]) TryBorrowMut() (*RefMut[T], error) {
	if c.borrows != 0 {
		return nil, ErrAlreadyBorrowed
	}
	c.borrows = writing

	return &RefMut[T]{c: c}, nil
}

// BorrowMut acquires the exclusive guard and panics on conflict.
func (c *Cell[T]) BorrowMut() *RefMut[T] {
	w, err := c.TryBorrowMut()
	if err != nil {
		panic(fmt.Errorf("cell: BorrowMut: %w", err))
	}

	return w
}

// State reports the outstanding guards.
func (c *Cell[T]) State() BorrowState {
	switch {
	case c.borrows == writing:
		return Writing
	case c.borrows > 0:
		return Reading
	default:
		return Unused
	}
}

// Readers reports the number of outstanding shared guards.
func (c *Cell[T]) Readers() int {
	if c.borrows < 0 {
		return 0
	}

	return c.borrows
}

// Inner returns a pointer to the value without taking a guard. rc uses it
// to release handles owned by the value once the last handle is gone.
func (c *Cell[T]) Inner() any {
	return &c.value
}

// Get returns a copy of the value under a shared guard.
func (c *Cell[T]) Get() T {
	r := c.Borrow()
	defer r.Release()

	return r.Get()
}

// Set stores v under the exclusive guard.
func (c *Cell[T]) Set(v T) {
	w := c.BorrowMut()
	defer w.Release()
	w.Set(v)
}

// Replace stores v and returns the previous value.
func (c *Cell[T]) Replace(v T) T {
	w := c.BorrowMut()
	defer w.Release()
	old := w.Get()
	w.Set(v)

	return old
}

// Update runs fn with exclusive access to the value. The guard is released
// when fn returns, including on panic.
func (c *Cell[T]) Update(fn func(v *T)) {
	w := c.BorrowMut()
	defer w.Release()
	fn(w.Ptr())
}

// Read runs fn with a copy of the value under a shared guard.
func (c *Cell[T]) Read(fn func(v T)) {
	r := c.Borrow()
	defer r.Release()
	fn(r.Get())
}

// String renders the value, or <borrowed> while a writer is outstanding.
func (c *Cell[T]) String() string {
	if c.borrows == writing {
		return "<borrowed>"
	}

	return fmt.Sprint(c.value)
}
