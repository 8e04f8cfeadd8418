// SPDX-License-Identifier: MIT
// Package: rcgraph/list
//
// list.go - Cons/Nil cells, traversal and rendering.

package list

import (
	"errors"
	"strings"

	"github.com/katalvlaran/rcgraph/cell"
	"github.com/katalvlaran/rcgraph/rc"
)

// ErrNilHead indicates Cons was called with a nil or released head.
var ErrNilHead = errors.New("list: nil or released head")

// List is either Nil or Cons(head, tail).
type List[T any] struct {
	cons bool
	head *rc.Handle[cell.Cell[T]]
	tail *rc.Handle[List[T]]
}

// Nil returns the empty list.
func Nil[T any]() List[T] {
	return List[T]{}
}

// Cons returns a list cell owning head and tail (no clones are taken).
// A nil tail ends the list. Panics with ErrNilHead if head is unusable.
func Cons[T any](head *rc.Handle[cell.Cell[T]], tail *rc.Handle[List[T]]) List[T] {
	if head.Released() {
		panic(ErrNilHead)
	}

	return List[T]{cons: true, head: head, tail: tail}
}

// IsNil reports whether l is the empty list.
func (l *List[T]) IsNil() bool { return !l.cons }

// Head returns the borrowed head handle, or nil for Nil.
func (l *List[T]) Head() *rc.Handle[cell.Cell[T]] { return l.head }

// Tail returns the borrowed tail handle, or nil at the end of the list.
func (l *List[T]) Tail() *rc.Handle[List[T]] { return l.tail }

// next returns the tail cell or nil.
func (l *List[T]) next() *List[T] {
	if l.tail.Released() {
		return nil
	}

	return l.tail.Get()
}

// Len counts the Cons cells.
func (l *List[T]) Len() int {
	n := 0
	for cur := l; cur != nil && cur.cons; cur = cur.next() {
		n++
	}

	return n
}

// Values returns the current head values in order.
func (l *List[T]) Values() []T {
	var out []T
	for cur := l; cur != nil && cur.cons; cur = cur.next() {
		out = append(out, cur.head.Get().Get())
	}

	return out
}

// OwnedHandles implements rc.Owner.
func (l *List[T]) OwnedHandles() []rc.Releasable {
	var owned []rc.Releasable
	if l.head != nil {
		owned = append(owned, l.head)
	}
	if l.tail != nil {
		owned = append(owned, l.tail)
	}
	l.cons, l.head, l.tail = false, nil, nil

	return owned
}

// Release drops the head and tail of a list held by value.
func (l *List[T]) Release() {
	rc.Release(l.OwnedHandles()...)
}

// String renders the list as Cons(1, Cons(2, Nil)).
func (l *List[T]) String() string {
	var sb strings.Builder
	depth := 0
	for cur := l; cur != nil && cur.cons; cur = cur.next() {
		sb.WriteString("Cons(")
		sb.WriteString(cur.head.Get().String())
		sb.WriteString(", ")
		depth++
	}
	sb.WriteString("Nil")
	sb.WriteString(strings.Repeat(")", depth))

	return sb.String()
}
