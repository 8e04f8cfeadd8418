// SPDX-License-Identifier: MIT
// Package: rcgraph/node
//
// node.go - constructors, value access, children mutation and teardown.

package node

import (
	"fmt"

	"github.com/katalvlaran/rcgraph/cell"
	"github.com/katalvlaran/rcgraph/rc"
)

// New returns a node with no children.
func New[T any](value T) Node[T] {
	return Node[T]{value: cell.New(value)}
}

// NewWithChild returns a node owning exactly the given handle (no clone).
// Panics with ErrNilChild if child is nil or released.
func NewWithChild[T any](value T, child *rc.Handle[Node[T]]) Node[T] {
	if child.Released() {
		panic(fmt.Errorf("node: NewWithChild: %w", ErrNilChild))
	}

	return Node[T]{
		value:    cell.New(value),
		children: cell.New([]*rc.Handle[Node[T]]{child}),
	}
}

// NewWithChildren returns a node owning the slice exactly as given.
//
// The node takes the slice itself, not a copy: the caller must not use or
// drop those handles afterwards. Clone first (rc.CloneAll) to retain them.
// Panics with ErrNilChild if any entry is nil or released.
func NewWithChildren[T any](value T, children []*rc.Handle[Node[T]]) Node[T] {
	for i, c := range children {
		if c.Released() {
			panic(fmt.Errorf("node: NewWithChildren: child %d: %w", i, ErrNilChild))
		}
	}

	return Node[T]{
		value:    cell.New(value),
		children: cell.New(children),
	}
}

// Share moves n into a new reference-counted allocation.
func Share[T any](n Node[T], opts ...rc.Option) *rc.Handle[Node[T]] {
	return rc.New(n, opts...)
}

// Value returns a copy of the payload under a shared guard.
func (n *Node[T]) Value() T {
	return n.value.Get()
}

// SetValue overwrites the payload under the exclusive guard.
func (n *Node[T]) SetValue(v T) {
	n.value.Set(v)
}

// Update mutates the payload in place under the exclusive guard.
func (n *Node[T]) Update(fn func(v *T)) {
	n.value.Update(fn)
}

// Cell exposes the payload guard for callers that need a guard to outlive a
// single call.
func (n *Node[T]) Cell() *cell.Cell[T] {
	return &n.value
}

// Len reports the number of children.
func (n *Node[T]) Len() int {
	r := n.children.Borrow()
	defer r.Release()

	return len(r.Get())
}

// Children returns a snapshot of the child handles in insertion order.
// The handles are borrowed: Clone to keep one, never Drop them.
func (n *Node[T]) Children() []*rc.Handle[Node[T]] {
	r := n.children.Borrow()
	defer r.Release()

	kids := r.Get()
	out := make([]*rc.Handle[Node[T]], len(kids))
	copy(out, kids)

	return out
}

// Child returns the borrowed i-th child handle, or nil if i is out of range.
func (n *Node[T]) Child(i int) *rc.Handle[Node[T]] {
	r := n.children.Borrow()
	defer r.Release()

	kids := r.Get()
	if i < 0 || i >= len(kids) {
		return nil
	}

	return kids[i]
}

// TryAddChild appends child, taking ownership of the handle.
//
// Errors:
//   - ErrNilChild if child is nil or released.
//   - cell.ErrAlreadyBorrowed if the children list is currently borrowed.
//
// On error the caller keeps ownership of child.
func (n *Node[T]) TryAddChild(child *rc.Handle[Node[T]]) error {
	if child.Released() {
		return ErrNilChild
	}

	w, err := n.children.TryBorrowMut()
	if err != nil {
		return err
	}
	defer w.Release()

	kids := w.Ptr()
	*kids = append(*kids, child)

	return nil
}

// AddChild is TryAddChild that panics on error. A guard conflict here means
// the caller violated the single-writer discipline.
func (n *Node[T]) AddChild(child *rc.Handle[Node[T]]) {
	if err := n.TryAddChild(child); err != nil {
		panic(fmt.Errorf("node: AddChild: %w", err))
	}
}

// Attach appends child to the node behind parent unless that would make
// parent reachable from itself. Ownership of child passes to the parent on
// success and stays with the caller on error.
//
// Complexity: O(V+E) over the subgraph reachable from child.
func Attach[T any](parent, child *rc.Handle[Node[T]]) error {
	if parent.Released() {
		return fmt.Errorf("node: Attach: parent: %w", rc.ErrReleased)
	}
	if child.Released() {
		return fmt.Errorf("node: Attach: %w", ErrNilChild)
	}
	if rc.Same(parent, child) || child.Get().HasDescendant(parent) {
		return fmt.Errorf("node: Attach(%s, %s): %w", parent, child, ErrCycle)
	}
	if err := parent.Get().TryAddChild(child); err != nil {
		return fmt.Errorf("node: Attach: %w", err)
	}

	return nil
}

// OwnedHandles implements rc.Owner: it empties the children list and hands
// the handles to the releasing allocation.
func (n *Node[T]) OwnedHandles() []rc.Releasable {
	return rc.Releasables(n.children.Replace(nil))
}

// Release drops every child handle owned by n. Use it for nodes held by
// value rather than inside a handle; shared nodes are released by dropping
// their last handle.
func (n *Node[T]) Release() {
	rc.Release(n.OwnedHandles()...)
}
