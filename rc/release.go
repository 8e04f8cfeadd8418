// SPDX-License-Identifier: MIT
// Package: rcgraph/rc
//
// release.go - dropping handles and iterative teardown of freed payloads.
//
// Contract:
//   - Drop detaches the handle first, then decrements; the same handle value
//     can never decrement twice.
//   - A payload is freed when its count reaches zero: handles reported by
//     Owner.OwnedHandles are pushed on a work stack, the value is zeroed and
//     the tracker records one free.
//   - Owned handles are released in slice order (first child first).
//   - A payload wrapped in a cell.Cell is reached through Inner, so a shared
//     mutable node releases its children like a plain one.

package rc

// Releasable is a handle of any payload type. The interface is sealed: only
// *Handle[T] implements it.
type Releasable interface {
	// detach releases the handle and returns the handles owned by the
	// payload if this release freed it.
	detach() []Releasable
}

// Owner is implemented by payloads that hold handles of their own. When the
// allocation holding the payload is freed, OwnedHandles is called exactly
// once and every returned handle is dropped. Implementations should clear
// their fields so that the handles are not reachable afterwards.
type Owner interface {
	OwnedHandles() []Releasable
}

// Drop releases h. If h was the last handle aliasing its allocation, the
// payload is freed and, transitively, every handle it owned is dropped.
// Dropping a nil or released handle is a no-op.
//
// Complexity: O(1) if other handles survive; otherwise O(size of the freed
// subgraph) time and O(width of the freed subgraph) stack memory.
func (h *Handle[T]) Drop() {
	if h.Released() {
		return
	}
	Release(h)
}

// DropAll drops every handle in hs using a single work stack.
func DropAll[T any](hs []*Handle[T]) {
	Release(Releasables(hs)...)
}

// Releasables converts typed handles to the sealed Releasable form; used by
// Owner implementations.
func Releasables[T any](hs []*Handle[T]) []Releasable {
	out := make([]Releasable, 0, len(hs))
	for _, h := range hs {
		if h != nil {
			out = append(out, h)
		}
	}

	return out
}

// Release drops each handle in order. It is the heterogeneous form of Drop
// used when a payload owns handles of several types.
func Release(rs ...Releasable) {
	// Work stack: pushed in reverse so that pops follow slice order.
	stack := make([]Releasable, 0, len(rs))
	stack = pushReversed(stack, rs)

	var (
		r     Releasable
		owned []Releasable
		n     int
	)
	for len(stack) > 0 {
		n = len(stack) - 1
		r = stack[n]
		stack[n] = nil // let the popped handle go
		stack = stack[:n]

		if r == nil {
			continue
		}
		if owned = r.detach(); len(owned) > 0 {
			stack = pushReversed(stack, owned)
		}
	}
}

func pushReversed(stack, rs []Releasable) []Releasable {
	for i := len(rs) - 1; i >= 0; i-- {
		stack = append(stack, rs[i])
	}

	return stack
}

func (h *Handle[T]) detach() []Releasable {
	if h.Released() {
		return nil
	}
	b := h.b
	h.b = nil

	b.strong--
	if b.strong > 0 {
		b.tracker.drop(b.key, b.strong)
		return nil
	}

	owned := ownedBy(&b.value)
	var zero T
	b.value = zero
	b.tracker.free(b.key)

	return owned
}

// wrapper is implemented by containers such as cell.Cell whose payload may
// own handles of its own.
type wrapper interface {
	Inner() any
}

// ownedBy collects the handles owned by v, looking through wrappers.
func ownedBy(v any) []Releasable {
	for {
		if o, ok := v.(Owner); ok {
			return o.OwnedHandles()
		}
		w, ok := v.(wrapper)
		if !ok {
			return nil
		}
		v = w.Inner()
	}
}
