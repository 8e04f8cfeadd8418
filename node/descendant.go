// SPDX-License-Identifier: MIT
// Package: rcgraph/node
//
// descendant.go - identity-based descendant search.

package node

import "github.com/katalvlaran/rcgraph/rc"

// HasDescendant reports whether target is identical (same allocation) to one
// of n's children or to a descendant of one of them.
//
// A node is never its own descendant unless a cycle was built with AddChild.
// The search is an iterative depth-first walk in child order that stops at
// the first match; each distinct node is expanded at most once, so heavy
// sharing does not make it exponential.
//
// Complexity: O(V+E) over the subgraph reachable from n.
func (n *Node[T]) HasDescendant(target *rc.Handle[Node[T]]) bool {
	found, _ := n.searchDescendant(target)

	return found
}

// searchDescendant also reports how many distinct nodes were expanded.
func (n *Node[T]) searchDescendant(target *rc.Handle[Node[T]]) (bool, int) {
	if target.Released() {
		return false, 0
	}
	want := target.Key()

	var (
		stack   = pushChildren(nil, n)
		visited = make(map[rc.Key]struct{})
		h       *rc.Handle[Node[T]]
		k       rc.Key
		top     int
	)
	for len(stack) > 0 {
		top = len(stack) - 1
		h = stack[top]
		stack = stack[:top]

		if h.Released() {
			continue
		}
		if k = h.Key(); k == want {
			return true, len(visited)
		}
		if _, seen := visited[k]; seen {
			continue
		}
		visited[k] = struct{}{}
		stack = pushChildren(stack, h.Get())
	}

	return false, len(visited)
}

// pushChildren pushes n's children in reverse so that pops follow insertion order.
func pushChildren[T any](stack []*rc.Handle[Node[T]], n *Node[T]) []*rc.Handle[Node[T]] {
	r := n.children.Borrow()
	defer r.Release()

	kids := r.Get()
	for i := len(kids) - 1; i >= 0; i-- {
		stack = append(stack, kids[i])
	}

	return stack
}
