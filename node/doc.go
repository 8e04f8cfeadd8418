// Package node implements a generic graph node whose children are
// reference-counted handles, so one child may be owned by many parents.
//
// What:
//
//   - Node[T]: a value guarded by a cell.Cell plus an ordered list of owned
//     child handles (*rc.Handle[Node[T]]), itself behind a guard.
//   - Construction is bottom-up: leaves first, then parents that take
//     ownership of handles to already-built children. Because children
//     always exist before their parents, the constructors cannot form a
//     cycle.
//   - HasDescendant: identity-based containment check over the reachable
//     subgraph (iterative DFS, visited set keyed by rc.Key, short-circuit).
//   - Walk: depth-first traversal with hooks, depth limit and cancellation.
//   - BreadthFirst: level-order traversal giving shortest depths and a
//     parent tree; WalkResult.PathTo rebuilds a path from it.
//   - String: nested debug rendering; shared subtrees are printed once per
//     occurrence.
//
// Ownership (sharp edge):
//
//	NewWithChild, NewWithChildren, AddChild and Attach take ownership of the
//	handles they are given; nothing is cloned for you. To keep your own
//	reference, clone first:
//
//		kids := []*rc.Handle[node.Node[int]]{b.Clone(), c.Clone()}
//		d := node.NewWithChildren(3, rc.CloneAll(kids)) // kids still yours
//		rc.DropAll(kids)
//
// Children() returns borrowed handles: clone one to keep it, never Drop it.
//
// Mutation:
//
//   - Value updates go through the value guard (Update, SetValue, Cell).
//   - AddChild requires the children guard; it panics if the list is
//     currently borrowed, TryAddChild returns the error instead.
//   - Attach additionally refuses a child that would close a cycle
//     (ErrCycle). Plain AddChild does not check: a cycle built that way is
//     never freed, although HasDescendant, Walk and BreadthFirst still terminate.
//
// Errors:
//
//	ErrNilChild    - nil or released child handle
//	ErrCycle       - Attach would make the parent its own descendant
//	ErrNotReached  - PathTo for a key the traversal did not reach
//	rc.ErrReleased - parent or root handle already dropped
//	cell.ErrAlreadyBorrowed, cell.ErrAlreadyMutablyBorrowed - guard conflicts
//
// Concurrency: none; a graph belongs to one goroutine.
package node
