// Package rcgraph is a toolkit for graphs whose nodes are owned by several
// parents at once, mutated in place while shared, and reclaimed exactly when
// the last owner lets go.
//
// What is in the box?
//
//	• Reference-counted handles: Clone/Drop, strong counts, identity
//	• Runtime borrow checking: many readers or one writer per cell
//	• Shared nodes: children lists of handles, descendant search, DFS walk
//	• Cons lists with shared tails and shared mutable heads
//	• Fixture builders and TOML scenarios for reproducible traces
//
// Packages:
//
//	rc/        - Handle[T], Tracker, iterative release of owned handles
//	cell/      - Cell[T] with Ref/RefMut guards
//	node/      - Node[T], HasDescendant, Walk, Attach
//	list/      - List[T] cons cells
//	builder/   - Chain, Fan, Layered, BinaryTree, RandomDAG
//	scenario/  - TOML scripts and their runner
//
// Quick ASCII example:
//
//	d   e
//	|\ /|
//	| X |
//	|/ \|
//	b   c
//	 \ /
//	  a
//
//	a is owned by b and c, b and c by d and e: every count is 3.
//
// The cmd/rcgraph binary replays that graph:
//
//	go run github.com/katalvlaran/rcgraph/cmd/rcgraph -builtin graph
//
// Nothing here is safe for concurrent use; keep a graph on one goroutine.
package rcgraph
