// SPDX-License-Identifier: MIT
// Package: rcgraph/node
//
// types.go - Node type and sentinel errors.

package node

import (
	"errors"

	"github.com/katalvlaran/rcgraph/cell"
	"github.com/katalvlaran/rcgraph/rc"
)

// Sentinel errors for node operations.
var (
	// ErrNilChild indicates a nil or released child handle.
	ErrNilChild = errors.New("node: nil or released child")

	// ErrCycle indicates that attaching the child would make the parent
	// reachable from itself.
	ErrCycle = errors.New("node: child would close a cycle")
)

// Node is a payload plus an ordered list of owned child handles.
//
// Insertion order of children is preserved and significant for rendering
// and traversal. Duplicate handles to the same child are allowed.
//
// A Node must not be copied once shared; keep it inside an rc.Handle (see
// Share) or address it through a pointer.
type Node[T any] struct {
	value    cell.Cell[T]
	children cell.Cell[[]*rc.Handle[Node[T]]]
}
