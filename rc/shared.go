// SPDX-License-Identifier: MIT
// Package: rcgraph/rc
//
// shared.go - handles to guarded cells.

package rc

import "github.com/katalvlaran/rcgraph/cell"

// NewShared allocates a guarded cell holding v. Every clone of the returned
// handle reads and writes the same cell, so a BorrowMut through one handle is
// immediately visible through the others.
//
// If v owns handles (a node.Node, a list.List), freeing the allocation
// releases them exactly as for New(v).
func NewShared[T any](v T, opts ...Option) *Handle[cell.Cell[T]] {
	return New(cell.New(v), opts...)
}
