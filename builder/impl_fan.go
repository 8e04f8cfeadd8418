// SPDX-License-Identifier: MIT
// Package: rcgraph/builder
//
// impl_fan.go - Fan(width) constructor.
//
// Contract:
//   - width >= 1 (else ErrTooFewNodes).
//   - Node 0 is a leaf owned by each of nodes 1..width; node width+1 is the
//     root owning nodes 1..width in order.
//   - After Release of every handle but the leaf's, the leaf count is 1.
//
// Complexity: O(width).

package builder

import (
	"github.com/katalvlaran/rcgraph/node"
	"github.com/katalvlaran/rcgraph/rc"
)

const (
	methodFan   = "Fan"
	minFanWidth = 1
)

// Fan builds one leaf shared by width parents under a single root.
func Fan[T any](width int, fn ValueFn[T], opts ...BuilderOption) (*Graph[T], error) {
	if err := validateFn(methodFan, fn); err != nil {
		return nil, err
	}
	if err := validateMin(methodFan, "width", width, minFanWidth); err != nil {
		return nil, err
	}

	b := newGraphBuilder(newBuilderConfig(opts...), fn, width+2)
	leaf := b.add()
	parents := make([]*rc.Handle[node.Node[T]], width)
	for i := range parents {
		parents[i] = b.add(leaf)
	}
	b.add(parents...)

	return b.done(), nil
}
