// SPDX-License-Identifier: MIT
// Package: rcgraph/builder
//
// impl_tree.go - BinaryTree(depth) constructor.
//
// Contract:
//   - 1 <= depth <= 24 (else ErrTooFewNodes / ErrTooManyNodes); depth 1 is
//     a single node.
//   - Built level by level from the leaves: the 2^(depth-1) leaves take the
//     smallest indices, the root the largest. No node is shared.
//
// Complexity: O(2^depth).

package builder

import (
	"github.com/katalvlaran/rcgraph/node"
	"github.com/katalvlaran/rcgraph/rc"
)

const (
	methodBinaryTree = "BinaryTree"
	minTreeDepth     = 1
	maxTreeDepth     = 24
)

// BinaryTree builds a complete binary tree of the given depth.
func BinaryTree[T any](depth int, fn ValueFn[T], opts ...BuilderOption) (*Graph[T], error) {
	if err := validateFn(methodBinaryTree, fn); err != nil {
		return nil, err
	}
	if err := validateMin(methodBinaryTree, "depth", depth, minTreeDepth); err != nil {
		return nil, err
	}
	if err := validateMax(methodBinaryTree, "depth", depth, maxTreeDepth); err != nil {
		return nil, err
	}

	b := newGraphBuilder(newBuilderConfig(opts...), fn, (1<<depth)-1)
	level := make([]*rc.Handle[node.Node[T]], 1<<(depth-1))
	for i := range level {
		level[i] = b.add()
	}
	for len(level) > 1 {
		up := make([]*rc.Handle[node.Node[T]], len(level)/2)
		for i := range up {
			up[i] = b.add(level[2*i], level[2*i+1])
		}
		level = up
	}

	return b.done(), nil
}
