// SPDX-License-Identifier: MIT
// Package: rcgraph/builder
//
// api.go - Graph result type and shared construction helpers.

package builder

import (
	"github.com/katalvlaran/rcgraph/node"
	"github.com/katalvlaran/rcgraph/rc"
)

// ValueFn maps a node's build index to its payload. Indices count from 0 in
// construction order, so leaves get the smallest indices.
type ValueFn[T any] func(i int) T

// Index returns the build index itself; handy for ValueFn[int].
func Index(i int) int { return i }

// Graph is the result of a constructor.
type Graph[T any] struct {
	// Root owns, directly or transitively, every node in Nodes.
	Root *rc.Handle[node.Node[T]]

	// Nodes holds one caller-owned handle per node in build order. The
	// root is the last element.
	Nodes []*rc.Handle[node.Node[T]]
}

// Len reports the number of distinct nodes.
func (g *Graph[T]) Len() int { return len(g.Nodes) }

// Release drops every handle held by g. Nodes still referenced elsewhere
// survive; everything else is freed.
func (g *Graph[T]) Release() {
	rc.DropAll(g.Nodes)
	g.Nodes = nil
	g.Root = nil
}

// graphBuilder accumulates nodes for one constructor run.
type graphBuilder[T any] struct {
	cfg   builderConfig
	fn    ValueFn[T]
	nodes []*rc.Handle[node.Node[T]]
}

func newGraphBuilder[T any](cfg builderConfig, fn ValueFn[T], capacity int) *graphBuilder[T] {
	return &graphBuilder[T]{
		cfg:   cfg,
		fn:    fn,
		nodes: make([]*rc.Handle[node.Node[T]], 0, capacity),
	}
}

// add allocates the next node owning clones of children and returns it.
func (b *graphBuilder[T]) add(children ...*rc.Handle[node.Node[T]]) *rc.Handle[node.Node[T]] {
	n := node.NewWithChildren(b.fn(len(b.nodes)), rc.CloneAll(children))
	h := node.Share(n, b.cfg.rcOptions()...)
	b.nodes = append(b.nodes, h)

	return h
}

// done wraps the accumulated nodes; the last one is the root.
func (b *graphBuilder[T]) done() *Graph[T] {
	return &Graph[T]{
		Root:  b.nodes[len(b.nodes)-1],
		Nodes: b.nodes,
	}
}
