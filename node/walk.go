// SPDX-License-Identifier: MIT
// Package: rcgraph/node
//
// walk.go - depth-first traversal over a shared node graph.
//
// Contract:
//   - Iterative (explicit frame stack); depth of the graph does not grow the
//     Go call stack.
//   - Children are explored in insertion order; Order is post-order.
//   - By default each allocation is expanded once. WithRevisit expands a
//     shared subtree once per path reaching it, which matches the plain
//     recursive walk and may be exponential on heavily shared graphs. Combine
//     it with WithMaxDepth if the graph may contain an AddChild cycle.
//   - Hooks returning an error abort the walk; Order is cleared.

package node

import (
	"context"
	"fmt"

	"github.com/katalvlaran/rcgraph/rc"
)

// Visit describes one node as seen by a walk hook.
type Visit struct {
	Key    rc.Key // allocation identity
	Parent rc.Key // 0 for the root
	Depth  int    // edges from the root
	Value  any    // payload snapshot
}

// WalkOption configures Walk.
type WalkOption func(*WalkOptions)

// WalkOptions holds the resolved walk configuration.
type WalkOptions struct {
	// Ctx allows cancellation; checked before each node is expanded.
	Ctx context.Context

	// OnVisit is called in pre-order. An error aborts the walk.
	OnVisit func(v Visit) error

	// OnExit is called in post-order, before the node is appended to Order.
	OnExit func(v Visit) error

	// MaxDepth, if non-negative, stops expansion below that depth. 0 visits
	// only the root.
	MaxDepth int

	// Revisit expands shared nodes once per path instead of once per walk.
	Revisit bool
}

// DefaultWalkOptions returns background context, no hooks, unlimited depth.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) WalkOption {
	return func(o *WalkOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(v Visit) error) WalkOption {
	return func(o *WalkOptions) { o.OnVisit = fn }
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(v Visit) error) WalkOption {
	return func(o *WalkOptions) { o.OnExit = fn }
}

// WithMaxDepth limits expansion depth.
func WithMaxDepth(limit int) WalkOption {
	return func(o *WalkOptions) { o.MaxDepth = limit }
}

// WithRevisit expands a shared node once per path reaching it.
func WithRevisit() WalkOption {
	return func(o *WalkOptions) { o.Revisit = true }
}

// WalkResult captures the outcome of Walk or BreadthFirst.
type WalkResult struct {
	// Order lists keys in finish (post-order) sequence for Walk and in
	// visit sequence for BreadthFirst. With WithRevisit a shared key appears
	// once per path.
	Order []rc.Key

	// Depth maps each key to the depth at which it was first reached.
	Depth map[rc.Key]int

	// Parent maps each non-root key to the key it was first reached from.
	Parent map[rc.Key]rc.Key

	// Visits counts pre-order visits, including repeats under WithRevisit.
	Visits int
}

// Distinct reports how many different allocations were reached.
func (r *WalkResult) Distinct() int { return len(r.Depth) }

type frame[T any] struct {
	h        *rc.Handle[Node[T]]
	parent   rc.Key
	depth    int
	expanded bool
}

// Walk traverses the graph below root depth-first.
//
// Errors:
//   - rc.ErrReleased if root is nil or released.
//   - ctx.Err() on cancellation.
//   - hook errors, wrapped with the node key.
//
// Complexity: O(V+E) time and O(V) memory; see WithRevisit.
func Walk[T any](root *rc.Handle[Node[T]], opts ...WalkOption) (*WalkResult, error) {
	if root.Released() {
		return nil, fmt.Errorf("node: Walk: root: %w", rc.ErrReleased)
	}

	o := DefaultWalkOptions()
	for _, fn := range opts {
		fn(&o)
	}

	res := &WalkResult{
		Depth:  make(map[rc.Key]int),
		Parent: make(map[rc.Key]rc.Key),
	}
	expanded := make(map[rc.Key]struct{})
	stack := []frame[T]{{h: root}}

	var (
		f   *frame[T]
		k   rc.Key
		v   Visit
		err error
	)
	for len(stack) > 0 {
		f = &stack[len(stack)-1]
		k = f.h.Key()

		if f.expanded {
			v = visitOf(f)
			stack = stack[:len(stack)-1]
			if o.OnExit != nil {
				if err = o.OnExit(v); err != nil {
					res.Order = nil
					return res, fmt.Errorf("node: OnExit hook for %d: %w", k, err)
				}
			}
			res.Order = append(res.Order, k)
			continue
		}

		if err = o.Ctx.Err(); err != nil {
			return res, err
		}
		if _, seen := expanded[k]; seen && !o.Revisit {
			stack = stack[:len(stack)-1]
			continue
		}
		expanded[k] = struct{}{}
		f.expanded = true

		if _, known := res.Depth[k]; !known {
			res.Depth[k] = f.depth
			if f.parent != 0 {
				res.Parent[k] = f.parent
			}
		}
		res.Visits++

		if o.OnVisit != nil {
			if err = o.OnVisit(visitOf(f)); err != nil {
				res.Order = nil
				return res, fmt.Errorf("node: OnVisit hook for %d: %w", k, err)
			}
		}

		if o.MaxDepth >= 0 && f.depth >= o.MaxDepth {
			continue
		}
		// f may be invalidated by append; copy what the children need first.
		depth := f.depth + 1
		kids := f.h.Get().Children()
		for i := len(kids) - 1; i >= 0; i-- {
			if kids[i].Released() {
				continue
			}
			stack = append(stack, frame[T]{h: kids[i], parent: k, depth: depth})
		}
	}

	return res, nil
}

func visitOf[T any](f *frame[T]) Visit {
	return Visit{
		Key:    f.h.Key(),
		Parent: f.parent,
		Depth:  f.depth,
		Value:  f.h.Get().Value(),
	}
}
