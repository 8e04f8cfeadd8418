// SPDX-License-Identifier: MIT
// Package: rcgraph/node
//
// bfs.go - breadth-first traversal: shortest depth and a parent tree.

package node

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rcgraph/rc"
)

// ErrNotReached is returned by PathTo for a key the traversal never reached.
var ErrNotReached = errors.New("node: key not reached")

// queueItem pairs a handle with its depth and the key it was reached from.
type queueItem[T any] struct {
	h      *rc.Handle[Node[T]]
	depth  int
	parent rc.Key // 0 for root
}

// BreadthFirst visits every node reachable from root in increasing depth,
// each distinct allocation once. Depth holds the shortest edge count from
// root and Parent the breadth-first tree.
//
// It honors WithContext, WithOnVisit and WithMaxDepth; WithOnExit and
// WithRevisit do not apply and are ignored. Released children are skipped.
//
// Complexity: O(V+E) time and O(V) memory.
func BreadthFirst[T any](root *rc.Handle[Node[T]], opts ...WalkOption) (*WalkResult, error) {
	if root.Released() {
		return nil, fmt.Errorf("node: BreadthFirst: root: %w", rc.ErrReleased)
	}

	o := DefaultWalkOptions()
	for _, fn := range opts {
		fn(&o)
	}

	res := &WalkResult{
		Depth:  make(map[rc.Key]int),
		Parent: make(map[rc.Key]rc.Key),
	}
	queue := []queueItem[T]{{h: root}}
	res.Depth[root.Key()] = 0

	var item queueItem[T]
	for len(queue) > 0 {
		if err := o.Ctx.Err(); err != nil {
			return res, err
		}
		item, queue = queue[0], queue[1:]
		k := item.h.Key()

		res.Order = append(res.Order, k)
		res.Visits++
		if o.OnVisit != nil {
			v := Visit{Key: k, Parent: item.parent, Depth: item.depth, Value: item.h.Get().Value()}
			if err := o.OnVisit(v); err != nil {
				return res, fmt.Errorf("node: OnVisit hook for %d: %w", k, err)
			}
		}

		next := item.depth + 1
		if o.MaxDepth >= 0 && next > o.MaxDepth {
			continue
		}
		for _, c := range item.h.Get().Children() {
			if c.Released() {
				continue
			}
			ck := c.Key()
			if _, seen := res.Depth[ck]; seen {
				continue
			}
			res.Depth[ck] = next
			res.Parent[ck] = k
			queue = append(queue, queueItem[T]{h: c, depth: next, parent: k})
		}
	}

	return res, nil
}

// PathTo reconstructs the key path from the traversal root to dest along
// Parent links.
func (r *WalkResult) PathTo(dest rc.Key) ([]rc.Key, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("node: PathTo %d: %w", dest, ErrNotReached)
	}
	path := []rc.Key{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
