// SPDX-License-Identifier: MIT
// Package: rcgraph/node
//
// format.go - debug rendering of a node subtree.

package node

import (
	"fmt"
	"strings"
)

// String renders the node and its subtree as
//
//	Node { value: 1, children: [Node { value: 0, children: [] }] }
//
// A shared child is rendered in full under every parent that owns it.
func (n *Node[T]) String() string {
	var sb strings.Builder
	n.format(&sb)

	return sb.String()
}

func (n *Node[T]) format(sb *strings.Builder) {
	sb.WriteString("Node { value: ")
	sb.WriteString(n.value.String())
	sb.WriteString(", children: [")
	for i, h := range n.Children() {
		if i > 0 {
			sb.WriteString(", ")
		}
		if h.Released() {
			sb.WriteString("<released>")
			continue
		}
		h.Get().format(sb)
	}
	sb.WriteString("] }")
}

// GoString implements fmt.GoStringer so %#v prints the same tree.
func (n *Node[T]) GoString() string {
	return fmt.Sprintf("node.Node%s", strings.TrimPrefix(n.String(), "Node"))
}
