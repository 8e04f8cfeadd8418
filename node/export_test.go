package node

import "github.com/katalvlaran/rcgraph/rc"

// SearchDescendant exposes searchDescendant to node_test.
func SearchDescendant[T any](n *Node[T], target *rc.Handle[Node[T]]) (bool, int) {
	return n.searchDescendant(target)
}

// ChildrenGuard holds the children list borrowed until released.
func (n *Node[T]) ChildrenGuard() interface{ Release() } {
	return n.children.Borrow()
}
