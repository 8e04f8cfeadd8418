package node_test

import (
	"fmt"

	"github.com/katalvlaran/rcgraph/node"
	"github.com/katalvlaran/rcgraph/rc"
)

// Example builds a graph bottom-up where a is shared by b and c, and b and c
// are shared by d and e:
//
//	d   e
//	|\ /|
//	| X |
//	|/ \|
//	b   c
//	 \ /
//	  a
func Example() {
	a := node.Share(node.New(0))
	b := node.Share(node.NewWithChild(1, a.Clone()))
	c := node.Share(node.NewWithChild(2, a.Clone()))

	var d, e node.Node[int]
	{
		children := []*rc.Handle[node.Node[int]]{b.Clone(), c.Clone()}
		d = node.NewWithChildren(3, rc.CloneAll(children))
		e = node.NewWithChildren(4, rc.CloneAll(children))
		rc.DropAll(children)
	}

	fmt.Println("root b", b.Get())
	fmt.Println("root d", &d)
	fmt.Println("strong count for a", a.StrongCount())
	fmt.Println("strong count for b", b.StrongCount())
	fmt.Println("strong count for c", c.StrongCount())

	for _, root := range []*node.Node[int]{&d, &e} {
		for _, child := range root.Children() {
			fmt.Printf("Node %d: strong count for child %d: %d\n", root.Value(), child.Get().Value(), child.StrongCount())
		}
	}
	fmt.Println("e has descendant a:", e.HasDescendant(a))

	// Output:
	// root b Node { value: 1, children: [Node { value: 0, children: [] }] }
	// root d Node { value: 3, children: [Node { value: 1, children: [Node { value: 0, children: [] }] }, Node { value: 2, children: [Node { value: 0, children: [] }] }] }
	// strong count for a 3
	// strong count for b 3
	// strong count for c 3
	// Node 3: strong count for child 1: 3
	// Node 3: strong count for child 2: 3
	// Node 4: strong count for child 1: 3
	// Node 4: strong count for child 2: 3
	// e has descendant a: true
}

// ExampleAttach shows the cycle check that plain AddChild does not perform.
func ExampleAttach() {
	leaf := node.Share(node.New("leaf"))
	root := node.Share(node.NewWithChild("root", leaf.Clone()))

	back := root.Clone()
	if err := node.Attach(leaf, back); err != nil {
		fmt.Println("refused:", err != nil)
		back.Drop()
	}
	fmt.Println("root count:", root.StrongCount())

	// Output:
	// refused: true
	// root count: 1
}
