// Package scenario runs scripted build, clone, drop, mutate and expect
// sequences against shared int64 node graphs.
//
// A scenario is a TOML document:
//
//	name = "graph"
//	description = "a shared by b and c"
//
//	[[step]]
//	op = "node"
//	name = "a"
//	value = 0
//
//	[[step]]
//	op = "node"
//	name = "b"
//	value = 1
//	children = ["a"]       # each child is cloned into the new node
//
//	[[step]]
//	op = "expect_count"
//	target = "a"
//	value = 2
//
// Names bind handles. Every op reads or changes those bindings:
//
//	node              name, value, children    allocate a node
//	clone             target, name             bind a clone of target
//	drop              target                   drop and unbind target
//	add               target, child            unchecked add_child (clone of child)
//	attach            target, child[, want]    cycle-checked add_child; want=false expects refusal
//	set               target, value            overwrite the payload
//	expect_count      target, value            strong count
//	expect_value      target, value            payload
//	expect_descendant target, of[, want]       of reaches target (want defaults to true)
//	expect_depth      target, of, value        shortest edge count from of to target
//	expect_live       value                    live allocations in the run's tracker
//	print             target[, label]          render the subtree
//	print_count       target[, label]          print the strong count
//	print_children    target                   print each child's strong count
//
// When the last step has run, every binding is dropped in name order. The
// run then fails with ErrLeak if any allocation is still live, which is
// what an unchecked add that closes a cycle produces.
package scenario
