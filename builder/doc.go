// Package builder provides deterministic constructors for shared node
// graphs, used as fixtures by tests, benchmarks and the rcgraph CLI.
//
// Every constructor builds bottom-up (children before parents), so the
// result is acyclic by construction, and returns a Graph holding one handle
// to every node in build order plus the Root. Release drops those handles;
// afterwards every allocation is freed (verify with WithTracker).
//
// Constructors:
//
//   - Chain(n, fn):           n nodes, node i owns node i-1. Depth n.
//   - Fan(width, fn):         one leaf shared by width parents, one root.
//   - Layered(layers, width): every node of a layer owns every node of the
//     layer below; width^layers root-to-leaf paths over 2+layers*width nodes.
//   - BinaryTree(depth, fn):  complete binary tree, no sharing.
//   - RandomDAG(n, p, fn):    node i owns each earlier node with probability
//     p; the root owns every node nobody else owns. Needs WithSeed/WithRand.
//
// Options (BuilderOption):
//
//   - WithTracker(t):   record every allocation in t.
//   - WithSeed(seed):   deterministic RNG for RandomDAG.
//   - WithRand(r):      explicit RNG for RandomDAG.
//
// Errors:
//
//	ErrTooFewNodes        - size parameter below its minimum
//	ErrTooManyNodes       - size parameter above its maximum
//	ErrInvalidProbability - p outside [0,1]
//	ErrNeedRandSource     - RandomDAG without an RNG
//	ErrNilValueFn         - nil ValueFn
//
// Option constructors panic on meaningless input (nil tracker, nil RNG);
// constructors themselves never panic.
package builder
