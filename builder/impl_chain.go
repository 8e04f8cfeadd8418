// SPDX-License-Identifier: MIT
// Package: rcgraph/builder
//
// impl_chain.go - Chain(n) constructor.
//
// Contract:
//   - n >= 1 (else ErrTooFewNodes).
//   - Node 0 is the leaf; node i owns node i-1; node n-1 is the root.
//
// Complexity: O(n) time and memory.

package builder

const (
	methodChain   = "Chain"
	minChainNodes = 1
)

// Chain builds a linked chain of n nodes.
func Chain[T any](n int, fn ValueFn[T], opts ...BuilderOption) (*Graph[T], error) {
	if err := validateFn(methodChain, fn); err != nil {
		return nil, err
	}
	if err := validateMin(methodChain, "n", n, minChainNodes); err != nil {
		return nil, err
	}

	b := newGraphBuilder(newBuilderConfig(opts...), fn, n)
	prev := b.add()
	for i := 1; i < n; i++ {
		prev = b.add(prev)
	}

	return b.done(), nil
}
