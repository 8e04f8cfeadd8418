// SPDX-License-Identifier: MIT
// Package: rcgraph/builder
//
// impl_random_dag.go - RandomDAG(n, p) constructor.
//
// Contract:
//   - n >= 1 (else ErrTooFewNodes); p in [0,1] (else ErrInvalidProbability);
//     RNG required (else ErrNeedRandSource).
//   - Node i owns each node j < i independently with probability p, in
//     ascending j. Node n (the root) owns, in ascending order, every node
//     no other node owns.
//   - Deterministic for a fixed seed.
//
// Complexity: O(n^2) RNG draws.

package builder

import (
	"github.com/katalvlaran/rcgraph/node"
	"github.com/katalvlaran/rcgraph/rc"
)

const (
	methodRandomDAG = "RandomDAG"
	minDAGNodes     = 1
	minProbability  = 0.0
	maxProbability  = 1.0
)

// RandomDAG builds a random acyclic graph of n nodes under one root.
func RandomDAG[T any](n int, p float64, fn ValueFn[T], opts ...BuilderOption) (*Graph[T], error) {
	if err := validateFn(methodRandomDAG, fn); err != nil {
		return nil, err
	}
	if err := validateMin(methodRandomDAG, "n", n, minDAGNodes); err != nil {
		return nil, err
	}
	if err := validateProbability(methodRandomDAG, p); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(methodRandomDAG, ErrNeedRandSource, "use WithSeed or WithRand")
	}

	b := newGraphBuilder(cfg, fn, n+1)
	owned := make([]bool, n)
	var kids []*rc.Handle[node.Node[T]]
	for i := 0; i < n; i++ {
		kids = kids[:0]
		for j := 0; j < i; j++ {
			if cfg.rng.Float64() < p {
				kids = append(kids, b.nodes[j])
				owned[j] = true
			}
		}
		b.add(kids...)
	}

	kids = kids[:0]
	for j, ok := range owned {
		if !ok {
			kids = append(kids, b.nodes[j])
		}
	}
	b.add(kids...)

	return b.done(), nil
}
