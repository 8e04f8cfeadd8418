// SPDX-License-Identifier: MIT
// Package: rcgraph/builder
//
// impl_layered.go - Layered(layers, width) constructor.
//
// Contract:
//   - layers >= 1 and width >= 1 (else ErrTooFewNodes).
//   - Node 0 is the single bottom leaf. Layer l (1..layers) has width nodes,
//     each owning every node of layer l-1 in index order.
//   - The root owns every node of the top layer.
//   - Distinct nodes: 2 + layers*width. Root-to-leaf paths: width^layers.
//
// Complexity: O(layers*width^2) edges.

package builder

import (
	"github.com/katalvlaran/rcgraph/node"
	"github.com/katalvlaran/rcgraph/rc"
)

const (
	methodLayered = "Layered"
	minLayers     = 1
	minLayerWidth = 1
)

// Layered builds a graph where every layer fully shares the one below.
func Layered[T any](layers, width int, fn ValueFn[T], opts ...BuilderOption) (*Graph[T], error) {
	if err := validateFn(methodLayered, fn); err != nil {
		return nil, err
	}
	if err := validateMin(methodLayered, "layers", layers, minLayers); err != nil {
		return nil, err
	}
	if err := validateMin(methodLayered, "width", width, minLayerWidth); err != nil {
		return nil, err
	}

	b := newGraphBuilder(newBuilderConfig(opts...), fn, 2+layers*width)
	below := []*rc.Handle[node.Node[T]]{b.add()}
	for l := 0; l < layers; l++ {
		layer := make([]*rc.Handle[node.Node[T]], width)
		for i := range layer {
			layer[i] = b.add(below...)
		}
		below = layer
	}
	b.add(below...)

	return b.done(), nil
}
