// SPDX-License-Identifier: MIT
// Package: rcgraph/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Option constructors validate and panic on meaningless input.
//   - Constructors themselves never panic.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/rcgraph/rc"
)

// BuilderOption customizes a constructor before any node is allocated.
type BuilderOption func(*builderConfig)

// WithTracker records every allocation of the build in t. Panics on nil.
func WithTracker(t *rc.Tracker) BuilderOption {
	if t == nil {
		panic("builder: WithTracker(nil)")
	}
	return func(c *builderConfig) { c.tracker = t }
}

// WithRand provides an explicit RNG for RandomDAG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a deterministic RNG from seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
