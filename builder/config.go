// SPDX-License-Identifier: MIT
// Package: rcgraph/builder
//
// config.go - internal configuration resolved from BuilderOption values.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/rcgraph/rc"
)

// builderConfig aggregates the knobs used by constructors. It is passed by
// value; constructors never mutate it.
type builderConfig struct {
	// tracker records allocations; nil means untracked.
	tracker *rc.Tracker
	// rng drives RandomDAG; nil means "no randomness available".
	rng *rand.Rand
}

// newBuilderConfig applies opts in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rcOptions returns the rc options every allocation of this build uses.
func (c builderConfig) rcOptions() []rc.Option {
	if c.tracker == nil {
		return nil
	}

	return []rc.Option{rc.WithTracker(c.tracker)}
}
