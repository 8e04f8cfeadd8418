// SPDX-License-Identifier: MIT
// Package: rcgraph/rc
//
// tracker.go - allocation bookkeeping with zerolog trace events.

package rc

import "github.com/rs/zerolog"

// Tracker counts allocation events for the handles created with
// WithTracker. A nil *Tracker accepts every event and records nothing.
//
// Tracker is not safe for concurrent use.
type Tracker struct {
	log zerolog.Logger

	allocated int
	freed     int
	clones    int
	drops     int
}

// TrackerStats is a snapshot of a Tracker.
type TrackerStats struct {
	Allocated int // allocations created
	Freed     int // allocations whose count reached zero
	Live      int // Allocated - Freed
	Clones    int // Clone calls
	Drops     int // Drop calls that left the count positive
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithLogger sends alloc/free events at debug level and clone/drop events
// at trace level to l.
func WithLogger(l zerolog.Logger) TrackerOption {
	return func(t *Tracker) { t.log = l }
}

// NewTracker returns an empty Tracker. Without WithLogger it is silent.
func NewTracker(opts ...TrackerOption) *Tracker {
	t := &Tracker{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Live reports allocations not yet freed.
func (t *Tracker) Live() int {
	if t == nil {
		return 0
	}

	return t.allocated - t.freed
}

// Stats returns a snapshot of every counter.
func (t *Tracker) Stats() TrackerStats {
	if t == nil {
		return TrackerStats{}
	}

	return TrackerStats{
		Allocated: t.allocated,
		Freed:     t.freed,
		Live:      t.allocated - t.freed,
		Clones:    t.clones,
		Drops:     t.drops,
	}
}

func (t *Tracker) alloc(k Key, typ string) {
	if t == nil {
		return
	}
	t.allocated++
	t.log.Debug().Uint64("key", uint64(k)).Str("type", typ).Int("live", t.Live()).Msg("rc alloc")
}

func (t *Tracker) clone(k Key, strong int) {
	if t == nil {
		return
	}
	t.clones++
	t.log.Trace().Uint64("key", uint64(k)).Int("strong", strong).Msg("rc clone")
}

func (t *Tracker) drop(k Key, strong int) {
	if t == nil {
		return
	}
	t.drops++
	t.log.Trace().Uint64("key", uint64(k)).Int("strong", strong).Msg("rc drop")
}

func (t *Tracker) free(k Key) {
	if t == nil {
		return
	}
	t.freed++
	t.log.Debug().Uint64("key", uint64(k)).Int("live", t.Live()).Msg("rc free")
}
