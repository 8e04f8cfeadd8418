// SPDX-License-Identifier: MIT
// Package rc_test verifies count arithmetic, identity and release semantics.

package rc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rcgraph/rc"
)

func TestHandle_CloneDropArithmetic(t *testing.T) {
	h := rc.New("payload")
	require.Equal(t, 1, h.StrongCount())

	var kept []*rc.Handle[string]
	for i := 0; i < 4; i++ {
		before := h.StrongCount()
		c := h.Clone()
		assert.Equal(t, before+1, h.StrongCount())
		assert.Equal(t, h.StrongCount(), c.StrongCount(), "clones observe one counter")
		c.Drop()
		assert.Equal(t, before, h.StrongCount())
		kept = append(kept, h.Clone()) // raise the baseline for the next round
	}
	assert.Equal(t, 5, h.StrongCount())
	rc.DropAll(kept)
	assert.Equal(t, 1, h.StrongCount())
}

func TestHandle_DropIsOnce(t *testing.T) {
	tr := rc.NewTracker()
	h := rc.New(1, rc.WithTracker(tr))
	c := h.Clone()

	c.Drop()
	c.Drop() // released handle: no-op
	assert.Equal(t, 1, h.StrongCount())
	assert.True(t, c.Released())
	assert.Equal(t, 0, c.StrongCount())

	h.Drop()
	h.Drop()
	st := tr.Stats()
	assert.Equal(t, 1, st.Allocated)
	assert.Equal(t, 1, st.Freed)
	assert.Equal(t, 0, st.Live)
	assert.Equal(t, 1, st.Clones)
	assert.Equal(t, 1, st.Drops)
}

func TestHandle_SharedStorage(t *testing.T) {
	h := rc.New([]int{1, 2})
	c := h.Clone()

	*c.Get() = append(*c.Get(), 3)
	assert.Equal(t, []int{1, 2, 3}, *h.Get())
	assert.Same(t, h.Get(), c.Get())
}

func TestHandle_Identity(t *testing.T) {
	h := rc.New(7)
	c := h.Clone()
	other := rc.New(7)

	assert.True(t, rc.Same(h, c))
	assert.Equal(t, h.Key(), c.Key())
	assert.False(t, rc.Same(h, other), "equal values, different allocations")
	assert.NotEqual(t, h.Key(), other.Key())

	c.Drop()
	assert.False(t, rc.Same(h, c))
	assert.False(t, rc.Same[int](nil, h))
}

func TestHandle_UseAfterDropPanics(t *testing.T) {
	h := rc.New(1)
	h.Drop()

	assert.PanicsWithError(t, "rc: Get: rc: handle released", func() { h.Get() })
	assert.Panics(t, func() { h.Clone() })
	assert.Panics(t, func() { h.Key() })

	var nilHandle *rc.Handle[int]
	assert.PanicsWithError(t, "rc: Clone: rc: nil handle", func() { nilHandle.Clone() })
	assert.NotPanics(t, func() { nilHandle.Drop() })
}

func TestHandle_CloneAllDropAll(t *testing.T) {
	a, b := rc.New("a"), rc.New("b")
	src := []*rc.Handle[string]{a, b}

	dup := rc.CloneAll(src)
	require.Len(t, dup, 2)
	assert.Equal(t, 2, a.StrongCount())
	assert.Equal(t, 2, b.StrongCount())

	rc.DropAll(dup)
	assert.Equal(t, 1, a.StrongCount())
	assert.Equal(t, 1, b.StrongCount())
	assert.True(t, dup[0].Released())
}

func TestHandle_String(t *testing.T) {
	h := rc.New(1)
	assert.Regexp(t, `^rc\(\d+:1\)$`, h.String())
	h.Drop()
	assert.Equal(t, "rc(released)", h.String())
}
