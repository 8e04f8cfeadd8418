package list_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rcgraph/cell"
	"github.com/katalvlaran/rcgraph/list"
	"github.com/katalvlaran/rcgraph/rc"
)

type fixture struct {
	tr     *rc.Tracker
	shared *rc.Handle[cell.Cell[int]]
	a, aa  *rc.Handle[list.List[int]]
	b, c   list.List[int]
}

// newFixture builds a = Cons(s, Nil), aa = Cons(s, a), b = Cons(3, aa), c = Cons(4, aa).
func newFixture() *fixture {
	f := &fixture{tr: rc.NewTracker()}
	opt := rc.WithTracker(f.tr)
	f.shared = rc.NewShared(5, opt)
	f.a = rc.New(list.Cons(f.shared.Clone(), rc.New(list.Nil[int](), opt)), opt)
	f.aa = rc.New(list.Cons(f.shared.Clone(), f.a.Clone()), opt)
	f.b = list.Cons(rc.NewShared(3, opt), f.aa.Clone())
	f.c = list.Cons(rc.NewShared(4, opt), f.aa.Clone())

	return f
}

func TestList_Counts(t *testing.T) {
	f := newFixture()

	assert.Equal(t, 2, f.a.StrongCount(), "a and aa")
	assert.Equal(t, 3, f.aa.StrongCount(), "aa, b and c")
	assert.Equal(t, 3, f.shared.StrongCount(), "shared, a and aa")
}

func TestList_SharedMutation(t *testing.T) {
	f := newFixture()
	f.shared.Get().Update(func(v *int) { *v += 10 })

	assert.Equal(t, []int{15}, f.a.Get().Values())
	assert.Equal(t, []int{15, 15}, f.aa.Get().Values())
	assert.Equal(t, []int{3, 15, 15}, f.b.Values())
	assert.Equal(t, "Cons(4, Cons(15, Cons(15, Nil)))", f.c.String())
}

func TestList_DropSequence(t *testing.T) {
	f := newFixture()

	f.b.Release()
	f.c.Release()
	assert.Equal(t, 1, f.aa.StrongCount())

	// a's cell is still owned by aa.
	f.a.Drop()
	assert.Equal(t, 3, f.shared.StrongCount())

	// Freeing aa releases its head and frees the former a cell with it.
	f.aa.Drop()
	assert.Equal(t, 1, f.shared.StrongCount())

	f.shared.Drop()
	assert.Equal(t, 0, f.tr.Live())
}

func TestList_NilAndLen(t *testing.T) {
	empty := list.Nil[string]()
	assert.True(t, empty.IsNil())
	assert.Equal(t, 0, empty.Len())
	assert.Empty(t, empty.Values())
	assert.Equal(t, "Nil", empty.String())
	assert.Nil(t, empty.Head())

	one := list.Cons(rc.NewShared("x"), nil)
	assert.False(t, one.IsNil())
	assert.Equal(t, 1, one.Len())
	assert.Nil(t, one.Tail())
	assert.Equal(t, "Cons(x, Nil)", one.String())
}

func TestList_ConsNilHeadPanics(t *testing.T) {
	assert.PanicsWithError(t, list.ErrNilHead.Error(), func() {
		list.Cons[int](nil, nil)
	})
}

func TestList_LongListTeardown(t *testing.T) {
	tr := rc.NewTracker()
	opt := rc.WithTracker(tr)
	tail := rc.New(list.Nil[int](), opt)
	for i := 0; i < 100000; i++ {
		tail = rc.New(list.Cons(rc.NewShared(i, opt), tail), opt)
	}
	require.Equal(t, 100000, tail.Get().Len())

	tail.Drop()
	assert.Equal(t, 0, tr.Live())
}
