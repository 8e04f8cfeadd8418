package cell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rcgraph/cell"
)

func TestCell_ManyReaders(t *testing.T) {
	c := cell.New(5)
	r1 := c.Borrow()
	r2 := c.Borrow()

	assert.Equal(t, cell.Reading, c.State())
	assert.Equal(t, 2, c.Readers())
	assert.Equal(t, 5, r1.Get())
	assert.Equal(t, 5, r2.Get())

	_, err := c.TryBorrowMut()
	assert.ErrorIs(t, err, cell.ErrAlreadyBorrowed)

	r1.Release()
	r2.Release()
	assert.Equal(t, cell.Unused, c.State())
}

func TestCell_SingleWriter(t *testing.T) {
	c := cell.New("a")
	w := c.BorrowMut()
	assert.Equal(t, cell.Writing, c.State())
	assert.Equal(t, 0, c.Readers())

	_, err := c.TryBorrow()
	assert.ErrorIs(t, err, cell.ErrAlreadyMutablyBorrowed)
	_, err = c.TryBorrowMut()
	assert.ErrorIs(t, err, cell.ErrAlreadyBorrowed)

	w.Set("b")
	*w.Ptr() += "c"
	assert.Equal(t, "bc", w.Get())
	w.Release()

	assert.Equal(t, "bc", c.Get())
}

func TestCell_ConflictPanics(t *testing.T) {
	c := cell.New(1)
	w := c.BorrowMut()

	assert.PanicsWithError(t, "cell: Borrow: cell: already mutably borrowed", func() { c.Borrow() })
	assert.PanicsWithError(t, "cell: BorrowMut: cell: already borrowed", func() { c.BorrowMut() })
	assert.Panics(t, func() { c.Set(2) })
	w.Release()

	r := c.Borrow()
	assert.Panics(t, func() { c.Update(func(v *int) { *v++ }) })
	r.Release()
}

func TestCell_ReleaseIsIdempotent(t *testing.T) {
	c := cell.New(1)
	r := c.Borrow()
	r.Release()
	r.Release()
	assert.Equal(t, cell.Unused, c.State())

	w := c.BorrowMut()
	w.Release()
	w.Release()
	assert.Equal(t, cell.Unused, c.State())

	assert.PanicsWithError(t, "cell: Ref.Get: cell: guard released", func() { r.Get() })
	assert.PanicsWithError(t, "cell: RefMut.Ptr: cell: guard released", func() { w.Ptr() })
}

func TestCell_ScopedHelpers(t *testing.T) {
	c := cell.New(10)

	c.Update(func(v *int) { *v += 5 })
	assert.Equal(t, 15, c.Get())

	old := c.Replace(1)
	assert.Equal(t, 15, old)

	c.Set(2)
	var seen int
	c.Read(func(v int) { seen = v })
	assert.Equal(t, 2, seen)
	assert.Equal(t, cell.Unused, c.State())
}

func TestCell_UpdateReleasesOnPanic(t *testing.T) {
	c := cell.New(0)
	require.Panics(t, func() {
		c.Update(func(v *int) { panic("boom") })
	})
	assert.Equal(t, cell.Unused, c.State())
}

func TestCell_InnerIgnoresGuards(t *testing.T) {
	c := cell.New(3)
	w := c.BorrowMut()
	defer w.Release()

	p, ok := c.Inner().(*int)
	require.True(t, ok)
	assert.Equal(t, 3, *p)
	assert.Equal(t, cell.Writing, c.State())
}

func TestCell_String(t *testing.T) {
	c := cell.New(15)
	assert.Equal(t, "15", c.String())

	w := c.BorrowMut()
	assert.Equal(t, "<borrowed>", c.String())
	w.Release()

	assert.Equal(t, "reading", cell.Reading.String())
	assert.Equal(t, "BorrowState(7)", cell.BorrowState(7).String())
}
