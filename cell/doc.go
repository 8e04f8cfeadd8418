// Package cell implements a runtime-checked mutation guard for values that
// are reachable through several owners at once.
//
// A Cell enforces single-writer / multi-reader discipline dynamically:
//
//	c := cell.New(5)
//	w := c.BorrowMut()   // exclusive
//	*w.Ptr() += 10
//	w.Release()
//	r := c.Borrow()      // shared; any number may coexist
//	fmt.Println(r.Get()) // 15
//	r.Release()
//
// Borrow while a writer is outstanding, or BorrowMut while any guard is
// outstanding, is a contract violation: Borrow and BorrowMut panic with an
// error wrapping ErrAlreadyMutablyBorrowed or ErrAlreadyBorrowed. TryBorrow
// and TryBorrowMut report the same conditions as errors.
//
// Guards are released explicitly (usually with defer). The scoped helpers
// Get, Set, Replace, Update and Read acquire and release a guard around a
// single access and are the preferred API when a guard need not escape.
//
// A Cell must not be copied after first use. It is not safe for concurrent
// use.
package cell
