// Package list implements an immutable cons list whose tails are shared
// through reference-counted handles and whose heads are shared, guarded
// cells.
//
// Several lists may extend the same tail, and several cells of different
// lists may alias one head cell; mutating that cell through any owner is
// visible in every list containing it:
//
//	shared := rc.NewShared(5)
//	a := rc.New(list.Cons(shared.Clone(), rc.New(list.Nil[int]())))
//	b := list.Cons(rc.NewShared(3), a.Clone())
//	shared.Get().Update(func(v *int) { *v += 10 })
//	b.String() // Cons(3, Cons(15, Nil))
//
// Dropping the last handle to a list cell releases its head and tail; long
// lists are torn down iteratively by package rc.
package list
