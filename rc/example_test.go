package rc_test

import (
	"fmt"

	"github.com/katalvlaran/rcgraph/rc"
)

func ExampleHandle_Clone() {
	h := rc.New("shared")
	fmt.Println(h.StrongCount())

	c := h.Clone()
	fmt.Println(h.StrongCount(), rc.Same(h, c))

	c.Drop()
	fmt.Println(h.StrongCount(), c.Released())

	// Output:
	// 1
	// 2 true
	// 1 true
}

func ExampleTracker() {
	tr := rc.NewTracker()
	h := rc.New(42, rc.WithTracker(tr))
	h.Clone().Drop()
	h.Drop()

	st := tr.Stats()
	fmt.Println(st.Allocated, st.Freed, st.Live)

	// Output:
	// 1 1 0
}
