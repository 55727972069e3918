// SPDX-License-Identifier: Unlicense OR MIT

package layout_test

import (
	"fmt"

	"strata.org/layout"
)

func ExampleRow() {
	row := layout.Row(
		// A rigid 40x10 child.
		layout.Rigid(layout.Spacer{Width: 40, Height: 10}),
		// A child taking the rest of the width.
		layout.Expanded(layout.Spacer{Height: 20}),
	)
	var st layout.State
	row.Layout(layout.Context{}, &st, layout.Constraints{X: layout.Max(200)})

	fmt.Println(st.MinSize())

	// Output:
	// (200,20)
}

func ExampleUniformInset() {
	in := layout.UniformInset(10, layout.Spacer{Width: 50, Height: 50})
	var st layout.State
	in.Layout(layout.Context{}, &st, layout.Constraints{X: layout.Max(100), Y: layout.Max(100)})

	fmt.Println(st.MinSize())

	// Output:
	// (70,70)
}

func ExampleStateful() {
	counter := layout.Stateful[int]{
		Init: func() int { return 2 },
		Build: func(gtx layout.Context, n *int) layout.Widget {
			return layout.Spacer{Width: float32(*n) * 10, Height: 10}
		},
	}
	var st layout.State
	counter.Layout(layout.Context{}, &st, layout.Constraints{})
	fmt.Println(st.MinSize())

	*st.(*layout.StatefulState[int]).Local() = 5
	counter.Layout(layout.Context{}, &st, layout.Constraints{})
	fmt.Println(st.MinSize())

	// Output:
	// (20,10)
	// (50,10)
}

func ExampleLookup() {
	var clicks int
	env := (*layout.Env)(nil).Push(&clicks).Push("inner")
	if n, ok := layout.Lookup[*int](env); ok {
		*n++
	}
	_, nearest := layout.Local[*int](env)
	fmt.Println(clicks, nearest)

	// Output:
	// 1 false
}
