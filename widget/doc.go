// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements common user interface controls. Widgets
// are layout.Widget values configured by their fields; what they
// remember between frames lives in their layout.State. The
// widget/material package implements drawing of widgets.
//
// Callbacks such as Button.OnClick receive the environment of the
// widget, through which they reach the local state of the enclosing
// layout.Stateful widgets:
//
//	layout.Stateful[int]{
//		Build: func(gtx layout.Context, count *int) layout.Widget {
//			return widget.TextButton("+1", func(env *layout.Env) {
//				n, _ := layout.Local[*int](env)
//				*n++
//			})
//		},
//	}
package widget
