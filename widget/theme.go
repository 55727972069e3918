// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"sync"

	"strata.org/f32"
	"strata.org/io/input"
	"strata.org/layout"
	"strata.org/widget/material"
)

var defaultTheme struct {
	once sync.Once
	th   *material.Theme
}

// themeOf returns the theme of gtx, or the default theme if gtx has
// none.
func themeOf(gtx layout.Context) *material.Theme {
	if gtx.Theme != nil {
		return gtx.Theme
	}
	defaultTheme.once.Do(func() {
		defaultTheme.th = material.NewTheme()
	})
	return defaultTheme.th
}

// interaction returns the pointer state of a control occupying r.
func interaction(in input.State, r f32.Rectangle, disabled bool) material.Interaction {
	switch {
	case disabled:
		return material.Idle
	case in.Pressing(r):
		return material.Pressed
	case in.Hovering(r):
		return material.Hovered
	default:
		return material.Idle
	}
}
