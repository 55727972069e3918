// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"strata.org/f32"
	"strata.org/layout"
	"strata.org/widget/material"
)

// Icon draws a material.Icon in a square of side Size.
type Icon struct {
	layout.Leaf
	Icon *material.Icon
	Size float32
}

func (ic Icon) Layout(gtx layout.Context, slot *layout.State, cs layout.Constraints) {
	layout.Reuse[layout.Sized](slot).Size = f32.Pt(ic.Size, ic.Size)
}

func (ic Icon) Draw(gtx layout.Context, st layout.State, r f32.Rectangle, layer int, focus bool) {
	th := themeOf(gtx)
	ts := th.Text.Get(material.Normal, true)
	ts.Color = th.Rect.Get(material.Normal, true).Foreground
	material.DrawIcon(gtx.Ops, ic.Icon, ts, r, ic.Size)
}
