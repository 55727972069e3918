// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"strata.org/f32"
	"strata.org/io/key"
	"strata.org/io/pointer"
	"strata.org/layout"
	"strata.org/widget/material"
)

// Checkbox is a button showing a check mark when Checked.
type Checkbox struct {
	Checked bool
	OnClick func(env *layout.Env)
	// Icons draws the check box icons of the theme instead of a
	// bare check mark.
	Icons    bool
	Disabled bool
}

// Checkmark is a fixed size widget showing a check mark.
type Checkmark struct {
	layout.Leaf
	Size float32
}

const checkboxSize = 16

func (c Checkbox) Layout(gtx layout.Context, slot *layout.State, cs layout.Constraints) {
	c.button(gtx).Layout(gtx, slot, cs)
}

func (c Checkbox) Draw(gtx layout.Context, st layout.State, r f32.Rectangle, layer int, focus bool) {
	c.button(gtx).Draw(gtx, st, r, layer, focus)
}

func (c Checkbox) HitLayer(gtx layout.Context, st layout.State, r f32.Rectangle, pos f32.Point) (int, bool) {
	return c.button(gtx).HitLayer(gtx, st, r, pos)
}

func (c Checkbox) Pointer(gtx layout.Context, st layout.State, r f32.Rectangle, layer int, e pointer.Event, focus bool) layout.Result {
	return c.button(gtx).Pointer(gtx, st, r, layer, e, focus)
}

func (c Checkbox) Key(gtx layout.Context, st layout.State, r f32.Rectangle, e key.Event, focus bool) {
}

func (c Checkbox) button(gtx layout.Context) Button {
	var mark layout.Widget
	switch {
	case c.Icons:
		ic := themeOf(gtx).Icon.CheckBoxUnchecked
		if c.Checked {
			ic = themeOf(gtx).Icon.CheckBoxChecked
		}
		mark = Icon{Icon: ic, Size: checkboxSize}
	case c.Checked:
		mark = Checkmark{Size: checkboxSize}
	default:
		mark = layout.Spacer{Width: checkboxSize, Height: checkboxSize}
	}
	return Button{Widget: mark, OnClick: c.OnClick, Disabled: c.Disabled}
}

func (c Checkmark) Layout(gtx layout.Context, slot *layout.State, cs layout.Constraints) {
	layout.Reuse[layout.Sized](slot).Size = f32.Pt(c.Size, c.Size)
}

func (c Checkmark) Draw(gtx layout.Context, st layout.State, r f32.Rectangle, layer int, focus bool) {
	th := themeOf(gtx)
	ts := th.Text.Get(material.Normal, true)
	ts.Color = th.Rect.Get(material.Normal, true).Foreground
	material.DrawCheckmark(gtx.Ops, ts, r, c.Size)
}
