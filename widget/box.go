// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"strata.org/f32"
	"strata.org/io/key"
	"strata.org/io/pointer"
	"strata.org/layout"
	"strata.org/widget/material"
)

// Box draws the RectOutline style of the theme around a widget. Input
// passes through to the widget.
type Box struct {
	Widget  layout.Widget
	Variant material.Variant
}

func (b Box) Layout(gtx layout.Context, slot *layout.State, cs layout.Constraints) {
	b.inset(gtx).Layout(gtx, slot, cs)
}

func (b Box) Draw(gtx layout.Context, st layout.State, r f32.Rectangle, layer int, focus bool) {
	if layer == 0 {
		material.DrawRect(gtx.Ops, b.style(gtx), r, material.Idle)
	}
	b.inset(gtx).Draw(gtx, st, r, layer, focus)
}

func (b Box) HitLayer(gtx layout.Context, st layout.State, r f32.Rectangle, pos f32.Point) (int, bool) {
	if l, ok := b.inset(gtx).HitLayer(gtx, st, r, pos); ok {
		return l, true
	}
	return 0, r.Contains(pos)
}

func (b Box) Pointer(gtx layout.Context, st layout.State, r f32.Rectangle, layer int, e pointer.Event, focus bool) layout.Result {
	return b.inset(gtx).Pointer(gtx, st, r, layer, e, focus)
}

func (b Box) Key(gtx layout.Context, st layout.State, r f32.Rectangle, e key.Event, focus bool) {
	b.inset(gtx).Key(gtx, st, r, e, focus)
}

func (b Box) inset(gtx layout.Context) layout.Inset {
	return layout.UniformInset(b.style(gtx).Inset(), b.Widget)
}

func (b Box) style(gtx layout.Context) material.RectStyle {
	return themeOf(gtx).RectOutline.Get(b.Variant, true)
}
