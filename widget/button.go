// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"strata.org/f32"
	"strata.org/io/key"
	"strata.org/io/pointer"
	"strata.org/layout"
	"strata.org/widget/material"
)

// Button is a clickable rectangle around a widget. It is drawn with
// the Rect style of the theme, highlighted while hovered or pressed.
type Button struct {
	Widget layout.Widget
	// OnClick is called when the primary button is released over
	// the button.
	OnClick  func(env *layout.Env)
	Variant  material.Variant
	Disabled bool
}

// ButtonState is the state of a Button.
type ButtonState struct {
	child layout.State
	size  f32.Point
}

// TextButton returns a Button labeled with txt.
func TextButton(txt string, onClick func(env *layout.Env)) Button {
	return Button{
		Widget:  Label{Text: txt},
		OnClick: onClick,
	}
}

func (s *ButtonState) MinSize() f32.Point { return s.size }

func (s *ButtonState) ExtraLayers() int { return 0 }

func (b Button) Layout(gtx layout.Context, slot *layout.State, cs layout.Constraints) {
	s := layout.Reuse[ButtonState](slot)
	pad := 2 * b.style(gtx).Inset()
	b.Widget.Layout(gtx, &s.child, cs.Shrink(f32.Pt(pad, pad)))
	s.size = s.child.MinSize().Add(f32.Pt(pad, pad))
}

func (b Button) Draw(gtx layout.Context, st layout.State, r f32.Rectangle, layer int, focus bool) {
	s := layout.StateOf[*ButtonState](st, b)
	rs := b.style(gtx)
	material.DrawRect(gtx.Ops, rs, r, interaction(gtx.Input, r, b.Disabled))
	b.Widget.Draw(gtx, s.child, rs.Content(r), 0, focus)
}

func (b Button) HitLayer(gtx layout.Context, st layout.State, r f32.Rectangle, pos f32.Point) (int, bool) {
	return 0, r.Contains(pos)
}

func (b Button) Pointer(gtx layout.Context, st layout.State, r f32.Rectangle, layer int, e pointer.Event, focus bool) layout.Result {
	if b.Disabled || e.Kind != pointer.Release || !r.Contains(e.Position) {
		return layout.Result{}
	}
	if e.Buttons != 0 && !e.Buttons.Contain(pointer.ButtonPrimary) {
		return layout.Result{}
	}
	if b.OnClick != nil {
		b.OnClick(gtx.Env)
	}
	return layout.Result{}
}

func (b Button) Key(gtx layout.Context, st layout.State, r f32.Rectangle, e key.Event, focus bool) {
}

func (b Button) style(gtx layout.Context) material.RectStyle {
	return themeOf(gtx).Rect.Get(b.Variant, !b.Disabled)
}
