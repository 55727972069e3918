// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"strata.org/f32"
	"strata.org/io/key"
	"strata.org/io/pointer"
)

// Inset adds space around a widget.
type Inset struct {
	Top, Bottom, Left, Right float32
	Widget                   Widget
}

// InsetState is the state of an Inset.
type InsetState struct {
	child State
	pad   f32.Point
}

// UniformInset returns an Inset with a single inset applied to all
// edges.
func UniformInset(v float32, w Widget) Inset {
	return Inset{Top: v, Right: v, Bottom: v, Left: v, Widget: w}
}

func (s *InsetState) MinSize() f32.Point {
	if s.child == nil {
		return s.pad
	}
	return s.child.MinSize().Add(s.pad)
}

func (s *InsetState) ExtraLayers() int {
	if s.child == nil {
		return 0
	}
	return s.child.ExtraLayers()
}

func (in Inset) Layout(gtx Context, slot *State, cs Constraints) {
	s := Reuse[InsetState](slot)
	s.pad = f32.Pt(in.Left+in.Right, in.Top+in.Bottom)
	in.Widget.Layout(gtx, &s.child, cs.Shrink(s.pad))
}

func (in Inset) Draw(gtx Context, st State, r f32.Rectangle, layer int, focus bool) {
	s := StateOf[*InsetState](st, in)
	in.Widget.Draw(gtx, s.child, in.rect(r), layer, focus)
}

func (in Inset) HitLayer(gtx Context, st State, r f32.Rectangle, pos f32.Point) (int, bool) {
	s := StateOf[*InsetState](st, in)
	return in.Widget.HitLayer(gtx, s.child, in.rect(r), pos)
}

func (in Inset) Pointer(gtx Context, st State, r f32.Rectangle, layer int, e pointer.Event, focus bool) Result {
	s := StateOf[*InsetState](st, in)
	return in.Widget.Pointer(gtx, s.child, in.rect(r), layer, e, focus)
}

func (in Inset) Key(gtx Context, st State, r f32.Rectangle, e key.Event, focus bool) {
	s := StateOf[*InsetState](st, in)
	in.Widget.Key(gtx, s.child, in.rect(r), e, focus)
}

func (in Inset) rect(r f32.Rectangle) f32.Rectangle {
	r.Min = r.Min.Add(f32.Pt(in.Left, in.Top))
	r.Max = r.Max.Sub(f32.Pt(in.Right, in.Bottom))
	return r.Canon()
}
