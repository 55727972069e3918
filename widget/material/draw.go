// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"

	"strata.org/f32"
	"strata.org/op"
	"strata.org/op/clip"
	"strata.org/op/paint"
	"strata.org/text"
)

// Interaction is the pointer state of a control.
type Interaction uint8

const (
	Idle Interaction = iota
	Hovered
	Pressed
)

// DrawRect draws the background and border of a control occupying
// r. The margin of st is left empty.
func DrawRect(o *op.Ops, st RectStyle, r f32.Rectangle, in Interaction) {
	r = r.Inset(st.Margin)
	if r.Empty() {
		return
	}
	bg := st.Background
	switch in {
	case Hovered:
		bg = st.Hover
	case Pressed:
		bg = st.Pressed
	}
	paint.FillShape(o, bg, clip.Rect(r).Op())
	if st.BorderWidth > 0 {
		paint.FillShape(o, st.Border, clip.Border{Rect: r, Width: st.BorderWidth}.Op())
	}
}

// Content returns the area inside the margin and padding of a
// control occupying r.
func (st RectStyle) Content(r f32.Rectangle) f32.Rectangle {
	return r.Inset(st.Margin + st.Padding)
}

// Inset returns the total space st adds on each side of the content.
func (st RectStyle) Inset() float32 {
	return st.Margin + st.Padding
}

// DrawText draws the text laid out in l centered in r.
func DrawText(o *op.Ops, s text.Shaper, st TextStyle, r f32.Rectangle, l *text.Layout) {
	if s == nil || l == nil {
		return
	}
	dims := l.Dimensions()
	y := r.Min.Y + (r.Dy()-dims.Size.Y)/2
	var prevDesc float32
	for _, line := range l.Lines {
		y += prevDesc + float32(line.Ascent)/64
		prevDesc = float32(line.Descent) / 64
		x := r.Min.X + text.Align(text.Middle, line.Width, r.Dx())
		DrawLine(o, s, st, line.Text, f32.Pt(x, y))
	}
}

// DrawLine draws str with its baseline starting at dot.
func DrawLine(o *op.Ops, s text.Shaper, st TextStyle, str text.String, dot f32.Point) {
	if s == nil || str.String == "" {
		return
	}
	p, err := s.Shape(st.Font, st.Size, str)
	if err != nil {
		return
	}
	defer op.Offset(dot).Push(o).Pop()
	paint.FillShape(o, st.Color, clip.Outline{Path: p}.Op())
}

// DrawIcon draws ic in the square of side sz centered in r.
func DrawIcon(o *op.Ops, ic *Icon, st TextStyle, r f32.Rectangle, sz float32) {
	if ic == nil {
		return
	}
	img := ic.Image(int(sz), st.Color)
	isz := img.Size()
	if isz == (image.Point{}) {
		return
	}
	dot := r.Min.Add(f32.Pt((r.Dx()-float32(isz.X))/2, (r.Dy()-float32(isz.Y))/2))
	defer op.Offset(dot).Push(o).Pop()
	defer clip.Rect(f32.Rect(0, 0, float32(isz.X), float32(isz.Y))).Push(o).Pop()
	img.Add(o)
	paint.PaintOp{}.Add(o)
}

// DrawCheckmark strokes a check mark in the square of side sz
// centered in r.
func DrawCheckmark(o *op.Ops, st TextStyle, r f32.Rectangle, sz float32) {
	c := r.Min.Add(r.Max).Mul(0.5)
	box := f32.Rect(c.X-sz/2, c.Y-sz/2, c.X+sz/2, c.Y+sz/2).Inset(4)
	w, h := box.Dx(), box.Dy()
	var p clip.Path
	p.Begin()
	p.MoveTo(f32.Pt(box.Min.X, box.Min.Y+h/2))
	p.LineTo(f32.Pt(box.Min.X+w/3, box.Max.Y-h/6))
	p.LineTo(f32.Pt(box.Max.X, box.Min.Y+h/6))
	paint.FillShape(o, st.Color, clip.Stroke{Path: p.End(), Width: 4}.Op())
}
