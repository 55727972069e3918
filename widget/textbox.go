// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"strata.org/f32"
	"strata.org/io/key"
	"strata.org/io/pointer"
	"strata.org/layout"
	"strata.org/op/clip"
	"strata.org/op/paint"
	"strata.org/text"
	"strata.org/widget/material"
)

// TextBox displays and edits the text of an Editor. The editor is
// reached through the environment, usually in the local state of an
// enclosing Stateful widget.
//
// A press inside the box places the caret and demands focus; dragging
// with the button held extends the selection. Keys reach the editor
// only while the box has focus.
type TextBox struct {
	// Editor returns the edited text.
	Editor func(env *layout.Env) *Editor
	// OnChange is called after every change to the text made
	// through the box.
	OnChange func(env *layout.Env)
	// OnSubmit is called when the editor submits its text.
	OnSubmit func(env *layout.Env, text string)
	// Width is the width of the box when unconstrained. Zero means
	// 100.
	Width    float32
	Disabled bool
}

// TextBoxState is the state of a TextBox.
type TextBoxState struct {
	size   f32.Point
	layout *text.Layout
}

const (
	defaultTextBoxWidth = 100
	caretWidth          = 1
)

func (s *TextBoxState) MinSize() f32.Point { return s.size }

func (s *TextBoxState) ExtraLayers() int { return 0 }

func (tb TextBox) Layout(gtx layout.Context, slot *layout.State, cs layout.Constraints) {
	s := layout.Reuse[TextBoxState](slot)
	s.layout = nil
	ts, rs := tb.styles(gtx, false)
	var dims text.Dimensions
	if ed := tb.editor(gtx); ed != nil && gtx.Shaper != nil {
		opts := text.LayoutOptions{SingleLine: ed.SingleLine}
		if l, err := gtx.Shaper.Layout(ts.Font, ts.Size, ed.Text(), opts); err == nil {
			s.layout = l
			dims = l.Dimensions()
		}
	}
	w := tb.Width
	if w <= 0 {
		w = defaultTextBoxWidth
	}
	pad := 2 * rs.Inset()
	s.size = f32.Pt(cs.X.Fill(w), dims.Size.Y+pad)
}

func (tb TextBox) Draw(gtx layout.Context, st layout.State, r f32.Rectangle, layer int, focus bool) {
	s := layout.StateOf[*TextBoxState](st, tb)
	ts, rs := tb.styles(gtx, focus)
	material.DrawRect(gtx.Ops, rs, r, material.Idle)
	ed := tb.editor(gtx)
	if ed == nil || s.layout == nil {
		return
	}
	content := rs.Content(r)
	defer clip.Rect(r.Inset(rs.Margin + rs.BorderWidth)).Push(gtx.Ops).Pop()
	start, end := ed.Selection()
	caret := ed.Caret()
	y := content.Min.Y
	idx := 0
	var prevDesc float32
	for _, line := range s.layout.Lines {
		top := y + prevDesc
		asc, desc := float32(line.Ascent)/64, float32(line.Descent)/64
		y = top + asc
		prevDesc = desc
		n := len(line.Text.Advances)
		if focus && start < end && start < idx+n && end > idx {
			x0 := line.Text.X(max(start-idx, 0))
			x1 := line.Text.X(min(end-idx, n))
			sel := f32.Rect(content.Min.X+x0, top, content.Min.X+x1, y+desc)
			paint.FillShape(gtx.Ops, ts.Selection, clip.Rect(sel).Op())
		}
		material.DrawLine(gtx.Ops, gtx.Shaper, ts, line.Text, f32.Pt(content.Min.X, y))
		if focus && caret >= idx && (caret < idx+n || caret == idx+n && !endsLine(line)) {
			x := content.Min.X + line.Text.X(caret-idx)
			x = min(x, content.Max.X-caretWidth)
			cr := f32.Rect(x, top, x+caretWidth, y+desc)
			paint.FillShape(gtx.Ops, rs.Foreground, clip.Rect(cr).Op())
		}
		idx += n
	}
}

func (tb TextBox) HitLayer(gtx layout.Context, st layout.State, r f32.Rectangle, pos f32.Point) (int, bool) {
	return 0, r.Contains(pos)
}

func (tb TextBox) Pointer(gtx layout.Context, st layout.State, r f32.Rectangle, layer int, e pointer.Event, focus bool) layout.Result {
	s := layout.StateOf[*TextBoxState](st, tb)
	ed := tb.editor(gtx)
	if ed == nil || tb.Disabled {
		return layout.Result{}
	}
	_, rs := tb.styles(gtx, focus)
	content := rs.Content(r)
	switch e.Kind {
	case pointer.Press:
		if !r.Contains(e.Position) {
			return layout.Result{}
		}
		ed.Click(s.index(content, e.Position), e.Modifiers.Contain(key.ModShift))
		return layout.Result{DemandFocus: true}
	case pointer.Move:
		if gtx.Input.Down.Contain(pointer.ButtonPrimary) {
			ed.Drag(s.index(content, e.Position))
		}
	case pointer.Release:
		ed.Release()
	}
	return layout.Result{}
}

func (tb TextBox) Key(gtx layout.Context, st layout.State, r f32.Rectangle, e key.Event, focus bool) {
	ed := tb.editor(gtx)
	if !focus || ed == nil || tb.Disabled {
		return
	}
	ed.Key(e)
	for _, ev := range ed.Events() {
		switch ev := ev.(type) {
		case ChangeEvent:
			if tb.OnChange != nil {
				tb.OnChange(gtx.Env)
			}
		case SubmitEvent:
			if tb.OnSubmit != nil {
				tb.OnSubmit(gtx.Env, ev.Text)
			}
		}
	}
}

func (tb TextBox) editor(gtx layout.Context) *Editor {
	if tb.Editor == nil {
		return nil
	}
	return tb.Editor(gtx.Env)
}

// styles returns the text and box styles. Focused boxes are drawn
// with the Active variant.
func (tb TextBox) styles(gtx layout.Context, focus bool) (material.TextStyle, material.RectStyle) {
	th := themeOf(gtx)
	v := material.Normal
	if focus {
		v = material.Active
	}
	return th.Text.Get(material.Normal, !tb.Disabled), th.RectOutline.Get(v, !tb.Disabled)
}

// index returns the rune index closest to pos in the text laid out in
// content.
func (s *TextBoxState) index(content f32.Rectangle, pos f32.Point) int {
	if s.layout == nil {
		return 0
	}
	y := content.Min.Y
	idx := 0
	var prevDesc float32
	for i, line := range s.layout.Lines {
		y += prevDesc + float32(line.Ascent)/64
		prevDesc = float32(line.Descent) / 64
		n := len(line.Text.Advances)
		if pos.Y < y+prevDesc || i == len(s.layout.Lines)-1 {
			col := line.Text.Index(pos.X - content.Min.X)
			if endsLine(line) && col >= n {
				col = n - 1
			}
			return idx + col
		}
		idx += n
	}
	return idx
}

// endsLine reports whether line ends with a newline.
func endsLine(line text.Line) bool {
	str := line.Text.String
	return len(str) > 0 && str[len(str)-1] == '\n'
}
