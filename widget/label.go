// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"strata.org/f32"
	"strata.org/layout"
	"strata.org/text"
	"strata.org/widget/material"
)

// Label is a widget for laying out and drawing text. The text is
// centered in the rectangle of the label.
type Label struct {
	layout.Leaf
	Text    string
	Variant material.Variant
	// Disabled selects the disabled text style.
	Disabled bool
}

// LabelState is the state of a Label.
type LabelState struct {
	size   f32.Point
	layout *text.Layout
}

func (s *LabelState) MinSize() f32.Point { return s.size }

func (s *LabelState) ExtraLayers() int { return 0 }

func (l Label) Layout(gtx layout.Context, slot *layout.State, cs layout.Constraints) {
	s := layout.Reuse[LabelState](slot)
	s.layout = nil
	var dims text.Dimensions
	if gtx.Shaper != nil {
		st := l.style(gtx)
		// A label that can't be shaped measures as zero.
		if tl, err := gtx.Shaper.Layout(st.Font, st.Size, l.Text, text.LayoutOptions{}); err == nil {
			s.layout = tl
			dims = tl.Dimensions()
		}
	}
	s.size = cs.Fill(dims.Size)
}

func (l Label) Draw(gtx layout.Context, st layout.State, r f32.Rectangle, layer int, focus bool) {
	s := layout.StateOf[*LabelState](st, l)
	material.DrawText(gtx.Ops, gtx.Shaper, l.style(gtx), r, s.layout)
}

func (l Label) style(gtx layout.Context) material.TextStyle {
	return themeOf(gtx).Text.Get(l.Variant, !l.Disabled)
}
