// SPDX-License-Identifier: Unlicense OR MIT

package clip

import (
	"strata.org/f32"
)

// Stroke represents a stroked path.
type Stroke struct {
	Path PathSpec
	// Width of the stroked path.
	Width float32
}

// Op returns a clip operation representing the stroke. Every line
// segment of the flattened path becomes a quadrilateral extended by
// half the width at both ends, which squares off caps and fills the
// gaps at joins.
func (s Stroke) Op() Op {
	var p Path
	p.Begin()
	hw := s.Width / 2
	s.Path.flatten(func(from, to f32.Point) {
		d := to.Sub(from)
		l := length(d)
		if l == 0 || hw <= 0 {
			return
		}
		d = f32.Pt(d.X*hw/l, d.Y*hw/l)
		n := f32.Pt(-d.Y, d.X)
		a, b := from.Sub(d), to.Add(d)
		p.MoveTo(a.Add(n))
		p.LineTo(b.Add(n))
		p.LineTo(b.Sub(n))
		p.LineTo(a.Sub(n))
		p.Close()
	})
	return Outline{Path: p.End()}.Op()
}
