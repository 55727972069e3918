// SPDX-License-Identifier: Unlicense OR MIT

package clip

import (
	"math"

	"strata.org/f32"
	"strata.org/op"
)

// Rect represents the clip area of a rectangle.
type Rect f32.Rectangle

// Op returns the op for the rectangle.
func (r Rect) Op() Op {
	return Op{
		bounds: f32.Rectangle(r).Canon(),
	}
}

// Push the clip operation on the clip stack.
func (r Rect) Push(o *op.Ops) Stack {
	return r.Op().Push(o)
}

// UniformRRect returns an RRect with all corner radii set to the
// provided radius.
func UniformRRect(rect f32.Rectangle, radius float32) RRect {
	return RRect{
		Rect: rect,
		SE:   radius,
		SW:   radius,
		NE:   radius,
		NW:   radius,
	}
}

// RRect represents the clip area of a rectangle with rounded
// corners.
//
// Specify a square with corner radii equal to half the square size to
// construct a circular clip area.
type RRect struct {
	Rect f32.Rectangle
	// The corner radii.
	SE, SW, NW, NE float32
}

// Op returns the op for the rounded rectangle.
func (rr RRect) Op() Op {
	if rr.SE == 0 && rr.SW == 0 && rr.NW == 0 && rr.NE == 0 {
		return Rect(rr.Rect).Op()
	}
	return Outline{Path: rr.Path()}.Op()
}

// Path returns the PathSpec for the rounded rectangle.
func (rr RRect) Path() PathSpec {
	var p Path
	p.Begin()

	// https://pomax.github.io/bezierinfo/#circles_cubic.
	const q = 4 * (math.Sqrt2 - 1) / 3
	const iq = 1 - q

	se, sw, nw, ne := rr.SE, rr.SW, rr.NW, rr.NE
	w, n, e, s := rr.Rect.Min.X, rr.Rect.Min.Y, rr.Rect.Max.X, rr.Rect.Max.Y

	p.MoveTo(f32.Point{X: w + nw, Y: n})
	p.LineTo(f32.Point{X: e - ne, Y: n}) // N
	p.CubeTo(                            // NE
		f32.Point{X: e - ne*iq, Y: n},
		f32.Point{X: e, Y: n + ne*iq},
		f32.Point{X: e, Y: n + ne})
	p.LineTo(f32.Point{X: e, Y: s - se}) // E
	p.CubeTo(                            // SE
		f32.Point{X: e, Y: s - se*iq},
		f32.Point{X: e - se*iq, Y: s},
		f32.Point{X: e - se, Y: s})
	p.LineTo(f32.Point{X: w + sw, Y: s}) // S
	p.CubeTo(                            // SW
		f32.Point{X: w + sw*iq, Y: s},
		f32.Point{X: w, Y: s - sw*iq},
		f32.Point{X: w, Y: s - sw})
	p.LineTo(f32.Point{X: w, Y: n + nw}) // W
	p.CubeTo(                            // NW
		f32.Point{X: w, Y: n + nw*iq},
		f32.Point{X: w + nw*iq, Y: n},
		f32.Point{X: w + nw, Y: n})

	return p.End()
}

// Border represents a rectangular border.
type Border struct {
	// Rect is the bounds of the border.
	Rect f32.Rectangle
	// Width of the line tracing Rect.
	Width float32
	// The corner radii.
	SE, SW, NW, NE float32
}

// Op returns the clip operation for the border. Its area corresponds to a
// stroked line that traces the border rectangle, inset by half the width
// so that the stroke stays inside Rect.
func (b Border) Op() Op {
	r := b.Rect.Inset(b.Width / 2)
	return Stroke{
		Path: RRect{
			Rect: r,
			SE:   b.SE, SW: b.SW, NW: b.NW, NE: b.NE,
		}.Path(),
		Width: b.Width,
	}.Op()
}
