// SPDX-License-Identifier: Unlicense OR MIT

package clip

import (
	"math"

	"strata.org/f32"
	"strata.org/internal/ops"
	"strata.org/op"
)

// Op represents a clip area. Op intersects the current clip area with
// itself.
type Op struct {
	path   []ops.Segment
	bounds f32.Rectangle
}

// Stack represents an Op pushed on the clip stack.
type Stack struct {
	ops *ops.Ops
	id  ops.StackID
}

// Push saves the current clip state on the stack and updates the current
// state to the intersection of the current clip and p.
func (p Op) Push(o *op.Ops) Stack {
	id := o.Internal.PushOp(ops.ClipStack)
	o.Internal.Write(ops.Op{Type: ops.TypeClip, Bounds: p.bounds, Path: p.path})
	return Stack{ops: &o.Internal, id: id}
}

// Pop restores the clip state to its state before the Push.
func (s Stack) Pop() {
	s.ops.PopOp(ops.ClipStack, s.id)
	s.ops.Write(ops.Op{Type: ops.TypePopClip})
}

// Bounds returns the bounding rectangle of the clip area.
func (p Op) Bounds() f32.Rectangle {
	return p.bounds
}

// PathSpec describes a path. Use Outline or Stroke to turn it into a
// clip area.
type PathSpec struct {
	segs   []ops.Segment
	bounds f32.Rectangle
}

// Path constructs a PathSpec described by lines and Bézier curves.
// Coordinates are absolute. The inside of a closed path is determined
// by the non-zero winding rule.
type Path struct {
	segs   []ops.Segment
	pen    f32.Point
	start  f32.Point
	bounds f32.Rectangle
	// hasBounds is set once bounds covers at least one point.
	hasBounds bool
}

// Pos returns the current pen position.
func (p *Path) Pos() f32.Point { return p.pen }

// Begin the path, discarding any previous data.
func (p *Path) Begin() {
	*p = Path{}
}

// MoveTo moves the pen to the given position, closing the
// current contour.
func (p *Path) MoveTo(to f32.Point) {
	p.Close()
	p.segs = append(p.segs, ops.Segment{Kind: ops.SegMoveTo, Args: [3]f32.Point{to}})
	p.pen = to
	p.start = to
	p.expand(to)
}

// LineTo moves the pen to the absolute point specified, recording a line.
func (p *Path) LineTo(to f32.Point) {
	p.segs = append(p.segs, ops.Segment{Kind: ops.SegLineTo, Args: [3]f32.Point{to}})
	p.pen = to
	p.expand(to)
}

// QuadTo records a quadratic Bézier from the pen to end
// with the control point ctrl, with absolute coordinates.
func (p *Path) QuadTo(ctrl, to f32.Point) {
	p.segs = append(p.segs, ops.Segment{Kind: ops.SegQuadTo, Args: [3]f32.Point{ctrl, to}})
	p.pen = to
	p.expand(ctrl)
	p.expand(to)
}

// CubeTo records a cubic Bézier from the pen through
// two control points ending in to, with absolute coordinates.
func (p *Path) CubeTo(ctrl0, ctrl1, to f32.Point) {
	p.segs = append(p.segs, ops.Segment{Kind: ops.SegCubeTo, Args: [3]f32.Point{ctrl0, ctrl1, to}})
	p.pen = to
	p.expand(ctrl0)
	p.expand(ctrl1)
	p.expand(to)
}

// Close closes the path contour.
func (p *Path) Close() {
	if len(p.segs) > 0 && p.pen != p.start {
		p.LineTo(p.start)
	}
}

// End returns a PathSpec ready to use in clipping operations.
func (p *Path) End() PathSpec {
	p.Close()
	return PathSpec{segs: p.segs, bounds: p.bounds}
}

func (p *Path) expand(pt f32.Point) {
	if !p.hasBounds {
		p.bounds = f32.Rectangle{Min: pt, Max: pt}
		p.hasBounds = true
		return
	}
	p.bounds = p.bounds.Union(f32.Rectangle{Min: pt, Max: pt})
}

// Outline represents the area inside of a path, according to the
// non-zero winding rule.
type Outline struct {
	Path PathSpec
}

// Op returns a clip operation representing the outline.
func (o Outline) Op() Op {
	return Op{
		path:   o.Path.segs,
		bounds: o.Path.bounds,
	}
}

// flatten approximates the path with line segments, calling line for
// each of them. Curves are split into a fixed number of steps.
func (s PathSpec) flatten(line func(from, to f32.Point)) {
	const steps = 8
	var pen f32.Point
	for _, seg := range s.segs {
		switch seg.Kind {
		case ops.SegMoveTo:
			pen = seg.Args[0]
		case ops.SegLineTo:
			line(pen, seg.Args[0])
			pen = seg.Args[0]
		case ops.SegQuadTo:
			from := pen
			for i := 1; i <= steps; i++ {
				t := float32(i) / steps
				pt := quadAt(from, seg.Args[0], seg.Args[1], t)
				line(pen, pt)
				pen = pt
			}
		case ops.SegCubeTo:
			from := pen
			for i := 1; i <= steps; i++ {
				t := float32(i) / steps
				pt := cubeAt(from, seg.Args[0], seg.Args[1], seg.Args[2], t)
				line(pen, pt)
				pen = pt
			}
		}
	}
}

func quadAt(p0, p1, p2 f32.Point, t float32) f32.Point {
	u := 1 - t
	return p0.Mul(u * u).Add(p1.Mul(2 * u * t)).Add(p2.Mul(t * t))
}

func cubeAt(p0, p1, p2, p3 f32.Point, t float32) f32.Point {
	u := 1 - t
	return p0.Mul(u * u * u).
		Add(p1.Mul(3 * u * u * t)).
		Add(p2.Mul(3 * u * t * t)).
		Add(p3.Mul(t * t * t))
}

func length(p f32.Point) float32 {
	return float32(math.Hypot(float64(p.X), float64(p.Y)))
}
