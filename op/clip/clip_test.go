// SPDX-License-Identifier: Unlicense OR MIT

package clip

import (
	"testing"

	"strata.org/f32"
	"strata.org/internal/ops"
	"strata.org/op"
)

func TestPathBounds(t *testing.T) {
	var p Path
	p.Begin()
	p.MoveTo(f32.Pt(10, 20))
	p.LineTo(f32.Pt(30, 5))
	p.QuadTo(f32.Pt(40, 40), f32.Pt(15, 25))
	spec := p.End()
	if got, want := spec.bounds, f32.Rect(10, 5, 40, 40); got != want {
		t.Errorf("bounds = %v, want %v", got, want)
	}
	// End closes the contour back to the start.
	last := spec.segs[len(spec.segs)-1]
	if last.Kind != ops.SegLineTo || last.Args[0] != f32.Pt(10, 20) {
		t.Errorf("last segment = %+v, want line to start", last)
	}
}

func TestRectPush(t *testing.T) {
	var o op.Ops
	Rect(f32.Rect(0, 0, 10, 10)).Push(&o).Pop()
	var r ops.Reader
	r.Reset(&o.Internal)
	c, _ := r.Decode()
	if c.Type != ops.TypeClip || c.Path != nil || c.Bounds != f32.Rect(0, 0, 10, 10) {
		t.Errorf("clip op = %+v", c)
	}
	if p, _ := r.Decode(); p.Type != ops.TypePopClip {
		t.Errorf("pop op = %+v", p)
	}
}

func TestStrokeCoversPath(t *testing.T) {
	var p Path
	p.Begin()
	p.MoveTo(f32.Pt(0, 10))
	p.LineTo(f32.Pt(20, 10))
	st := Stroke{Path: p.End(), Width: 4}.Op()
	// The open line is closed back on itself, so the stroke traces
	// it twice; both quads share the same bounds.
	if got, want := st.Bounds(), f32.Rect(-2, 8, 22, 12); got != want {
		t.Errorf("stroke bounds = %v, want %v", got, want)
	}
}

func TestBorderInsideRect(t *testing.T) {
	b := Border{Rect: f32.Rect(0, 0, 100, 50), Width: 2}.Op()
	if got, want := b.Bounds(), f32.Rect(0, 0, 100, 50); got != want {
		t.Errorf("border bounds = %v, want %v", got, want)
	}
}
