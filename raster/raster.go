// SPDX-License-Identifier: Unlicense OR MIT

/*
Package raster implements a software rasterizer for operation lists.

A Rasterizer replays the operations of a frame into an *image.RGBA.
Clip paths are rendered with the analytic anti-aliasing rasterizer of
golang.org/x/image/vector.
*/
package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"strata.org/f32"
	"strata.org/internal/ops"
	"strata.org/op"
)

type Rasterizer struct {
	reader ops.Reader

	scratch struct {
		transforms []f32.Point
		clips      []clipState
	}
}

type clipState struct {
	bounds image.Rectangle
	// mask is the coverage of the clip paths up to and including
	// this one, or nil if all of them are rectangles.
	mask *image.Alpha
}

// Frame replays frame into frameBuf. The frame buffer is not cleared.
func (r *Rasterizer) Frame(frame *op.Ops, frameBuf *image.RGBA) {
	if frame == nil {
		return
	}
	d := &r.reader
	d.Reset(&frame.Internal)

	stack := r.scratch.transforms[:0]
	clips := r.scratch.clips[:0]
	defer func() {
		r.scratch.transforms = stack
		r.scratch.clips = clips
	}()
	var state struct {
		off      f32.Point
		material image.Image
		origin   image.Point
	}
	state.material = image.NewUniform(color.NRGBA{})
	for o, ok := d.Decode(); ok; o, ok = d.Decode() {
		switch o.Type {
		case ops.TypeTransform:
			stack = append(stack, state.off)
			state.off = state.off.Add(o.Offset)
		case ops.TypePopTransform:
			state.off = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		case ops.TypeClip:
			bounds := pixelBounds(o.Bounds.Add(state.off)).Intersect(frameBuf.Bounds())
			var parent *clipState
			if len(clips) > 0 {
				parent = &clips[len(clips)-1]
				bounds = bounds.Intersect(parent.bounds)
			}
			c := clipState{bounds: bounds}
			if parent != nil {
				c.mask = parent.mask
			}
			if o.Path != nil && !bounds.Empty() {
				m := rasterizePath(o.Path, state.off, frameBuf.Bounds())
				c.mask = intersectMasks(c.mask, m, bounds)
			}
			clips = append(clips, c)
		case ops.TypePopClip:
			clips = clips[:len(clips)-1]
		case ops.TypeColor:
			state.material = image.NewUniform(o.Color)
			state.origin = image.Point{}
		case ops.TypeImage:
			state.material = o.Image
			state.origin = image.Pt(int(math.Round(float64(state.off.X))), int(math.Round(float64(state.off.Y))))
		case ops.TypePaint:
			bounds := frameBuf.Bounds()
			var mask *image.Alpha
			if len(clips) > 0 {
				c := clips[len(clips)-1]
				bounds = bounds.Intersect(c.bounds)
				mask = c.mask
			}
			if bounds.Empty() {
				break
			}
			sp := bounds.Min.Sub(state.origin)
			if mask == nil {
				draw.Draw(frameBuf, bounds, state.material, sp, draw.Over)
			} else {
				draw.DrawMask(frameBuf, bounds, state.material, sp, mask, bounds.Min, draw.Over)
			}
		}
	}
}

// pixelBounds returns the smallest pixel rectangle covering r.
func pixelBounds(r f32.Rectangle) image.Rectangle {
	return image.Rectangle{
		Min: image.Point{
			X: int(math.Floor(float64(r.Min.X))),
			Y: int(math.Floor(float64(r.Min.Y))),
		},
		Max: image.Point{
			X: int(math.Ceil(float64(r.Max.X))),
			Y: int(math.Ceil(float64(r.Max.Y))),
		},
	}
}

// rasterizePath renders the coverage of path, offset by off, into a mask
// the size of frame.
func rasterizePath(path []ops.Segment, off f32.Point, frame image.Rectangle) *image.Alpha {
	vr := vector.NewRasterizer(frame.Dx(), frame.Dy())
	vr.DrawOp = draw.Src
	base := f32.Pt(float32(frame.Min.X), float32(frame.Min.Y))
	t := func(p f32.Point) f32.Point {
		return p.Add(off).Sub(base)
	}
	for _, s := range path {
		switch s.Kind {
		case ops.SegMoveTo:
			p := t(s.Args[0])
			vr.MoveTo(p.X, p.Y)
		case ops.SegLineTo:
			p := t(s.Args[0])
			vr.LineTo(p.X, p.Y)
		case ops.SegQuadTo:
			c, p := t(s.Args[0]), t(s.Args[1])
			vr.QuadTo(c.X, c.Y, p.X, p.Y)
		case ops.SegCubeTo:
			c0, c1, p := t(s.Args[0]), t(s.Args[1]), t(s.Args[2])
			vr.CubeTo(c0.X, c0.Y, c1.X, c1.Y, p.X, p.Y)
		}
	}
	vr.ClosePath()
	mask := image.NewAlpha(frame)
	vr.Draw(mask, frame, image.Opaque, image.Point{})
	return mask
}

// intersectMasks returns the pointwise minimum of a and b inside bounds.
// A nil a is treated as fully covered.
func intersectMasks(a, b *image.Alpha, bounds image.Rectangle) *image.Alpha {
	if a == nil {
		return b
	}
	m := image.NewAlpha(b.Rect)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			av, bv := a.AlphaAt(x, y).A, b.AlphaAt(x, y).A
			if bv < av {
				av = bv
			}
			m.SetAlpha(x, y, color.Alpha{A: av})
		}
	}
	return m
}
