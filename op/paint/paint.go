// SPDX-License-Identifier: Unlicense OR MIT

package paint

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"strata.org/internal/ops"
	"strata.org/op"
	"strata.org/op/clip"
)

// ImageOp sets the brush to an image. The image is drawn with its
// top left corner at the origin of the current transformation.
type ImageOp struct {
	uniform bool
	color   color.NRGBA
	src     *image.RGBA
}

// ColorOp sets the brush to a constant color.
type ColorOp struct {
	Color color.NRGBA
}

// PaintOp fills the current clip area with the current brush.
type PaintOp struct {
}

// NewImageOp creates an ImageOp backed by src.
//
// The ImageOp keeps a reference to src; src must not be modified
// until the frame has been drawn.
func NewImageOp(src image.Image) ImageOp {
	switch src := src.(type) {
	case *image.Uniform:
		col := color.NRGBAModel.Convert(src.C).(color.NRGBA)
		return ImageOp{
			uniform: true,
			color:   col,
		}
	case *image.RGBA:
		if src.Bounds().Min == (image.Point{}) {
			return ImageOp{src: src}
		}
	}

	sz := src.Bounds().Size()
	dst := image.NewRGBA(image.Rectangle{
		Max: sz,
	})
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return ImageOp{src: dst}
}

// Size returns the size of the image, or the zero size for
// uniform images.
func (i ImageOp) Size() image.Point {
	if i.src == nil {
		return image.Point{}
	}
	return i.src.Bounds().Size()
}

func (i ImageOp) Add(o *op.Ops) {
	if i.uniform {
		ColorOp{
			Color: i.color,
		}.Add(o)
		return
	}
	o.Internal.Write(ops.Op{Type: ops.TypeImage, Image: i.src})
}

func (c ColorOp) Add(o *op.Ops) {
	o.Internal.Write(ops.Op{Type: ops.TypeColor, Color: c.Color})
}

func (d PaintOp) Add(o *op.Ops) {
	o.Internal.Write(ops.Op{Type: ops.TypePaint})
}

// FillShape fills the clip shape with a color.
func FillShape(ops *op.Ops, c color.NRGBA, shape clip.Op) {
	defer shape.Push(ops).Pop()
	Fill(ops, c)
}

// Fill paints an infinitely large plane with the provided color. It
// is intended to be used with a clip.Op already in place to limit
// the painted area. Use FillShape unless you need to paint several
// times within the same clip.Op.
func Fill(ops *op.Ops, c color.NRGBA) {
	ColorOp{Color: c}.Add(ops)
	PaintOp{}.Add(ops)
}
