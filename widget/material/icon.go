// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/exp/shiny/iconvg"
	"golang.org/x/image/draw"

	"strata.org/op/paint"
)

// Icon is an IconVG vector image rasterized on demand.
type Icon struct {
	src []byte
	// Cached values.
	op       paint.ImageOp
	imgSize  int
	imgColor color.NRGBA
}

// NewIcon returns a new Icon from IconVG data.
func NewIcon(data []byte) (*Icon, error) {
	_, err := iconvg.DecodeMetadata(data)
	if err != nil {
		return nil, fmt.Errorf("material: invalid icon: %w", err)
	}
	return &Icon{src: data}, nil
}

// Image returns the icon sz pixels wide drawn in color c. The image
// is cached until the size or color changes.
func (ic *Icon) Image(sz int, c color.NRGBA) paint.ImageOp {
	if sz <= 0 {
		return paint.ImageOp{}
	}
	if sz == ic.imgSize && c == ic.imgColor {
		return ic.op
	}
	m, _ := iconvg.DecodeMetadata(ic.src)
	dx, dy := m.ViewBox.AspectRatio()
	img := image.NewRGBA(image.Rectangle{Max: image.Point{X: sz, Y: int(float32(sz) * dy / dx)}})
	var ico iconvg.Rasterizer
	ico.SetDstImage(img, img.Bounds(), draw.Src)
	m.Palette[0] = color.RGBAModel.Convert(c).(color.RGBA)
	iconvg.Decode(&ico, ic.src, &iconvg.DecodeOptions{
		Palette: &m.Palette,
	})
	ic.op = paint.NewImageOp(img)
	ic.imgSize = sz
	ic.imgColor = c
	return ic.op
}
