// SPDX-License-Identifier: Unlicense OR MIT

/*
Package text describes measured text and the Shaper that produces it.

Widgets never touch font files directly. They ask a Shaper to lay out a
string for a font and size, read the measurements from the returned
Layout, and ask the Shaper again for the outline of each line when
drawing.
*/
package text

import (
	"errors"
	"fmt"

	"golang.org/x/image/math/fixed"

	"strata.org/f32"
	"strata.org/font"
	"strata.org/op/clip"
)

// ErrNoFace is returned by a Shaper when no face matches the requested
// font.
var ErrNoFace = errors.New("text: no matching font face")

// Shaper implements layout and shaping of text.
type Shaper interface {
	// Layout a text according to a set of options.
	Layout(fnt font.Font, size float32, str string, opts LayoutOptions) (*Layout, error)
	// Shape a line of text previously laid out by Layout and return its
	// outline. The outline origin is the start of the baseline.
	Shape(fnt font.Font, size float32, str String) (clip.PathSpec, error)
}

// A Line contains the measurements of a line of text.
type Line struct {
	Text String
	// Width is the width of the line.
	Width fixed.Int26_6
	// Ascent is the height above the baseline.
	Ascent fixed.Int26_6
	// Descent is the height below the baseline, including
	// the line gap.
	Descent fixed.Int26_6
	// Bounds is the visible bounds of the line.
	Bounds fixed.Rectangle26_6
}

type String struct {
	String string
	// Advances contain the advance of each rune in String.
	Advances []fixed.Int26_6
}

// A Layout contains the measurements of a body of text as
// a list of Lines.
type Layout struct {
	Lines []Line
}

// LayoutOptions specify the constraints of a text layout.
type LayoutOptions struct {
	// MaxWidth set the maximum width of the layout. Zero means no
	// limit.
	MaxWidth int
	// SingleLine specify that line breaks are ignored.
	SingleLine bool
}

// Dimensions are the measured size of a Layout.
type Dimensions struct {
	Size f32.Point
	// Baseline is the distance from the top to the baseline of the
	// first line.
	Baseline float32
}

type Alignment uint8

const (
	Start Alignment = iota
	End
	Middle
)

// Dimensions returns the size of the laid out text.
func (l *Layout) Dimensions() Dimensions {
	if l == nil {
		return Dimensions{}
	}
	return linesDimens(l.Lines)
}

// Measure lays out str and returns its dimensions. Layout failures,
// such as a missing face, measure as zero.
func Measure(s Shaper, fnt font.Font, size float32, str string) Dimensions {
	if s == nil {
		return Dimensions{}
	}
	l, err := s.Layout(fnt, size, str, LayoutOptions{SingleLine: true})
	if err != nil {
		return Dimensions{}
	}
	return l.Dimensions()
}

func linesDimens(lines []Line) Dimensions {
	var width fixed.Int26_6
	var h int
	var baseline int
	if len(lines) > 0 {
		baseline = lines[0].Ascent.Ceil()
		var prevDesc fixed.Int26_6
		for _, l := range lines {
			h += (prevDesc + l.Ascent).Ceil()
			prevDesc = l.Descent
			if l.Width > width {
				width = l.Width
			}
		}
		h += lines[len(lines)-1].Descent.Ceil()
	}
	w := width.Ceil()
	return Dimensions{
		Size: f32.Point{
			X: float32(w),
			Y: float32(h),
		},
		Baseline: float32(baseline),
	}
}

// Align returns the horizontal offset of a line of the given width
// within maxWidth.
func Align(align Alignment, width fixed.Int26_6, maxWidth float32) float32 {
	w := float32(width) / 64
	switch align {
	case Middle:
		return (maxWidth - w) / 2
	case End:
		return maxWidth - w
	case Start:
		return 0
	default:
		panic(fmt.Errorf("unknown alignment %v", align))
	}
}

// X returns the horizontal offset of the rune at index idx, counted
// in runes. Indices past the end return the width of the string.
func (s String) X(idx int) float32 {
	var x fixed.Int26_6
	for i, adv := range s.Advances {
		if i >= idx {
			break
		}
		x += adv
	}
	return float32(x) / 64
}

// Index returns the rune index of the caret position closest to the
// horizontal offset x.
func (s String) Index(x float32) int {
	var pos float32
	for i, adv := range s.Advances {
		w := float32(adv) / 64
		if x < pos+w/2 {
			return i
		}
		pos += w
	}
	return len(s.Advances)
}

func (a Alignment) String() string {
	switch a {
	case Start:
		return "Start"
	case End:
		return "End"
	case Middle:
		return "Middle"
	default:
		panic("unreachable")
	}
}
