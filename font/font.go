// SPDX-License-Identifier: Unlicense OR MIT

/*
Package font describes fonts the way themes name them and matches
those descriptions against a collection of parsed faces.

A theme names a typeface and asks for bold or italic text; the closest
face of the collection is used. Families that ship variants such as Go
Mono register them as separate typefaces.
*/
package font

import (
	"strconv"

	"golang.org/x/image/font/sfnt"
)

// Font describes the face to use for a run of text.
type Font struct {
	// Typeface is the family name. The empty typeface is the default
	// typeface of the collection.
	Typeface Typeface
	Style    Style
	// Weight is the text weight relative to Normal.
	Weight Weight
}

// Typeface is the family name of a font, such as "Go" or "Noto".
type Typeface string

// Style is the slant of a font.
type Style uint8

// Weight is a CSS font weight minus 400, so that the zero Weight
// is normal text.
type Weight int16

const (
	Regular Style = iota
	Italic
)

const (
	Light     Weight = -100
	Normal    Weight = 0
	Medium    Weight = 100
	SemiBold  Weight = 200
	Bold      Weight = 300
	ExtraBold Weight = 400
)

// Face is a parsed font file.
type Face interface {
	Font() *sfnt.Font
}

// FontFace pairs a Face with the Font it answers for.
type FontFace struct {
	Font Font
	Face Face
}

// Collection is a list of faces. The typeface of the first face is the
// default typeface.
type Collection []FontFace

// Default returns the default typeface of c, or the empty typeface if
// c has no faces.
func (c Collection) Default() Typeface {
	if len(c) == 0 {
		return ""
	}
	return c[0].Font.Typeface
}

// Resolve replaces an empty typeface in f with the default of c.
func (c Collection) Resolve(f Font) Font {
	if f.Typeface == "" {
		f.Typeface = c.Default()
	}
	return f
}

// Match returns the face closest to f. Only faces of the same typeface
// match; among those a matching style beats any weight, and weights
// are compared by distance.
func (c Collection) Match(f Font) (Face, bool) {
	f = c.Resolve(f)
	var best Face
	bestScore := -1
	for _, ff := range c {
		if ff.Face == nil || ff.Font.Typeface != f.Typeface {
			continue
		}
		score := int(ff.Font.Weight) - int(f.Weight)
		if score < 0 {
			score = -score
		}
		if ff.Font.Style != f.Style {
			score += 1000
		}
		if bestScore == -1 || score < bestScore {
			best, bestScore = ff.Face, score
		}
	}
	return best, best != nil
}

func (s Style) String() string {
	if s == Italic {
		return "Italic"
	}
	return "Regular"
}

var weightNames = map[Weight]string{
	Light:     "Light",
	Normal:    "Normal",
	Medium:    "Medium",
	SemiBold:  "SemiBold",
	Bold:      "Bold",
	ExtraBold: "ExtraBold",
}

func (w Weight) String() string {
	if n, ok := weightNames[w]; ok {
		return n
	}
	return "Weight(" + strconv.Itoa(int(w)+400) + ")"
}
