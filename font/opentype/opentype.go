// SPDX-License-Identifier: Unlicense OR MIT

// Package opentype loads OpenType and TrueType font files.
package opentype

import (
	"fmt"
	"strings"

	"golang.org/x/image/font/sfnt"

	"strata.org/font"
)

// Face is a thread-safe representation of a loaded font. For efficiency, applications
// should construct a face for any given font file once, reusing it across different
// text shapers.
type Face struct {
	font *sfnt.Font
}

// Parse constructs a Face from source bytes.
func Parse(src []byte) (Face, error) {
	fnt, err := sfnt.Parse(src)
	if err != nil {
		return Face{}, fmt.Errorf("failed parsing truetype font: %w", err)
	}
	return Face{font: fnt}, nil
}

// ParseCollection parse an Opentype font file, with support for collections.
// Single font files are supported, returning a slice with length 1.
// The returned fonts are automatically wrapped in a font.FontFace with
// metadata read from the name table.
func ParseCollection(src []byte) (font.Collection, error) {
	c, err := sfnt.ParseCollection(src)
	if err != nil {
		return nil, fmt.Errorf("failed parsing font collection: %w", err)
	}
	out := make(font.Collection, c.NumFonts())
	var buf sfnt.Buffer
	for i := range out {
		fnt, err := c.Font(i)
		if err != nil {
			return nil, fmt.Errorf("reading font %d of collection: %w", i, err)
		}
		f := Face{font: fnt}
		out[i] = font.FontFace{
			Font: describe(&buf, fnt),
			Face: f,
		}
	}
	return out, nil
}

// Font returns the underlying sfnt font.
func (f Face) Font() *sfnt.Font {
	return f.font
}

// describe infers the font attributes from the name table. Missing
// names degrade to the zero Font.
func describe(buf *sfnt.Buffer, fnt *sfnt.Font) font.Font {
	var desc font.Font
	family, err := fnt.Name(buf, sfnt.NameIDFamily)
	if err == nil {
		desc.Typeface = font.Typeface(family)
	}
	// The full name spells out the style even for families that
	// register their weights as separate typefaces.
	sub, err := fnt.Name(buf, sfnt.NameIDFull)
	if err != nil {
		return desc
	}
	sub = strings.ToLower(sub)
	if strings.Contains(sub, "mono") && !strings.Contains(strings.ToLower(family), "mono") {
		desc.Typeface += " Mono"
	}
	if strings.Contains(sub, "italic") || strings.Contains(sub, "oblique") {
		desc.Style = font.Italic
	}
	switch {
	case strings.Contains(sub, "semibold"):
		desc.Weight = font.SemiBold
	case strings.Contains(sub, "bold"):
		desc.Weight = font.Bold
	case strings.Contains(sub, "medium"):
		desc.Weight = font.Medium
	case strings.Contains(sub, "light"):
		desc.Weight = font.Light
	}
	return desc
}
