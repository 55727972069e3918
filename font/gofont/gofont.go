// SPDX-License-Identifier: Unlicense OR MIT

// Package gofont provides the Go fonts as a font collection.
//
// The proportional fonts form the "Go" typeface, and the monospaced
// and small caps fonts the "Go Mono" and "Go Smallcaps" typefaces.
package gofont

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"

	"strata.org/font"
	"strata.org/font/opentype"
)

var files = []struct {
	font font.Font
	ttf  []byte
}{
	// Regular comes first to make "Go" the default typeface.
	{font.Font{Typeface: "Go"}, goregular.TTF},
	{font.Font{Typeface: "Go", Style: font.Italic}, goitalic.TTF},
	{font.Font{Typeface: "Go", Weight: font.Bold}, gobold.TTF},
	{font.Font{Typeface: "Go", Weight: font.Bold, Style: font.Italic}, gobolditalic.TTF},
	{font.Font{Typeface: "Go", Weight: font.Medium}, gomedium.TTF},
	{font.Font{Typeface: "Go", Weight: font.Medium, Style: font.Italic}, gomediumitalic.TTF},
	{font.Font{Typeface: "Go Mono"}, gomono.TTF},
	{font.Font{Typeface: "Go Mono", Style: font.Italic}, gomonoitalic.TTF},
	{font.Font{Typeface: "Go Mono", Weight: font.Bold}, gomonobold.TTF},
	{font.Font{Typeface: "Go Mono", Weight: font.Bold, Style: font.Italic}, gomonobolditalic.TTF},
	{font.Font{Typeface: "Go Smallcaps"}, gosmallcaps.TTF},
	{font.Font{Typeface: "Go Smallcaps", Style: font.Italic}, gosmallcapsitalic.TTF},
}

var (
	once       sync.Once
	collection font.Collection
)

// Collection returns the Go fonts. The faces are parsed on first use
// and shared by all callers; the returned slice has no spare capacity,
// so appending to it copies.
func Collection() font.Collection {
	once.Do(func() {
		c := make(font.Collection, len(files))
		for i, f := range files {
			face, err := opentype.Parse(f.ttf)
			if err != nil {
				panic(fmt.Errorf("gofont: %v: %w", f.font, err))
			}
			c[i] = font.FontFace{Font: f.font, Face: face}
		}
		collection = c
	})
	return collection
}
