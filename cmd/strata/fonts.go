// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"

	nsareg "eliasnaur.com/font/noto/sans/arabic/regular"

	"strata.org/font"
	"strata.org/font/gofont"
	"strata.org/font/opentype"
	"strata.org/text/shape"
)

// newShaper returns a shaper for the Go fonts and the Noto Sans Arabic
// font, available as the "Noto" typeface.
func newShaper() (*shape.Cache, error) {
	faces := append(font.Collection{}, gofont.Collection()...)
	arabic, err := opentype.Parse(nsareg.TTF)
	if err != nil {
		return nil, fmt.Errorf("strata: noto font: %w", err)
	}
	faces = append(faces, font.FontFace{Font: font.Font{Typeface: "Noto"}, Face: arabic})
	return shape.NewCache(faces), nil
}
