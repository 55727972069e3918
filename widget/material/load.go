// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"

	"strata.org/font"
)

// themeFile is the TOML representation of a Theme. Absent keys keep
// their default.
type themeFile struct {
	Rect        stylesFile[rectFile] `toml:"rect"`
	RectOutline stylesFile[rectFile] `toml:"rect_outline"`
	Text        stylesFile[textFile] `toml:"text"`
}

type stylesFile[T any] struct {
	Enabled  variantsFile[T] `toml:"enabled"`
	Disabled variantsFile[T] `toml:"disabled"`
}

type variantsFile[T any] struct {
	Normal *T `toml:"normal"`
	Active *T `toml:"active"`
	Danger *T `toml:"danger"`
}

type rectFile struct {
	Background  *string  `toml:"background"`
	Hover       *string  `toml:"hover"`
	Pressed     *string  `toml:"pressed"`
	Foreground  *string  `toml:"foreground"`
	Border      *string  `toml:"border"`
	BorderWidth *float32 `toml:"border_width"`
	Padding     *float32 `toml:"padding"`
	Margin      *float32 `toml:"margin"`
}

type textFile struct {
	Typeface  *string  `toml:"typeface"`
	Size      *float32 `toml:"size"`
	Color     *string  `toml:"color"`
	Selection *string  `toml:"selection"`
	Bold      *bool    `toml:"bold"`
	Italic    *bool    `toml:"italic"`
}

// LoadTheme reads a theme from the TOML file at path on top of the
// defaults of NewTheme.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("material: load theme: %w", err)
	}
	th := NewTheme()
	if err := th.Decode(data); err != nil {
		return nil, fmt.Errorf("material: %s: %w", path, err)
	}
	return th, nil
}

// Decode overrides the parameters of t present in the TOML document
// data.
func (t *Theme) Decode(data []byte) error {
	var f themeFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("decode theme: %w", err)
	}
	if err := applyStyles(&t.Rect, f.Rect, "rect", applyRect); err != nil {
		return err
	}
	if err := applyStyles(&t.RectOutline, f.RectOutline, "rect_outline", applyRect); err != nil {
		return err
	}
	return applyStyles(&t.Text, f.Text, "text", applyText)
}

func applyStyles[T, F any](s *Styles[T], f stylesFile[F], name string, apply func(*T, *F) error) error {
	for _, v := range []struct {
		name string
		dst  *Variants[T]
		src  variantsFile[F]
	}{
		{"enabled", &s.Enabled, f.Enabled},
		{"disabled", &s.Disabled, f.Disabled},
	} {
		for _, vv := range []struct {
			name string
			dst  *T
			src  *F
		}{
			{"normal", &v.dst.Normal, v.src.Normal},
			{"active", &v.dst.Active, v.src.Active},
			{"danger", &v.dst.Danger, v.src.Danger},
		} {
			if vv.src == nil {
				continue
			}
			if err := apply(vv.dst, vv.src); err != nil {
				return fmt.Errorf("%s.%s.%s: %w", name, v.name, vv.name, err)
			}
		}
	}
	return nil
}

func applyRect(st *RectStyle, f *rectFile) error {
	for _, c := range []struct {
		dst *color.NRGBA
		src *string
	}{
		{&st.Background, f.Background},
		{&st.Hover, f.Hover},
		{&st.Pressed, f.Pressed},
		{&st.Foreground, f.Foreground},
		{&st.Border, f.Border},
	} {
		if c.src == nil {
			continue
		}
		col, err := ParseColor(*c.src)
		if err != nil {
			return err
		}
		*c.dst = col
	}
	setFloat(&st.BorderWidth, f.BorderWidth)
	setFloat(&st.Padding, f.Padding)
	setFloat(&st.Margin, f.Margin)
	return nil
}

func applyText(st *TextStyle, f *textFile) error {
	if f.Typeface != nil {
		st.Font.Typeface = font.Typeface(*f.Typeface)
	}
	setFloat(&st.Size, f.Size)
	for _, c := range []struct {
		dst *color.NRGBA
		src *string
	}{
		{&st.Color, f.Color},
		{&st.Selection, f.Selection},
	} {
		if c.src == nil {
			continue
		}
		col, err := ParseColor(*c.src)
		if err != nil {
			return err
		}
		*c.dst = col
	}
	if f.Bold != nil {
		st.Font.Weight = font.Normal
		if *f.Bold {
			st.Font.Weight = font.Bold
		}
	}
	if f.Italic != nil {
		st.Font.Style = font.Regular
		if *f.Italic {
			st.Font.Style = font.Italic
		}
	}
	return nil
}

func setFloat(dst *float32, v *float32) {
	if v != nil {
		*dst = *v
	}
}

// ParseColor parses a color in the form #rgb, #rrggbb, #rrggbbaa or
// an SVG color name such as "steelblue".
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return color.NRGBA{}, fmt.Errorf("unknown color %q", s)
		}
		return color.NRGBA(c), nil
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	switch len(hex) {
	case 6:
		hex += "ff"
	case 8:
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
