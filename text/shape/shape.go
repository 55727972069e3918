// SPDX-License-Identifier: Unlicense OR MIT

/*
Package shape implements text layout and shaping on top of the sfnt
font parser.

Complex scripts are laid out rune by rune with kerning; there is no
ligature substitution or bidirectional reordering.
*/
package shape

import (
	"unicode"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"strata.org/f32"
	fnt "strata.org/font"
	"strata.org/op/clip"
	"strata.org/text"
)

// Cache is a text.Shaper for a collection of font faces. It caches
// layouts and paths, evicting the least recently used ones.
//
// A Cache is not safe for concurrent use.
type Cache struct {
	faces fnt.Collection

	buf     sfnt.Buffer
	layouts *lru.Cache[layoutKey, *text.Layout]
	paths   *lru.Cache[pathKey, clip.PathSpec]
}

// NewCache creates a Cache for a collection. The typeface of the first
// face is the default, used for fonts with an empty Typeface.
func NewCache(collection fnt.Collection) *Cache {
	return &Cache{
		faces:   collection,
		layouts: newLRU[layoutKey, *text.Layout](),
		paths:   newLRU[pathKey, clip.PathSpec](),
	}
}

func (c *Cache) Layout(ft fnt.Font, size float32, str string, opts text.LayoutOptions) (*text.Layout, error) {
	ft = c.faces.Resolve(ft)
	lk := layoutKey{font: ft, size: size, str: str, opts: opts}
	if l, ok := c.layouts.Get(lk); ok {
		return l, nil
	}
	f, err := c.fontFor(ft)
	if err != nil {
		return nil, err
	}
	l := layoutText(fixed.Int26_6(size*64), str, c.face(f), opts)
	c.layouts.Add(lk, l)
	return l, nil
}

func (c *Cache) Shape(ft fnt.Font, size float32, str text.String) (clip.PathSpec, error) {
	ft = c.faces.Resolve(ft)
	pk := pathKey{font: ft, size: size, str: str.String}
	if p, ok := c.paths.Get(pk); ok {
		return p, nil
	}
	f, err := c.fontFor(ft)
	if err != nil {
		return clip.PathSpec{}, err
	}
	p := textPath(fixed.Int26_6(size*64), c.face(f), str)
	c.paths.Add(pk, p)
	return p, nil
}

func (c *Cache) face(f *sfnt.Font) *sfntFace {
	return &sfntFace{Font: f, Hinting: font.HintingFull, buf: &c.buf}
}

// fontFor returns the font of the closest face for ft.
func (c *Cache) fontFor(ft fnt.Font) (*sfnt.Font, error) {
	face, ok := c.faces.Match(ft)
	if !ok {
		return nil, text.ErrNoFace
	}
	return face.Font(), nil
}

func layoutText(ppem fixed.Int26_6, str string, f *sfntFace, opts text.LayoutOptions) *text.Layout {
	m := f.Metrics(ppem)
	lineTmpl := text.Line{
		Ascent: m.Ascent,
		// m.Height is equal to m.Ascent + m.Descent + linegap.
		// Compute the descent including the linegap.
		Descent: m.Height - m.Ascent,
		Bounds:  f.Bounds(ppem),
	}
	var lines []text.Line
	maxDotX := fixed.Int26_6(1<<31 - 1)
	if opts.MaxWidth > 0 {
		maxDotX = fixed.I(opts.MaxWidth)
	}
	type state struct {
		r     rune
		advs  []fixed.Int26_6
		adv   fixed.Int26_6
		x     fixed.Int26_6
		idx   int
		valid bool
	}
	var prev, word state
	endLine := func() {
		line := lineTmpl
		line.Text.Advances = prev.advs
		line.Text.String = str[:prev.idx]
		line.Width = prev.x + prev.adv
		line.Bounds.Max.X += prev.x
		lines = append(lines, line)
		str = str[prev.idx:]
		prev = state{}
		word = state{}
	}
	for prev.idx < len(str) {
		c, s := utf8.DecodeRuneInString(str[prev.idx:])
		nl := c == '\n'
		if opts.SingleLine && nl {
			nl = false
			c = ' '
		}
		// Missing glyphs have no width but keep their advance slot.
		a, _ := f.GlyphAdvance(ppem, c)
		next := state{
			r:     c,
			advs:  prev.advs,
			idx:   prev.idx + s,
			x:     prev.x + prev.adv,
			valid: true,
		}
		if nl {
			// The newline is zero width; use the previous
			// character for line measurements.
			prev.advs = append(prev.advs, 0)
			prev.idx = next.idx
			endLine()
			continue
		}
		next.adv = a
		var k fixed.Int26_6
		if prev.valid {
			k = f.Kern(ppem, prev.r, next.r)
		}
		// Break the line if we're out of space.
		if prev.idx > 0 && next.x+next.adv+k >= maxDotX {
			// If the line contains no word breaks, break off the last rune.
			if word.idx == 0 {
				word = prev
			}
			next.x -= word.x + word.adv
			next.idx -= word.idx
			next.advs = next.advs[len(word.advs):]
			prev = word
			endLine()
		} else {
			next.adv += k
		}
		next.advs = append(next.advs, next.adv)
		if unicode.IsSpace(next.r) {
			word = next
		}
		prev = next
	}
	endLine()
	return &text.Layout{Lines: lines}
}

func textPath(ppem fixed.Int26_6, f *sfntFace, str text.String) clip.PathSpec {
	var builder clip.Path
	builder.Begin()
	var x fixed.Int26_6
	var advIdx int
	for _, r := range str.String {
		if !unicode.IsSpace(r) {
			if segs, ok := f.LoadGlyph(ppem, r); ok {
				off := f32.Point{X: float32(x) / 64}
				for _, fseg := range segs {
					var args [3]f32.Point
					for i := range args {
						args[i] = f32.Point{
							X: float32(fseg.Args[i].X) / 64,
							Y: float32(fseg.Args[i].Y) / 64,
						}.Add(off)
					}
					switch fseg.Op {
					case sfnt.SegmentOpMoveTo:
						builder.MoveTo(args[0])
					case sfnt.SegmentOpLineTo:
						builder.LineTo(args[0])
					case sfnt.SegmentOpQuadTo:
						builder.QuadTo(args[0], args[1])
					case sfnt.SegmentOpCubeTo:
						builder.CubeTo(args[0], args[1], args[2])
					default:
						panic("unsupported segment op")
					}
				}
			}
		}
		if advIdx < len(str.Advances) {
			x += str.Advances[advIdx]
		}
		advIdx++
	}
	return builder.End()
}
