// SPDX-License-Identifier: Unlicense OR MIT

package shape

import (
	"errors"
	"testing"

	nsareg "eliasnaur.com/font/noto/sans/arabic/regular"

	"strata.org/font"
	"strata.org/font/gofont"
	"strata.org/font/opentype"
	"strata.org/op/clip"
	"strata.org/text"
)

func testCache(t *testing.T) *Cache {
	t.Helper()
	arabic, err := opentype.Parse(nsareg.TTF)
	if err != nil {
		t.Fatal(err)
	}
	faces := append(font.Collection{}, gofont.Collection()...)
	faces = append(faces, font.FontFace{Font: font.Font{Typeface: "Noto"}, Face: arabic})
	return NewCache(faces)
}

func TestLayoutSingleLine(t *testing.T) {
	c := testCache(t)
	l, err := c.Layout(font.Font{}, 16, "Hello\nWorld", text.LayoutOptions{SingleLine: true})
	if err != nil {
		t.Fatal(err)
	}
	if n := len(l.Lines); n != 1 {
		t.Fatalf("got %d lines, want 1", n)
	}
	line := l.Lines[0]
	if got, want := len(line.Text.Advances), len([]rune("Hello\nWorld")); got != want {
		t.Errorf("got %d advances, want %d", got, want)
	}
	d := l.Dimensions()
	if d.Size.X <= 0 || d.Size.Y <= 0 || d.Baseline <= 0 {
		t.Errorf("degenerate dimensions %+v", d)
	}
}

func TestLayoutNewlines(t *testing.T) {
	c := testCache(t)
	l, err := c.Layout(font.Font{}, 16, "a\nb\nc", text.LayoutOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if n := len(l.Lines); n != 3 {
		t.Errorf("got %d lines, want 3", n)
	}
}

func TestLayoutWrap(t *testing.T) {
	c := testCache(t)
	const str = "the quick brown fox jumps over the lazy dog"
	wide, _ := c.Layout(font.Font{}, 16, str, text.LayoutOptions{})
	narrow, _ := c.Layout(font.Font{}, 16, str, text.LayoutOptions{MaxWidth: 80})
	if len(wide.Lines) != 1 {
		t.Errorf("unlimited width wrapped into %d lines", len(wide.Lines))
	}
	if len(narrow.Lines) < 2 {
		t.Errorf("narrow layout has %d lines, want several", len(narrow.Lines))
	}
	for i, l := range narrow.Lines {
		if w := l.Width.Ceil(); w > 80 && len([]rune(l.Text.String)) > 1 {
			t.Errorf("line %d is %d wide", i, w)
		}
	}
}

func TestLayoutCached(t *testing.T) {
	c := testCache(t)
	l1, _ := c.Layout(font.Font{}, 16, "cached", text.LayoutOptions{})
	l2, _ := c.Layout(font.Font{}, 16, "cached", text.LayoutOptions{})
	if l1 != l2 {
		t.Error("identical layouts were not cached")
	}
}

func TestFaceSelection(t *testing.T) {
	c := testCache(t)
	reg, _ := c.fontFor(font.Font{Typeface: "Go"})
	bold, _ := c.fontFor(font.Font{Typeface: "Go", Weight: font.Bold})
	heavy, _ := c.fontFor(font.Font{Typeface: "Go", Weight: font.ExtraBold})
	if reg == bold {
		t.Error("bold resolved to the regular face")
	}
	if heavy != bold {
		t.Error("extra bold didn't resolve to the closest weight")
	}
	noto, err := c.fontFor(font.Font{Typeface: "Noto", Weight: font.Bold})
	if err != nil || noto == reg {
		t.Errorf("Noto resolved to %v, %v", noto, err)
	}
}

func TestMissingTypeface(t *testing.T) {
	c := testCache(t)
	_, err := c.Layout(font.Font{Typeface: "Arial"}, 16, "x", text.LayoutOptions{})
	if !errors.Is(err, text.ErrNoFace) {
		t.Errorf("err = %v, want ErrNoFace", err)
	}
	if d := text.Measure(c, font.Font{Typeface: "Arial"}, 16, "x"); d != (text.Dimensions{}) {
		t.Errorf("missing face measured %+v", d)
	}
}

func TestShape(t *testing.T) {
	c := testCache(t)
	l, err := c.Layout(font.Font{}, 20, "Go", text.LayoutOptions{})
	if err != nil {
		t.Fatal(err)
	}
	p, err := c.Shape(font.Font{}, 20, l.Lines[0].Text)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Shape(font.Font{Typeface: "Arial"}, 20, l.Lines[0].Text); !errors.Is(err, text.ErrNoFace) {
		t.Errorf("err = %v, want ErrNoFace", err)
	}
	// Glyph outlines sit above the baseline.
	b := clip.Outline{Path: p}.Op().Bounds()
	if b.Min.Y >= 0 || b.Max.X <= 0 {
		t.Errorf("unexpected outline bounds %v", b)
	}
}
