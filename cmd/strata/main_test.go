// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"strata.org/f32"
	"strata.org/io/key"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		in   string
		want action
	}{
		{"click 10,20", action{kind: actionClick, pos: f32.Pt(10, 20)}},
		{"move 1.5, 2", action{kind: actionMove, pos: f32.Pt(1.5, 2)}},
		{"type hello world", action{kind: actionType, text: "hello world"}},
		{"key Short-A", action{kind: actionKey, name: "A", mods: key.ModShortcut}},
		{"key Shift-Left", action{kind: actionKey, name: key.NameLeftArrow, mods: key.ModShift}},
		{"key Backspace", action{kind: actionKey, name: key.NameDeleteBackward}},
		{"leave", action{kind: actionLeave}},
	}
	for _, tc := range tests {
		got, err := parseAction(tc.in)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: got %+v, want %+v", tc.in, got, tc.want)
		}
	}
	for _, bad := range []string{"jump 1,2", "click 1", "click a,b", "key", "key Hyper-A"} {
		if _, err := parseAction(bad); err == nil {
			t.Errorf("%q parsed", bad)
		}
	}
}

func TestParseSize(t *testing.T) {
	if w, h, err := parseSize("640x480"); err != nil || w != 640 || h != 480 {
		t.Errorf("parseSize = %d, %d, %v", w, h, err)
	}
	for _, bad := range []string{"640", "0x10", "ax1"} {
		if _, _, err := parseSize(bad); err == nil {
			t.Errorf("%q parsed", bad)
		}
	}
}

func TestList(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"list"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "tempconv\n") {
		t.Errorf("list output %q", out.String())
	}
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	theme := filepath.Join(dir, "theme.toml")
	const themeTOML = `
[rect.enabled.normal]
background = "#204080"
`
	if err := os.WriteFile(theme, []byte(themeTOML), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "toggle.png")
	logFile := filepath.Join(dir, "strata.log")
	cmd := newRootCmd()
	cmd.SetArgs([]string{
		"render", "toggle",
		"--size", "300x60",
		"--theme", theme,
		"--scale", "0.5",
		"--log", logFile,
		"-o", out,
		"--do", "click 50,30",
		"--do", "move 280,5",
	})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds().Size(); got.X != 150 || got.Y != 30 {
		t.Errorf("image size = %v, want 150x30", got)
	}
	// The second button isn't hovered and shows the themed background.
	want := color.NRGBA{R: 0x20, G: 0x40, B: 0x80, A: 0xff}
	if got := color.NRGBAModel.Convert(img.At(57, 20)).(color.NRGBA); !near(got, want) {
		t.Errorf("button pixel = %v, want %v", got, want)
	}
	logged, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(logged), "click") {
		t.Errorf("log %q doesn't mention the click", logged)
	}
}

// near reports whether the channels of a and b differ by at most 2,
// the rounding error of scaling.
func near(a, b color.NRGBA) bool {
	d := func(x, y uint8) bool { return x-y <= 2 || y-x <= 2 }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func TestRenderUnknown(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"render", "nope", "-o", filepath.Join(t.TempDir(), "x.png")})
	if err := cmd.Execute(); err == nil {
		t.Error("unknown example rendered")
	}
}
