// SPDX-License-Identifier: Unlicense OR MIT

// Package headless renders windows into images without a platform.
package headless

import (
	"image"

	"strata.org/app"
	"strata.org/f32"
	"strata.org/io/key"
	"strata.org/io/pointer"
	"strata.org/layout"
	"strata.org/raster"
)

// Window is a headless window backed by an image.
type Window struct {
	*app.Window
	size image.Point
	img  *image.RGBA
	r    raster.Rasterizer
}

// NewWindow creates a headless window of the given pixel size.
func NewWindow(root layout.Widget, width, height int, opts ...app.Option) *Window {
	opts = append(opts, app.Size(float32(width), float32(height)))
	return &Window{
		Window: app.NewWindow(root, opts...),
		size:   image.Pt(width, height),
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Frame draws a frame and rasterizes it.
func (w *Window) Frame() error {
	ops, err := w.Window.Frame()
	if err != nil {
		return err
	}
	w.r.Frame(ops, w.img)
	return nil
}

// Resize changes the size of the window. The next frame is drawn into
// a new image.
func (w *Window) Resize(width, height int) {
	w.size = image.Pt(width, height)
	w.img = image.NewRGBA(image.Rect(0, 0, width, height))
	w.Window.Resize(f32.Pt(float32(width), float32(height)))
}

// Screenshot returns a copy of the last frame.
func (w *Window) Screenshot() *image.RGBA {
	img := image.NewRGBA(w.img.Bounds())
	copy(img.Pix, w.img.Pix)
	return img
}

// Click sends a press and a release of the primary button at pos.
func (w *Window) Click(pos f32.Point) error {
	if err := w.Press(pos); err != nil {
		return err
	}
	return w.Release(pos)
}

// Press sends a press of the primary button at pos.
func (w *Window) Press(pos f32.Point) error {
	return w.Pointer(pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonPrimary, Position: pos})
}

// Release sends a release of the primary button at pos.
func (w *Window) Release(pos f32.Point) error {
	return w.Pointer(pointer.Event{Kind: pointer.Release, Buttons: pointer.ButtonPrimary, Position: pos})
}

// Move sends a move to pos with the buttons currently held.
func (w *Window) Move(pos f32.Point) error {
	return w.Pointer(pointer.Event{Kind: pointer.Move, Buttons: w.Input().Down, Position: pos})
}

// Type sends the key presses for every rune of s.
func (w *Window) Type(s string) error {
	for _, r := range s {
		if err := w.Key(key.Event{Name: key.Name(string(r)), Text: string(r), State: key.Press}); err != nil {
			return err
		}
	}
	return nil
}

// PressKey sends a press of the named key.
func (w *Window) PressKey(name key.Name, mods key.Modifiers) error {
	return w.Key(key.Event{Name: name, Modifiers: mods, State: key.Press})
}
