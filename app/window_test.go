// SPDX-License-Identifier: Unlicense OR MIT

package app_test

import (
	"errors"
	"testing"

	"strata.org/app"
	"strata.org/f32"
	"strata.org/font/gofont"
	"strata.org/io/key"
	"strata.org/io/pointer"
	"strata.org/layout"
	"strata.org/text/shape"
	"strata.org/widget"
)

func release(pos f32.Point) pointer.Event {
	return pointer.Event{Kind: pointer.Release, Buttons: pointer.ButtonPrimary, Position: pos}
}

func counter() layout.Widget {
	return layout.Col(layout.Rigid(widget.TextButton("+1", func(env *layout.Env) {
		if n, ok := layout.Lookup[*int](env); ok {
			*n++
		}
	})))
}

func TestWindowClick(t *testing.T) {
	var clicks int
	w := app.NewWindow(counter(),
		app.Size(200, 100),
		app.Shaper(shape.NewCache(gofont.Collection())),
		app.Local(&clicks),
	)
	// Events before the first frame are dropped.
	if err := w.Pointer(release(f32.Pt(5, 5))); err != nil {
		t.Fatal(err)
	}
	if clicks != 0 {
		t.Fatal("event delivered before the first frame")
	}
	if !w.Invalidated() {
		t.Error("new window is not invalidated")
	}
	if _, err := w.Frame(); err != nil {
		t.Fatal(err)
	}
	if w.Invalidated() {
		t.Error("window invalidated after a frame")
	}
	if err := w.Pointer(release(f32.Pt(5, 5))); err != nil {
		t.Fatal(err)
	}
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
	if !w.Invalidated() {
		t.Error("input didn't invalidate the window")
	}
	// Releases outside the window miss everything.
	w.Pointer(release(f32.Pt(500, 5)))
	if clicks != 1 {
		t.Errorf("clicks = %d after a release outside", clicks)
	}
	if got := w.State().MinSize(); got != f32.Pt(200, 100) {
		t.Errorf("root size = %v, want the window size", got)
	}
	w.Leave()
	if w.Input().HasCursor {
		t.Error("cursor after leaving")
	}
}

func TestWindowKeys(t *testing.T) {
	root := layout.Stateful[widget.Editor]{
		Build: func(gtx layout.Context, ed *widget.Editor) layout.Widget {
			return layout.Col(layout.Rigid(widget.TextBox{
				Editor: func(env *layout.Env) *widget.Editor {
					ed, _ := layout.Local[*widget.Editor](env)
					return ed
				},
			}))
		},
	}
	w := app.NewWindow(root, app.Size(200, 100), app.Shaper(shape.NewCache(gofont.Collection())))
	if _, err := w.Frame(); err != nil {
		t.Fatal(err)
	}
	typ := func(s string) {
		for _, c := range s {
			if err := w.Key(key.Event{Name: key.Name(string(c)), Text: string(c)}); err != nil {
				t.Fatal(err)
			}
		}
	}
	typ("lost")
	w.Pointer(pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonPrimary, Position: f32.Pt(5, 5)})
	w.Pointer(release(f32.Pt(5, 5)))
	typ("ok")
	ed := w.State().(*layout.StatefulState[widget.Editor]).Local()
	if got := ed.Text(); got != "ok" {
		t.Errorf("text = %q, want %q", got, "ok")
	}
}

func TestFrameAbort(t *testing.T) {
	var clicks int
	inconsistent := true
	calls := 0
	root := layout.Stateful[struct{}]{
		Build: func(gtx layout.Context, _ *struct{}) layout.Widget {
			calls++
			if inconsistent && calls%2 == 0 {
				return widget.Label{Text: "other"}
			}
			return counter()
		},
	}
	w := app.NewWindow(root, app.Size(200, 100), app.Local(&clicks))
	_, err := w.Frame()
	if !errors.Is(err, app.ErrAborted) {
		t.Fatalf("frame error = %v, want ErrAborted", err)
	}
	var se *layout.ShapeError
	if !errors.As(err, &se) {
		t.Errorf("frame error %v doesn't wrap a ShapeError", err)
	}
	if !w.Invalidated() {
		t.Error("aborted frame didn't request another")
	}
	w.Pointer(release(f32.Pt(5, 5)))
	if clicks != 0 {
		t.Error("input reached an aborted tree")
	}
	inconsistent = false
	if _, err := w.Frame(); err != nil {
		t.Fatalf("consistent frame failed: %v", err)
	}
	if err := w.Pointer(release(f32.Pt(5, 5))); err != nil {
		t.Fatal(err)
	}
	if clicks != 1 {
		t.Errorf("clicks = %d after recovery", clicks)
	}
	if got := w.Frames(); got != 1 {
		t.Errorf("frames = %d, want 1", got)
	}
}

func TestFramePanic(t *testing.T) {
	root := layout.Stateful[struct{}]{
		Build: func(gtx layout.Context, _ *struct{}) layout.Widget {
			panic("boom")
		},
	}
	w := app.NewWindow(root)
	defer func() {
		if e := recover(); e != "boom" {
			t.Errorf("recovered %v, want the original panic", e)
		}
	}()
	w.Frame()
	t.Error("panic was swallowed")
}

func TestInputBetweenFrames(t *testing.T) {
	var clicks int
	root := layout.Stateful[bool]{
		Build: func(gtx layout.Context, grown *bool) layout.Widget {
			b := widget.TextButton("+1", func(env *layout.Env) {
				if g, ok := layout.Local[*bool](env); ok {
					*g = true
				}
				if n, ok := layout.Lookup[*int](env); ok {
					*n++
				}
			})
			if !*grown {
				return layout.Col(layout.Rigid(b))
			}
			// A different shape than before the first click.
			return layout.Row(layout.Rigid(b), layout.Rigid(widget.Label{Text: "grown"}))
		},
	}
	w := app.NewWindow(root,
		app.Size(200, 100),
		app.Shaper(shape.NewCache(gofont.Collection())),
		app.Local(&clicks),
	)
	if _, err := w.Frame(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := w.Pointer(release(f32.Pt(5, 5))); err != nil {
			t.Fatalf("release %d: %v", i, err)
		}
	}
	if err := w.Key(key.Event{Name: key.NameReturn}); err != nil {
		t.Fatal(err)
	}
	if clicks != 3 {
		t.Errorf("clicks = %d, want 3", clicks)
	}
	if _, err := w.Frame(); err != nil {
		t.Fatal(err)
	}
}
