// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"errors"
	"fmt"
	"image/color"

	"strata.org/f32"
	"strata.org/io/input"
	"strata.org/io/key"
	"strata.org/io/pointer"
	"strata.org/layout"
	"strata.org/op"
	"strata.org/op/paint"
	"strata.org/text"
	"strata.org/widget/material"
)

// Window drives a widget tree. It is not safe for concurrent use.
type Window struct {
	root   layout.Widget
	cnf    Config
	env    *layout.Env
	state  layout.State
	input  input.State
	ops    op.Ops
	frames int
	// stale is set when state may no longer match the tree, because
	// input ran callbacks or the window changed since the last layout.
	stale   bool
	invalid bool
}

// Config describes a Window configuration.
type Config struct {
	// Size is the size of the window.
	Size   f32.Point
	Shaper text.Shaper
	Theme  *material.Theme
	// Local is exposed to the root widget as the outermost
	// environment level.
	Local any
}

// Option configures a window.
type Option func(*Config)

// ErrAborted is wrapped by the errors of frames and events aborted
// by a widget tree that changed shape.
var ErrAborted = errors.New("app: frame aborted")

var background = color.NRGBA{A: 0xff}

// NewWindow creates a window for root. The window is invalidated so
// that the first frame is drawn.
func NewWindow(root layout.Widget, options ...Option) *Window {
	w := &Window{root: root, invalid: true}
	w.Option(options...)
	if w.cnf.Theme == nil {
		w.cnf.Theme = material.NewTheme()
	}
	if w.cnf.Local != nil {
		w.env = &layout.Env{Local: w.cnf.Local}
	}
	return w
}

// Option applies options to the window.
func (w *Window) Option(opts ...Option) {
	for _, o := range opts {
		o(&w.cnf)
	}
	w.invalid = true
}

// Resize changes the window size.
func (w *Window) Resize(size f32.Point) {
	if size != w.cnf.Size {
		w.cnf.Size = size
		w.stale = true
		w.invalid = true
	}
}

// Size returns the window size.
func (w *Window) Size() f32.Point {
	return w.cnf.Size
}

// Frame lays out and draws the widget tree. The returned operations
// are valid until the next call to Frame.
func (w *Window) Frame() (ops *op.Ops, err error) {
	w.invalid = false
	w.stale = true
	defer w.recover(&err)
	w.ops.Reset()
	gtx := w.context(&w.ops, w.input)
	w.root.Layout(gtx, &w.state, layout.Exact(w.cnf.Size))
	paint.Fill(&w.ops, background)
	r := w.rect()
	for l := 0; l <= w.state.ExtraLayers(); l++ {
		w.root.Draw(gtx, w.state, r, l, true)
	}
	w.stale = false
	w.frames++
	return &w.ops, nil
}

// Pointer delivers a pointer event to the layer hit at its position.
// Events before the first frame are ignored.
func (w *Window) Pointer(e pointer.Event) (err error) {
	w.input = w.input.Update(e)
	w.invalid = true
	if w.frames == 0 {
		return nil
	}
	defer w.recover(&err)
	gtx := w.context(nil, w.input)
	w.layout(gtx)
	r := w.rect()
	layer, hit := w.root.HitLayer(gtx, w.state, r, e.Position)
	if !hit {
		return nil
	}
	w.root.Pointer(gtx, w.state, r, layer, e, true)
	return nil
}

// Leave clears the cursor after it left the window.
func (w *Window) Leave() {
	w.input = w.input.Leave()
	w.invalid = true
}

// Key delivers a key event along the focus path.
func (w *Window) Key(e key.Event) (err error) {
	w.input.Modifiers = e.Modifiers
	w.invalid = true
	if w.frames == 0 {
		return nil
	}
	defer w.recover(&err)
	gtx := w.context(nil, w.input)
	w.layout(gtx)
	w.root.Key(gtx, w.state, w.rect(), e, true)
	return nil
}

// Invalidated reports whether the window needs a new frame.
func (w *Window) Invalidated() bool {
	return w.invalid
}

// Invalidate requests a new frame.
func (w *Window) Invalidate() {
	w.invalid = true
}

// State returns the state of the root widget.
func (w *Window) State() layout.State {
	return w.state
}

// Input returns the input state.
func (w *Window) Input() input.State {
	return w.input
}

// Frames returns the number of frames drawn.
func (w *Window) Frames() int {
	return w.frames
}

// layout lays out the tree again if the state may be stale, and marks
// it stale for the next event since dispatch may run callbacks.
func (w *Window) layout(gtx layout.Context) {
	if w.stale {
		w.root.Layout(gtx, &w.state, layout.Exact(w.cnf.Size))
	}
	w.stale = true
}

func (w *Window) rect() f32.Rectangle {
	return f32.Rectangle{Max: w.cnf.Size}
}

func (w *Window) context(ops *op.Ops, in input.State) layout.Context {
	return layout.Context{
		Shaper: w.cnf.Shaper,
		Theme:  w.cnf.Theme,
		Ops:    ops,
		Input:  in,
		Env:    w.env,
	}
}

// recover turns a *layout.ShapeError panic into an error. The tree
// is laid out again before it receives more input.
func (w *Window) recover(err *error) {
	e := recover()
	if e == nil {
		return
	}
	se, ok := e.(*layout.ShapeError)
	if !ok {
		panic(e)
	}
	w.stale = true
	w.invalid = true
	*err = fmt.Errorf("%w: %w", ErrAborted, se)
}

// Size sets the size of the window.
func Size(width, height float32) Option {
	return func(cnf *Config) {
		cnf.Size = f32.Pt(width, height)
	}
}

// Shaper sets the text shaper.
func Shaper(s text.Shaper) Option {
	return func(cnf *Config) {
		cnf.Shaper = s
	}
}

// Theme sets the theme. Windows without a theme use
// material.NewTheme.
func Theme(th *material.Theme) Option {
	return func(cnf *Config) {
		cnf.Theme = th
	}
}

// Local exposes v to the root widget through the environment.
func Local(v any) Option {
	return func(cnf *Config) {
		cnf.Local = v
	}
}
