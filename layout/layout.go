// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"

	"strata.org/f32"
	"strata.org/io/key"
	"strata.org/io/pointer"
)

// Widget is a value that can be laid out, drawn and receive input.
// A Widget holds only configuration; everything that persists across
// frames lives in its State.
//
// Layout is called once per frame before any other method. It stores
// the widget's state in slot, reusing the previous state when it has
// the widget's type. The other methods receive the state laid out in
// the same frame together with the rectangle the parent assigned.
type Widget interface {
	Layout(gtx Context, slot *State, cs Constraints)
	// Draw draws layer of the widget into r. Layers above
	// st.ExtraLayers() are never requested.
	Draw(gtx Context, st State, r f32.Rectangle, layer int, focus bool)
	// HitLayer reports the highest layer a hit at pos should be
	// routed to, or false if pos misses the widget.
	HitLayer(gtx Context, st State, r f32.Rectangle, pos f32.Point) (int, bool)
	Pointer(gtx Context, st State, r f32.Rectangle, layer int, e pointer.Event, focus bool) Result
	// Key is only called on the focused path.
	Key(gtx Context, st State, r f32.Rectangle, e key.Event, focus bool)
}

// State is the persistent state of a widget slot.
type State interface {
	// MinSize is the size computed by the last Layout.
	MinSize() f32.Point
	// ExtraLayers is the number of layers above layer 0 the widget
	// draws and receives input in.
	ExtraLayers() int
}

// Result is returned from pointer dispatch.
type Result struct {
	// DemandFocus requests keyboard focus for the widget.
	DemandFocus bool
}

// Leaf provides the default behavior of widgets without layers.
// Embed it and implement Layout and the methods that differ.
type Leaf struct{}

// Sized is the state of a widget that needs nothing but its size.
type Sized struct {
	Size f32.Point
}

// ShapeError is the panic value of StateOf when a widget receives a
// state it did not lay out. It means a widget tree was built with a
// different shape than in the layout of the same frame.
type ShapeError struct {
	Widget string
	Want   string
	Got    string
}

// Spacer is an empty widget of a fixed size.
type Spacer struct {
	Width, Height float32
}

func (Leaf) Draw(gtx Context, st State, r f32.Rectangle, layer int, focus bool) {}

func (Leaf) HitLayer(gtx Context, st State, r f32.Rectangle, pos f32.Point) (int, bool) {
	return 0, r.Contains(pos)
}

func (Leaf) Pointer(gtx Context, st State, r f32.Rectangle, layer int, e pointer.Event, focus bool) Result {
	return Result{}
}

func (Leaf) Key(gtx Context, st State, r f32.Rectangle, e key.Event, focus bool) {}

func (s *Sized) MinSize() f32.Point { return s.Size }

func (s *Sized) ExtraLayers() int { return 0 }

func (s Spacer) Layout(gtx Context, slot *State, cs Constraints) {
	Reuse[Sized](slot).Size = f32.Pt(s.Width, s.Height)
}

func (s Spacer) Draw(gtx Context, st State, r f32.Rectangle, layer int, focus bool) {}

// HitLayer never hits, so clicks pass to the widgets around a
// spacer.
func (s Spacer) HitLayer(gtx Context, st State, r f32.Rectangle, pos f32.Point) (int, bool) {
	return 0, false
}

func (s Spacer) Pointer(gtx Context, st State, r f32.Rectangle, layer int, e pointer.Event, focus bool) Result {
	return Result{}
}

func (s Spacer) Key(gtx Context, st State, r f32.Rectangle, e key.Event, focus bool) {}

// Reuse returns the state in slot if it has type PT. Otherwise it
// replaces the slot with a fresh zero T and returns that. Widgets call
// Reuse at the start of Layout.
func Reuse[T any, PT interface {
	*T
	State
}](slot *State) PT {
	if s, ok := (*slot).(PT); ok && s != nil {
		return s
	}
	s := PT(new(T))
	*slot = s
	return s
}

// StateOf returns st as a PT. It panics with a *ShapeError naming w
// if st has another type.
func StateOf[PT State](st State, w any) PT {
	if s, ok := st.(PT); ok {
		return s
	}
	var want PT
	panic(&ShapeError{
		Widget: fmt.Sprintf("%T", w),
		Want:   fmt.Sprintf("%T", want),
		Got:    fmt.Sprintf("%T", st),
	})
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("layout: %s received state %s, want %s", e.Widget, e.Got, e.Want)
}
