// SPDX-License-Identifier: Unlicense OR MIT

/*
Package input describes the ambient input state a window hands to
its widgets while drawing.

A State is a snapshot. Widgets read it to render hover and pressed
feedback but never modify it; the window driver replaces it as events
arrive.
*/
package input

import (
	"strata.org/f32"
	"strata.org/io/key"
	"strata.org/io/pointer"
)

// State is the current cursor and modifier state of a window.
type State struct {
	// Cursor is the last known cursor position. It is only
	// meaningful if HasCursor is set.
	Cursor    f32.Point
	HasCursor bool
	// Down is the set of mouse buttons held.
	Down      pointer.Buttons
	Modifiers key.Modifiers
}

// Empty is the state with no cursor, no buttons and no modifiers.
// Widgets beneath an overlay are drawn with it.
var Empty State

// Hovering reports whether the cursor is inside r.
func (s State) Hovering(r f32.Rectangle) bool {
	return s.HasCursor && r.Contains(s.Cursor)
}

// Pressing reports whether the cursor is inside r while the
// primary button is held.
func (s State) Pressing(r f32.Rectangle) bool {
	return s.Hovering(r) && s.Down.Contain(pointer.ButtonPrimary)
}

// Update returns the state after e. A Press adds e's buttons to
// Down and a Release removes them.
func (s State) Update(e pointer.Event) State {
	s.Cursor = e.Position
	s.HasCursor = true
	s.Modifiers = e.Modifiers
	switch e.Kind {
	case pointer.Press:
		s.Down |= e.Buttons
	case pointer.Release:
		s.Down &^= e.Buttons
	}
	return s
}

// Leave returns the state after the cursor left the window.
func (s State) Leave() State {
	s.HasCursor = false
	s.Down = 0
	return s
}
