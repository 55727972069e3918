// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer implements pointer events.
package pointer

import (
	"strings"

	"strata.org/f32"
	"strata.org/io/key"
)

// Event is a pointer event.
type Event struct {
	Kind Kind
	// Buttons are the set of pressed mouse buttons for this event.
	Buttons Buttons
	// Position is the coordinates of the event in window
	// coordinates. Widgets compare it against the rectangle they
	// were assigned.
	Position f32.Point
	// Modifiers is the set of active modifiers when
	// the mouse button was pressed.
	Modifiers key.Modifiers
}

// Kind of an Event.
type Kind uint

// Buttons is a set of mouse buttons
type Buttons uint8

const (
	// A Press event is generated when a pointer is pressed.
	Press Kind = 1 << iota
	// A Release event is generated when a pointer is released.
	Release
	// A Move event is generated when a pointer moves, with or
	// without buttons held.
	Move
)

const (
	// ButtonPrimary is the primary button, usually the left button for a
	// right-handed user.
	ButtonPrimary Buttons = 1 << iota
	// ButtonSecondary is the secondary button, usually the right button for a
	// right-handed user.
	ButtonSecondary
	// ButtonTertiary is the tertiary button, usually the middle button.
	ButtonTertiary
)

// Contain reports whether the set b contains
// all of the buttons.
func (b Buttons) Contain(buttons Buttons) bool {
	return b&buttons == buttons
}

func (t Kind) String() string {
	var buf strings.Builder
	for tt := Kind(1); tt > 0 && tt <= Move; tt <<= 1 {
		if t&tt > 0 {
			if buf.Len() > 0 {
				buf.WriteByte('|')
			}
			buf.WriteString((t & tt).string())
		}
	}
	return buf.String()
}

func (t Kind) string() string {
	switch t {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Move:
		return "Move"
	default:
		panic("unknown Type")
	}
}

func (b Buttons) String() string {
	var strs []string
	if b.Contain(ButtonPrimary) {
		strs = append(strs, "ButtonPrimary")
	}
	if b.Contain(ButtonSecondary) {
		strs = append(strs, "ButtonSecondary")
	}
	if b.Contain(ButtonTertiary) {
		strs = append(strs, "ButtonTertiary")
	}
	return strings.Join(strs, "|")
}
