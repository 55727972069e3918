// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"strings"

	"strata.org/io/key"
)

// Editor holds editable text with a caret and a selection. It keeps
// no geometry; the TextBox that displays it translates positions to
// rune indices.
//
// An Editor is typically stored in the local state of a Stateful
// widget so that it survives frames.
type Editor struct {
	// SingleLine removes newlines from inserted text.
	SingleLine bool
	// Submit enables translation of carriage return keys to
	// SubmitEvents. If not enabled, carriage returns are inserted
	// as newlines in the text.
	Submit bool

	rr editBuffer
	// anchor is the byte offset of the selection end that stays
	// put while the caret moves. It equals the caret when nothing is
	// selected.
	anchor   int
	dragging bool

	// events is the list of events not yet processed.
	events []EditorEvent
}

type EditorEvent interface {
	isEditorEvent()
}

// A ChangeEvent is generated for every user change to the text.
type ChangeEvent struct{}

// A SubmitEvent is generated when Submit is set
// and a carriage return key is pressed.
type SubmitEvent struct {
	Text string
}

const selectAllKeys = key.Set("Short-A")

// Events returns available editor events.
func (e *Editor) Events() []EditorEvent {
	events := e.events
	e.events = nil
	return events
}

// Len is the length of the editor contents, in runes.
func (e *Editor) Len() int {
	return e.rr.runeOffset(e.rr.len())
}

// Text returns the contents of the editor.
func (e *Editor) Text() string {
	return e.rr.String()
}

// SetText replaces the contents of the editor, clearing any selection
// and placing the caret at the end. It does not generate a
// ChangeEvent.
func (e *Editor) SetText(s string) {
	if e.SingleLine {
		s = strings.ReplaceAll(s, "\n", "")
	}
	e.rr.setText(s)
	e.rr.Changed()
	e.anchor = e.rr.caret
}

// Caret returns the caret position in runes.
func (e *Editor) Caret() int {
	return e.rr.runeOffset(e.rr.caret)
}

// Selection returns the start and end of the selection in runes. They
// are equal when nothing is selected.
func (e *Editor) Selection() (start, end int) {
	start, end = e.rr.runeOffset(e.anchor), e.rr.runeOffset(e.rr.caret)
	if start > end {
		start, end = end, start
	}
	return start, end
}

// SetCaret moves the caret to the rune index caret and the other end
// of the selection to anchor.
func (e *Editor) SetCaret(caret, anchor int) {
	e.rr.caret = e.rr.byteOffset(caret)
	e.anchor = e.rr.byteOffset(anchor)
}

// SelectedText returns the selected text.
func (e *Editor) SelectedText() string {
	start, end := e.anchor, e.rr.caret
	if start > end {
		start, end = end, start
	}
	return e.rr.String()[start:end]
}

// SelectAll selects the whole text, leaving the caret at the end.
func (e *Editor) SelectAll() {
	e.anchor = 0
	e.rr.caret = e.rr.len()
}

// Insert replaces the selection with s and moves the caret past it.
func (e *Editor) Insert(s string) {
	if e.SingleLine {
		s = strings.ReplaceAll(s, "\n", "")
	}
	e.deleteSelection()
	e.rr.prepend(s)
	e.rr.caret += len(s)
	e.anchor = e.rr.caret
}

// Delete deletes the selection if there is one. Otherwise it deletes
// runes from the caret position. The sign of runes specifies the
// direction to delete: positive is forward, negative is backward.
func (e *Editor) Delete(runes int) {
	if !e.deleteSelection() {
		e.rr.deleteRunes(runes)
	}
	e.anchor = e.rr.caret
}

// Move the caret: positive distance moves forward, negative distance
// moves backward. If extend is false the selection collapses at the
// new caret.
func (e *Editor) Move(distance int, extend bool) {
	if !extend && e.anchor != e.rr.caret {
		// Collapse to the side of the selection in the direction
		// of movement.
		start, end := e.anchor, e.rr.caret
		if start > end {
			start, end = end, start
		}
		if distance < 0 {
			e.rr.caret = start
		} else {
			e.rr.caret = end
		}
		e.anchor = e.rr.caret
		return
	}
	e.rr.move(distance)
	if !extend {
		e.anchor = e.rr.caret
	}
}

// Click places the caret at the rune index idx and starts a drag. A
// click with extend set extends the selection instead.
func (e *Editor) Click(idx int, extend bool) {
	e.rr.caret = e.rr.byteOffset(idx)
	if !extend {
		e.anchor = e.rr.caret
	}
	e.dragging = true
}

// Drag extends the selection from the last click to the rune index idx.
// It does nothing when no drag is in progress.
func (e *Editor) Drag(idx int) {
	if !e.dragging {
		return
	}
	e.rr.caret = e.rr.byteOffset(idx)
}

// Release ends a drag.
func (e *Editor) Release() {
	e.dragging = false
}

// Dragging reports whether a drag is in progress.
func (e *Editor) Dragging() bool {
	return e.dragging
}

// Key processes a key press and reports whether it was handled.
func (e *Editor) Key(ke key.Event) bool {
	if ke.State != key.Press {
		return false
	}
	if e.Submit && (ke.Name == key.NameReturn || ke.Name == key.NameEnter) {
		if !ke.Modifiers.Contain(key.ModShift) {
			e.events = append(e.events, SubmitEvent{
				Text: e.Text(),
			})
			return true
		}
	}
	handled := e.command(ke)
	if !handled && ke.Text != "" && !ke.Modifiers.Contain(key.ModCtrl) && !ke.Modifiers.Contain(key.ModCommand) {
		e.Insert(ke.Text)
		handled = true
	}
	if e.rr.Changed() {
		e.events = append(e.events, ChangeEvent{})
	}
	return handled
}

func (e *Editor) command(k key.Event) bool {
	extend := k.Modifiers.Contain(key.ModShift)
	if selectAllKeys.Contains(k.Name, k.Modifiers) {
		e.SelectAll()
		return true
	}
	switch k.Name {
	case key.NameReturn, key.NameEnter:
		if e.SingleLine {
			return false
		}
		e.Insert("\n")
	case key.NameDeleteBackward:
		e.Delete(-1)
	case key.NameDeleteForward:
		e.Delete(1)
	case key.NameLeftArrow:
		e.Move(-1, extend)
	case key.NameRightArrow:
		e.Move(1, extend)
	case key.NameHome:
		e.moveStart(extend)
	case key.NameEnd:
		e.moveEnd(extend)
	default:
		return false
	}
	return true
}

// moveStart moves the caret to the start of its line.
func (e *Editor) moveStart(extend bool) {
	for e.rr.caret > 0 {
		r, s := e.rr.runeBefore(e.rr.caret)
		if r == '\n' {
			break
		}
		e.rr.caret -= s
	}
	if !extend {
		e.anchor = e.rr.caret
	}
}

// moveEnd moves the caret to the end of its line.
func (e *Editor) moveEnd(extend bool) {
	for e.rr.caret < e.rr.len() {
		r, s := e.rr.runeAt(e.rr.caret)
		if r == '\n' {
			break
		}
		e.rr.caret += s
	}
	if !extend {
		e.anchor = e.rr.caret
	}
}

// deleteSelection deletes the selected text and reports whether
// there was any.
func (e *Editor) deleteSelection() bool {
	if e.anchor == e.rr.caret {
		return false
	}
	e.rr.deleteRange(e.anchor, e.rr.caret)
	e.anchor = e.rr.caret
	return true
}

func (s ChangeEvent) isEditorEvent() {}
func (s SubmitEvent) isEditorEvent() {}
