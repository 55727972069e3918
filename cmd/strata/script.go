// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"strata.org/app/headless"
	"strata.org/f32"
	"strata.org/io/key"
)

type actionKind uint8

const (
	actionClick actionKind = iota
	actionPress
	actionRelease
	actionMove
	actionLeave
	actionType
	actionKey
)

var actionNames = map[string]actionKind{
	"click":   actionClick,
	"press":   actionPress,
	"release": actionRelease,
	"move":    actionMove,
	"leave":   actionLeave,
	"type":    actionType,
	"key":     actionKey,
}

// action is a scripted input event.
type action struct {
	kind actionKind
	pos  f32.Point
	text string
	name key.Name
	mods key.Modifiers
}

func parseScript(lines []string) ([]action, error) {
	var script []action
	for _, l := range lines {
		a, err := parseAction(l)
		if err != nil {
			return nil, err
		}
		script = append(script, a)
	}
	return script, nil
}

func parseAction(s string) (action, error) {
	verb, arg, _ := strings.Cut(strings.TrimSpace(s), " ")
	kind, ok := actionNames[verb]
	if !ok {
		return action{}, fmt.Errorf("strata: unknown action %q", verb)
	}
	a := action{kind: kind}
	var err error
	switch kind {
	case actionClick, actionPress, actionRelease, actionMove:
		a.pos, err = parsePoint(arg)
	case actionType:
		a.text = arg
	case actionKey:
		a.name, a.mods, err = parseKey(strings.TrimSpace(arg))
	}
	if err != nil {
		return action{}, fmt.Errorf("strata: %s: %w", verb, err)
	}
	return a, nil
}

func parsePoint(s string) (f32.Point, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return f32.Point{}, fmt.Errorf("invalid position %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 32)
	if err != nil {
		return f32.Point{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 32)
	if err != nil {
		return f32.Point{}, err
	}
	return f32.Pt(float32(x), float32(y)), nil
}

func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("strata: invalid size %q", s)
	}
	w, err1 := strconv.Atoi(ws)
	h, err2 := strconv.Atoi(hs)
	if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("strata: invalid size %q", s)
	}
	return w, h, nil
}

// keyNames maps readable names to the key names of package key.
var keyNames = map[string]key.Name{
	"Left":      key.NameLeftArrow,
	"Right":     key.NameRightArrow,
	"Up":        key.NameUpArrow,
	"Down":      key.NameDownArrow,
	"Return":    key.NameReturn,
	"Enter":     key.NameEnter,
	"Escape":    key.NameEscape,
	"Home":      key.NameHome,
	"End":       key.NameEnd,
	"Backspace": key.NameDeleteBackward,
	"Delete":    key.NameDeleteForward,
	"Tab":       key.NameTab,
	"Space":     key.NameSpace,
}

// parseKey parses a key with optional modifier prefixes, such as
// "Short-A" or "Shift-Left".
func parseKey(s string) (key.Name, key.Modifiers, error) {
	if s == "" {
		return "", 0, fmt.Errorf("missing key")
	}
	parts := strings.Split(s, "-")
	var mods key.Modifiers
	for _, p := range parts[:len(parts)-1] {
		switch p {
		case "Short":
			mods |= key.ModShortcut
		case "Ctrl":
			mods |= key.ModCtrl
		case "Shift":
			mods |= key.ModShift
		case "Alt":
			mods |= key.ModAlt
		case "Cmd":
			mods |= key.ModCommand
		default:
			return "", 0, fmt.Errorf("unknown modifier %q", p)
		}
	}
	name := parts[len(parts)-1]
	if n, ok := keyNames[name]; ok {
		return n, mods, nil
	}
	return key.Name(name), mods, nil
}

func (a action) apply(w *headless.Window) error {
	switch a.kind {
	case actionClick:
		return w.Click(a.pos)
	case actionPress:
		return w.Press(a.pos)
	case actionRelease:
		return w.Release(a.pos)
	case actionMove:
		return w.Move(a.pos)
	case actionLeave:
		w.Leave()
		return nil
	case actionType:
		return w.Type(a.text)
	case actionKey:
		return w.PressKey(a.name, a.mods)
	default:
		panic("unreachable")
	}
}

func (a action) String() string {
	switch a.kind {
	case actionClick:
		return fmt.Sprintf("click %v", a.pos)
	case actionPress:
		return fmt.Sprintf("press %v", a.pos)
	case actionRelease:
		return fmt.Sprintf("release %v", a.pos)
	case actionMove:
		return fmt.Sprintf("move %v", a.pos)
	case actionLeave:
		return "leave"
	case actionType:
		return fmt.Sprintf("type %q", a.text)
	case actionKey:
		if a.mods != 0 {
			return fmt.Sprintf("key %v-%s", a.mods, a.name)
		}
		return fmt.Sprintf("key %s", a.name)
	default:
		panic("unreachable")
	}
}
