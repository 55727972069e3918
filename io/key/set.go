// SPDX-License-Identifier: Unlicense OR MIT

package key

import "strings"

// Set is an expression that describes a set of key combinations, in the form
// "<modifiers>-<keyset>|...".  Modifiers are separated by dashes, optional
// modifiers are enclosed by parentheses.  A key set is either a literal key
// name or a list of key names separated by commas and enclosed in brackets.
//
// The "Short" modifier matches the shortcut modifier (ModShortcut).
//
// Examples:
//
//   - A|B matches the A and B keys
//   - [A,B] also matches the A and B keys
//   - Shift-A matches A key if shift is pressed, and no other modifier.
//   - Shift-(Ctrl)-A matches A if shift is pressed, and optionally ctrl.
type Set string

// Contains reports whether the set matches the key name with the
// given modifiers.
func (k Set) Contains(name Name, mods Modifiers) bool {
	ks := string(k)
	for len(ks) > 0 {
		// Cut next key expression.
		chord, rest, _ := cut(ks, "|")
		ks = rest
		// Separate key set and modifier set.
		var modSet, keySet string
		sep := strings.LastIndex(chord, "-")
		if sep != -1 {
			modSet, keySet = chord[:sep], chord[sep+1:]
		} else {
			modSet, keySet = "", chord
		}
		if !keySetContains(keySet, name) {
			continue
		}
		if modSetContains(modSet, mods) {
			return true
		}
	}
	return false
}

func keySetContains(keySet string, name Name) bool {
	// Check for single key match.
	if keySet == string(name) {
		return true
	}
	// Check for set match.
	if len(keySet) < 2 || keySet[0] != '[' || keySet[len(keySet)-1] != ']' {
		return false
	}
	keySet = keySet[1 : len(keySet)-1]
	for len(keySet) > 0 {
		key, rest, _ := cut(keySet, ",")
		keySet = rest
		if key == string(name) {
			return true
		}
	}
	return false
}

func modSetContains(modSet string, mods Modifiers) bool {
	var smods Modifiers
	for len(modSet) > 0 {
		mod, rest, _ := cut(modSet, "-")
		modSet = rest
		if len(mod) >= 2 && mod[0] == '(' && mod[len(mod)-1] == ')' {
			mods &^= modFor(mod[1 : len(mod)-1])
		} else {
			smods |= modFor(mod)
		}
	}
	return mods == smods
}

// modFor returns the Modifiers for a string representation.
func modFor(name string) Modifiers {
	switch name {
	case string(NameCtrl):
		return ModCtrl
	case string(NameShift):
		return ModShift
	case string(NameAlt):
		return ModAlt
	case string(NameSuper):
		return ModSuper
	case string(NameCommand):
		return ModCommand
	case "Short":
		return ModShortcut
	}
	return 0
}

func cut(s, sep string) (before, after string, found bool) {
	if i := strings.Index(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}
	return s, "", false
}
