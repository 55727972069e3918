// SPDX-License-Identifier: Unlicense OR MIT

// Package material implements the theme table and the stateless
// drawing of controls.
//
// User interface controls are split into two parts: the widget in
// package widget owns layout, state and input, while this package
// holds the parameters and routines that draw it.
//
// A Theme is a read-only table keyed by the kind of drawing, whether
// the control is enabled and its Variant:
//
//	th := material.NewTheme()
//	st := th.Rect.Get(material.Danger, true)
//	material.DrawRect(ops, st, r, material.Hovered)
//
// # Customization
//
// Adjust the fields of a Theme to change the look of every control
// drawn with it, or load a partial table from TOML with LoadTheme:
//
//	[rect.enabled.normal]
//	background = "#000000"
//	hover = "darkslategray"
//
//	[text.enabled.normal]
//	size = 20
package material
