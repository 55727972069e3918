// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"strata.org/f32"
	"strata.org/io/key"
	"strata.org/io/pointer"
	"strata.org/layout"
)

// Dropdown is a button that opens a list of options below it. Clicking
// an option calls OnSelect and closes the list; releasing the pointer
// anywhere else closes it without a selection.
type Dropdown struct {
	// Label is the text of the button.
	Label   string
	Options []string
	// OnSelect receives the environment of the dropdown and the
	// index of the chosen option.
	OnSelect func(env *layout.Env, i int)
}

func (d Dropdown) Layout(gtx layout.Context, slot *layout.State, cs layout.Constraints) {
	d.widget().Layout(gtx, slot, cs)
}

func (d Dropdown) Draw(gtx layout.Context, st layout.State, r f32.Rectangle, layer int, focus bool) {
	d.widget().Draw(gtx, st, r, layer, focus)
}

func (d Dropdown) HitLayer(gtx layout.Context, st layout.State, r f32.Rectangle, pos f32.Point) (int, bool) {
	return d.widget().HitLayer(gtx, st, r, pos)
}

func (d Dropdown) Pointer(gtx layout.Context, st layout.State, r f32.Rectangle, layer int, e pointer.Event, focus bool) layout.Result {
	return d.widget().Pointer(gtx, st, r, layer, e, focus)
}

func (d Dropdown) Key(gtx layout.Context, st layout.State, r f32.Rectangle, e key.Event, focus bool) {
	d.widget().Key(gtx, st, r, e, focus)
}

// widget builds the dropdown from its open flag.
func (d Dropdown) widget() layout.Stateful[bool] {
	return layout.Stateful[bool]{
		Build: func(gtx layout.Context, open *bool) layout.Widget {
			base := Button{
				Widget: layout.Row(
					layout.Rigid(Label{Text: d.Label}),
					layout.Rigid(Icon{Icon: themeOf(gtx).Icon.DropDown, Size: 16}),
				),
				OnClick: setOpen(true),
			}
			p := layout.Popup{
				Base:    base,
				OnClose: setOpen(false),
			}
			if *open {
				p.Overlay = layout.Col(layout.Iter{
					Len: len(d.Options),
					Child: func(i int) layout.Child {
						return layout.Expanded(TextButton(d.Options[i], func(env *layout.Env) {
							setOpen(false)(env)
							if d.OnSelect != nil {
								d.OnSelect(env.Parent, i)
							}
						}))
					},
				})
			}
			return p
		},
	}
}

func setOpen(v bool) func(env *layout.Env) {
	return func(env *layout.Env) {
		if open, ok := layout.Local[*bool](env); ok {
			*open = v
		}
	}
}
