// SPDX-License-Identifier: Unlicense OR MIT

// Package example contains demonstration widget trees. Each function
// returns the root widget of a window.
package example

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"strata.org/layout"
	"strata.org/widget"
)

// Func returns the root widget of an example.
type Func func() layout.Widget

// All maps example names to their root widgets.
var All = map[string]Func{
	"basic":    Basic,
	"toggle":   Toggle,
	"counter":  Counter,
	"tempconv": TempConv,
	"textbox":  TextBox,
	"dropdown": Dropdown,
}

// Names returns the sorted names of All.
func Names() []string {
	names := make([]string, 0, len(All))
	for n := range All {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Basic shows a dropdown, a group of check boxes of which exactly one
// is checked, an independent check box and a button.
func Basic() layout.Widget {
	choice := func(i uint8, checked uint8) layout.Child {
		return layout.Rigid(widget.Checkbox{
			Checked: checked == i,
			OnClick: func(env *layout.Env) {
				if c, ok := layout.Local[*uint8](env); ok {
					*c = i
				}
			},
		})
	}
	return layout.Row(
		layout.Rigid(layout.Stateful[uint8]{
			Build: func(gtx layout.Context, c *uint8) layout.Widget {
				return layout.Col(
					layout.Rigid(Options("Popup", 8, nil)),
					choice(0, *c),
					choice(1, *c),
					choice(2, *c),
					layout.Rigid(layout.Stateful[bool]{
						Build: func(gtx layout.Context, b *bool) layout.Widget {
							return widget.Checkbox{Checked: *b, OnClick: toggle}
						},
					}),
				)
			},
		}),
		layout.Rigid(widget.TextButton("Hello", nil)),
	)
}

// Toggle shows two buttons and a check box flipping a shared flag.
func Toggle() layout.Widget {
	return layout.Stateful[bool]{
		Build: func(gtx layout.Context, state *bool) layout.Widget {
			a, b := strconv.FormatBool(*state), strconv.FormatBool(!*state)
			return layout.Row(
				layout.Expanded(widget.TextButton(a, toggle)),
				layout.Expanded(widget.TextButton(b, toggle)),
				layout.Expanded(widget.Checkbox{Checked: *state, OnClick: toggle}),
			)
		},
	}
}

// Counter is the counter of the 7GUIs benchmark: a label showing a
// count and a button incrementing it.
func Counter() layout.Widget {
	return layout.Stateful[uint32]{
		Build: func(gtx layout.Context, count *uint32) layout.Widget {
			return layout.Row(
				layout.Rigid(widget.Label{Text: strconv.FormatUint(uint64(*count), 10)}),
				layout.Rigid(widget.TextButton("Count", func(env *layout.Env) {
					if n, ok := layout.Local[*uint32](env); ok {
						*n++
					}
				})),
			)
		},
	}
}

// Temperatures is the state of TempConv.
type Temperatures struct {
	Celsius, Fahrenheit widget.Editor
}

// TempConv is the temperature converter of the 7GUIs benchmark.
// Editing either temperature updates the other one whenever the
// edited text is a number.
func TempConv() layout.Widget {
	return layout.Stateful[Temperatures]{
		Init: func() Temperatures {
			return Temperatures{
				Celsius:    widget.Editor{SingleLine: true},
				Fahrenheit: widget.Editor{SingleLine: true},
			}
		},
		Build: func(gtx layout.Context, _ *Temperatures) layout.Widget {
			return layout.Row(
				layout.Rigid(widget.TextBox{
					Editor: temperature(func(t *Temperatures) *widget.Editor { return &t.Celsius }),
					OnChange: func(env *layout.Env) {
						t, _ := layout.Local[*Temperatures](env)
						if c, err := parseFloat(t.Celsius.Text()); err == nil {
							t.Fahrenheit.SetText(formatFloat(c*9/5 + 32))
						}
					},
				}),
				layout.Rigid(widget.Label{Text: "Celsius = "}),
				layout.Rigid(widget.TextBox{
					Editor: temperature(func(t *Temperatures) *widget.Editor { return &t.Fahrenheit }),
					OnChange: func(env *layout.Env) {
						t, _ := layout.Local[*Temperatures](env)
						if f, err := parseFloat(t.Fahrenheit.Text()); err == nil {
							t.Celsius.SetText(formatFloat((f - 32) * 5 / 9))
						}
					},
				}),
				layout.Rigid(widget.Label{Text: "Fahrenheit"}),
			)
		},
	}
}

// Form is the state of TextBox.
type Form struct {
	A, B    widget.Editor
	Checked bool
}

// TextBox shows two text boxes, a label and a check box sharing the
// space of a row.
func TextBox() layout.Widget {
	return layout.Stateful[Form]{
		Build: func(gtx layout.Context, f *Form) layout.Widget {
			return layout.Row(
				layout.Expanded(widget.TextBox{Editor: form(func(f *Form) *widget.Editor { return &f.A })}),
				layout.Expanded(widget.Label{Text: "Hello"}),
				layout.Expanded(widget.TextBox{Editor: form(func(f *Form) *widget.Editor { return &f.B })}),
				layout.Rigid(widget.Checkbox{
					Checked: f.Checked,
					OnClick: func(env *layout.Env) {
						if f, ok := layout.Local[*Form](env); ok {
							f.Checked = !f.Checked
						}
					},
				}),
			)
		},
	}
}

// Dropdown shows a dropdown and the option last chosen from it.
func Dropdown() layout.Widget {
	return layout.Stateful[int]{
		Init: func() int { return -1 },
		Build: func(gtx layout.Context, chosen *int) layout.Widget {
			status := "Nothing chosen"
			if *chosen >= 0 {
				status = fmt.Sprintf("Chose option %d", *chosen+1)
			}
			return layout.Col(
				layout.Rigid(Options("Choose", 8, func(env *layout.Env, i int) {
					if c, ok := layout.Local[*int](env); ok {
						*c = i
					}
				})),
				layout.Rigid(widget.Label{Text: status}),
			)
		},
	}
}

// Options returns a dropdown with n options named "Option 1" to
// "Option n".
func Options(label string, n int, onSelect func(env *layout.Env, i int)) widget.Dropdown {
	opts := make([]string, n)
	for i := range opts {
		opts[i] = fmt.Sprintf("Option %d", i+1)
	}
	return widget.Dropdown{Label: label, Options: opts, OnSelect: onSelect}
}

func toggle(env *layout.Env) {
	if b, ok := layout.Local[*bool](env); ok {
		*b = !*b
	}
}

func temperature(field func(t *Temperatures) *widget.Editor) func(env *layout.Env) *widget.Editor {
	return func(env *layout.Env) *widget.Editor {
		t, ok := layout.Local[*Temperatures](env)
		if !ok {
			return nil
		}
		return field(t)
	}
}

func form(field func(f *Form) *widget.Editor) func(env *layout.Env) *widget.Editor {
	return func(env *layout.Env) *widget.Editor {
		f, ok := layout.Local[*Form](env)
		if !ok {
			return nil
		}
		return field(f)
	}
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
