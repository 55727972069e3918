// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"fmt"
	"image/color"

	"golang.org/x/exp/shiny/materialdesign/icons"

	"strata.org/font"
)

// Theme is the table of drawing parameters.
type Theme struct {
	// Rect styles filled controls such as buttons.
	Rect Styles[RectStyle]
	// RectOutline styles input controls such as text boxes.
	RectOutline Styles[RectStyle]
	Text        Styles[TextStyle]
	Icon        struct {
		CheckBoxChecked   *Icon
		CheckBoxUnchecked *Icon
		DropDown          *Icon
	}
}

// Variant selects a representation of a control.
type Variant uint8

const (
	Normal Variant = iota
	Active
	Danger
)

// Variants holds a style per Variant.
type Variants[T any] struct {
	Normal, Active, Danger T
}

// Styles holds the variants of enabled and disabled controls.
type Styles[T any] struct {
	Enabled, Disabled Variants[T]
}

// RectStyle are the parameters of a rectangular control.
type RectStyle struct {
	Background color.NRGBA
	// Hover and Pressed replace Background while the cursor is
	// over the control or pressing it.
	Hover       color.NRGBA
	Pressed     color.NRGBA
	Foreground  color.NRGBA
	Border      color.NRGBA
	BorderWidth float32
	// Padding separates the border from the content.
	Padding float32
	// Margin separates the border from the edge of the control.
	Margin float32
}

// TextStyle are the parameters of text.
type TextStyle struct {
	Font  font.Font
	Size  float32
	Color color.NRGBA
	// Selection is the background of selected text.
	Selection color.NRGBA
}

// Get returns the style for variant v.
func (s Styles[T]) Get(v Variant, enabled bool) T {
	vs := s.Disabled
	if enabled {
		vs = s.Enabled
	}
	switch v {
	case Active:
		return vs.Active
	case Danger:
		return vs.Danger
	default:
		return vs.Normal
	}
}

// Uniform returns the styles with every variant set to st.
func Uniform[T any](st T) Styles[T] {
	vs := Variants[T]{Normal: st, Active: st, Danger: st}
	return Styles[T]{Enabled: vs, Disabled: vs}
}

// NewTheme returns the default theme.
func NewTheme() *Theme {
	t := &Theme{}
	button := RectStyle{
		Background:  rgb(0x000000),
		Hover:       rgb(0x333333),
		Pressed:     rgb(0x444444),
		Foreground:  rgb(0xffffff),
		Border:      rgb(0xffffff),
		BorderWidth: 2,
		Padding:     16,
	}
	t.Rect = Uniform(button)
	t.Rect.Enabled.Active = recolor(button, rgb(0x33aaff))
	t.Rect.Enabled.Danger = recolor(button, rgb(0xff7700))

	outline := RectStyle{
		Background:  rgb(0x3a3a3a),
		Hover:       rgb(0x3a3a3a),
		Pressed:     rgb(0x3a3a3a),
		Foreground:  rgb(0xffffff),
		Border:      rgb(0x3a3a3a),
		BorderWidth: 1,
		Padding:     4,
	}
	t.RectOutline = Uniform(outline)
	// Focused input controls are drawn Active.
	t.RectOutline.Enabled.Active.Border = rgb(0x008ddd)
	t.RectOutline.Enabled.Danger.Border = rgb(0xff7700)

	t.Text = Uniform(TextStyle{
		Font:      font.Font{Typeface: "Go"},
		Size:      16,
		Color:     rgb(0xffffff),
		Selection: rgb(0xf30021),
	})

	t.Icon.CheckBoxChecked = mustIcon(NewIcon(icons.ToggleCheckBox))
	t.Icon.CheckBoxUnchecked = mustIcon(NewIcon(icons.ToggleCheckBoxOutlineBlank))
	t.Icon.DropDown = mustIcon(NewIcon(icons.NavigationArrowDropDown))
	return t
}

// recolor returns st with every background replaced by bg.
func recolor(st RectStyle, bg color.NRGBA) RectStyle {
	st.Background, st.Hover, st.Pressed = bg, bg, bg
	return st
}

func (v Variant) String() string {
	switch v {
	case Normal:
		return "Normal"
	case Active:
		return "Active"
	case Danger:
		return "Danger"
	default:
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
}

func mustIcon(ic *Icon, err error) *Icon {
	if err != nil {
		panic(err)
	}
	return ic
}

func rgb(c uint32) color.NRGBA {
	return argb(0xff000000 | c)
}

func argb(c uint32) color.NRGBA {
	return color.NRGBA{A: uint8(c >> 24), R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}
