// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"strata.org/f32"
	"strata.org/io/input"
	"strata.org/io/key"
	"strata.org/io/pointer"
)

// Popup shows an optional Overlay anchored below Base. The overlay
// draws and receives input in layers above those of the base, and it
// never affects the size of the Popup.
//
// While the overlay is shown, a release outside of it calls OnClose
// instead of reaching any widget.
type Popup struct {
	Base Widget
	// Overlay is nil when the popup is closed.
	Overlay Widget
	OnClose func(env *Env)
}

// PopupState is the state of a Popup.
type PopupState struct {
	base    State
	overlay State

	extraLayers int
}

func (s *PopupState) MinSize() f32.Point {
	if s.base == nil {
		return f32.Point{}
	}
	return s.base.MinSize()
}

func (s *PopupState) ExtraLayers() int { return s.extraLayers }

// Open reports whether the overlay was laid out in the last Layout.
func (s *PopupState) Open() bool { return s.overlay != nil }

func (p Popup) Layout(gtx Context, slot *State, cs Constraints) {
	s := Reuse[PopupState](slot)
	p.Base.Layout(gtx, &s.base, cs)
	if p.Overlay == nil {
		// A reopened overlay starts over.
		s.overlay = nil
		s.extraLayers = s.base.ExtraLayers()
		return
	}
	p.Overlay.Layout(gtx, &s.overlay, Loose())
	s.extraLayers = s.base.ExtraLayers() + 1 + s.overlay.ExtraLayers()
}

func (p Popup) Draw(gtx Context, st State, r f32.Rectangle, layer int, focus bool) {
	s := StateOf[*PopupState](st, p)
	if !p.open(s) {
		p.Base.Draw(gtx, s.base, r, layer, focus)
		return
	}
	if l, ok := s.overlayLayer(layer); ok {
		p.Overlay.Draw(gtx, s.overlay, s.overlayRect(r), l, focus)
		return
	}
	p.Base.Draw(gtx.WithInput(input.Empty), s.base, r, layer, focus)
}

// HitLayer tests the overlay before the base.
func (p Popup) HitLayer(gtx Context, st State, r f32.Rectangle, pos f32.Point) (int, bool) {
	s := StateOf[*PopupState](st, p)
	if p.open(s) {
		if l, ok := p.Overlay.HitLayer(gtx, s.overlay, s.overlayRect(r), pos); ok {
			return l + s.base.ExtraLayers() + 1, true
		}
	}
	return p.Base.HitLayer(gtx, s.base, r, pos)
}

func (p Popup) Pointer(gtx Context, st State, r f32.Rectangle, layer int, e pointer.Event, focus bool) Result {
	s := StateOf[*PopupState](st, p)
	if !p.open(s) {
		return p.Base.Pointer(gtx, s.base, r, layer, e, focus)
	}
	or := s.overlayRect(r)
	if e.Kind == pointer.Release && !or.Contains(e.Position) {
		if p.OnClose != nil {
			p.OnClose(gtx.Env)
		}
		return Result{}
	}
	l, _ := s.overlayLayer(layer)
	return p.Overlay.Pointer(gtx, s.overlay, or, l, e, focus)
}

func (p Popup) Key(gtx Context, st State, r f32.Rectangle, e key.Event, focus bool) {
	s := StateOf[*PopupState](st, p)
	if p.open(s) {
		p.Overlay.Key(gtx, s.overlay, s.overlayRect(r), e, focus)
		return
	}
	p.Base.Key(gtx, s.base, r, e, focus)
}

// open reports whether the overlay is shown, panicking if it was
// not shown during layout.
func (p Popup) open(s *PopupState) bool {
	if (p.Overlay == nil) != (s.overlay == nil) {
		want, got := "closed", "open"
		if p.Overlay != nil {
			want, got = got, want
		}
		panic(&ShapeError{Widget: "layout.Popup", Want: want, Got: got})
	}
	return p.Overlay != nil
}

// overlayLayer maps a layer of the Popup to a layer of the overlay.
// It reports false for the layers of the base; those map to overlay
// layer 0.
func (s *PopupState) overlayLayer(layer int) (int, bool) {
	l := layer - s.base.ExtraLayers() - 1
	if l < 0 {
		return 0, false
	}
	return l, true
}

// overlayRect places the overlay below the base rectangle r, as wide
// as the base.
func (s *PopupState) overlayRect(r f32.Rectangle) f32.Rectangle {
	o := f32.Pt(r.Min.X, r.Max.Y)
	return f32.RectAt(o, f32.Pt(r.Dx(), s.overlay.MinSize().Y))
}
