// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"strata.org/f32"
	"strata.org/io/key"
	"strata.org/io/pointer"
)

// Stateful is a widget that owns a local value of type S and rebuilds
// its content from it on every call. The content may have a different
// shape from frame to frame; its state is replaced whenever Layout
// sees a new shape.
//
// Build receives a Context whose Env exposes a *S, so callbacks of the
// built widgets can reach the local value with Local or Lookup.
type Stateful[S any] struct {
	// Init returns the initial local value. A nil Init starts from
	// the zero S.
	Init  func() S
	Build func(gtx Context, s *S) Widget
}

// StatefulState is the state of a Stateful.
type StatefulState[S any] struct {
	local S
	init  bool
	inner State

	size        f32.Point
	extraLayers int
}

func (s *StatefulState[S]) MinSize() f32.Point { return s.size }

func (s *StatefulState[S]) ExtraLayers() int { return s.extraLayers }

// Local returns the local value.
func (s *StatefulState[S]) Local() *S { return &s.local }

// Inner returns the state of the content built in the last call.
func (s *StatefulState[S]) Inner() State { return s.inner }

func (w Stateful[S]) Layout(gtx Context, slot *State, cs Constraints) {
	s := Reuse[StatefulState[S]](slot)
	if !s.init {
		if w.Init != nil {
			s.local = w.Init()
		}
		s.init = true
	}
	gtx, inner := w.build(gtx, s)
	inner.Layout(gtx, &s.inner, cs)
	s.size = s.inner.MinSize()
	s.extraLayers = s.inner.ExtraLayers()
}

func (w Stateful[S]) Draw(gtx Context, st State, r f32.Rectangle, layer int, focus bool) {
	s := StateOf[*StatefulState[S]](st, w)
	gtx, inner := w.build(gtx, s)
	inner.Draw(gtx, s.inner, r, layer, focus)
}

func (w Stateful[S]) HitLayer(gtx Context, st State, r f32.Rectangle, pos f32.Point) (int, bool) {
	s := StateOf[*StatefulState[S]](st, w)
	gtx, inner := w.build(gtx, s)
	return inner.HitLayer(gtx, s.inner, r, pos)
}

func (w Stateful[S]) Pointer(gtx Context, st State, r f32.Rectangle, layer int, e pointer.Event, focus bool) Result {
	s := StateOf[*StatefulState[S]](st, w)
	gtx, inner := w.build(gtx, s)
	return inner.Pointer(gtx, s.inner, r, layer, e, focus)
}

func (w Stateful[S]) Key(gtx Context, st State, r f32.Rectangle, e key.Event, focus bool) {
	s := StateOf[*StatefulState[S]](st, w)
	gtx, inner := w.build(gtx, s)
	inner.Key(gtx, s.inner, r, e, focus)
}

// build runs Build with the local value pushed on the environment.
func (w Stateful[S]) build(gtx Context, s *StatefulState[S]) (Context, Widget) {
	gtx = gtx.WithEnv(&s.local)
	var inner Widget
	if w.Build != nil {
		inner = w.Build(gtx, &s.local)
	}
	if inner == nil {
		inner = Spacer{}
	}
	return gtx, inner
}
