// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"strata.org/f32"
	"strata.org/io/input"
	"strata.org/io/key"
	"strata.org/io/pointer"
)

// probe is a fixed size widget recording the calls it receives.
type probe struct {
	w, h   float32
	layers int
	// demand focus on presses.
	demand bool
	rec    *record
}

type probeState struct {
	Sized
	layers int
}

type record struct {
	cs       []Constraints
	draws    []drawCall
	pointers []pointerCall
	keys     []keyCall
}

type drawCall struct {
	layer int
	r     f32.Rectangle
	in    input.State
	focus bool
}

type pointerCall struct {
	layer int
	r     f32.Rectangle
	e     pointer.Event
	focus bool
}

type keyCall struct {
	e     key.Event
	focus bool
}

func newProbe(w, h float32) probe {
	return probe{w: w, h: h, rec: new(record)}
}

func (s *probeState) ExtraLayers() int { return s.layers }

func (p probe) Layout(gtx Context, slot *State, cs Constraints) {
	s := Reuse[probeState](slot)
	s.Size = f32.Pt(p.w, p.h)
	s.layers = p.layers
	p.rec.cs = append(p.rec.cs, cs)
}

func (p probe) Draw(gtx Context, st State, r f32.Rectangle, layer int, focus bool) {
	StateOf[*probeState](st, p)
	p.rec.draws = append(p.rec.draws, drawCall{layer: layer, r: r, in: gtx.Input, focus: focus})
}

func (p probe) HitLayer(gtx Context, st State, r f32.Rectangle, pos f32.Point) (int, bool) {
	return p.layers, r.Contains(pos)
}

func (p probe) Pointer(gtx Context, st State, r f32.Rectangle, layer int, e pointer.Event, focus bool) Result {
	p.rec.pointers = append(p.rec.pointers, pointerCall{layer: layer, r: r, e: e, focus: focus})
	return Result{DemandFocus: p.demand && e.Kind == pointer.Press && r.Contains(e.Position)}
}

func (p probe) Key(gtx Context, st State, r f32.Rectangle, e key.Event, focus bool) {
	p.rec.keys = append(p.rec.keys, keyCall{e: e, focus: focus})
}

func (r *record) reset() {
	*r = record{}
}

// expectShapeError runs f and reports whether it panicked with a
// *ShapeError.
func expectShapeError(f func()) (err *ShapeError) {
	defer func() {
		if e := recover(); e != nil {
			var ok bool
			if err, ok = e.(*ShapeError); !ok {
				panic(e)
			}
		}
	}()
	f()
	return nil
}

func press(pos f32.Point) pointer.Event {
	return pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonPrimary, Position: pos}
}

func release(pos f32.Point) pointer.Event {
	return pointer.Event{Kind: pointer.Release, Buttons: pointer.ButtonPrimary, Position: pos}
}
