// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"testing"

	"strata.org/f32"
	"strata.org/io/pointer"
)

// clicker calls onClick with its environment for every release.
type clicker struct {
	Leaf
	onClick func(env *Env)
}

func (c clicker) Layout(gtx Context, slot *State, cs Constraints) {
	Reuse[Sized](slot).Size = f32.Pt(10, 10)
}

func (c clicker) Pointer(gtx Context, st State, r f32.Rectangle, layer int, e pointer.Event, focus bool) Result {
	if e.Kind == pointer.Release {
		c.onClick(gtx.Env)
	}
	return Result{}
}

func TestStatefulRebuild(t *testing.T) {
	base, overlay := newProbe(50, 20), newProbe(40, 30)
	w := Stateful[bool]{
		Build: func(gtx Context, open *bool) Widget {
			if *open {
				return Popup{Base: base, Overlay: overlay}
			}
			return base
		},
	}
	var st State
	w.Layout(Context{}, &st, Constraints{})
	s := st.(*StatefulState[bool])
	first := s.Inner()
	if _, ok := first.(*probeState); !ok {
		t.Fatalf("inner state is %T", first)
	}
	*s.Local() = true
	w.Layout(Context{}, &st, Constraints{})
	if st != State(s) {
		t.Fatal("stateful state was replaced")
	}
	if !*s.Local() {
		t.Error("local value was lost")
	}
	ps, ok := s.Inner().(*PopupState)
	if !ok {
		t.Fatalf("inner state is %T, want *PopupState", s.Inner())
	}
	if ps.base == first {
		t.Error("new shape reused the old inner state")
	}
	if got := st.ExtraLayers(); got != 1 {
		t.Errorf("extra layers = %d, want 1", got)
	}
	if got := st.MinSize(); got != f32.Pt(50, 20) {
		t.Errorf("size = %v", got)
	}
	w.Draw(Context{}, st, f32.Rect(0, 0, 50, 20), 1, false)
	if len(overlay.rec.draws) != 1 {
		t.Error("overlay not drawn")
	}
}

func TestStatefulInit(t *testing.T) {
	calls := 0
	w := Stateful[int]{
		Init: func() int {
			calls++
			return 7
		},
		Build: func(gtx Context, n *int) Widget {
			if *n != 7 {
				t.Errorf("local = %d, want 7", *n)
			}
			if v, ok := Local[*int](gtx.Env); !ok || v != n {
				t.Error("environment doesn't expose the local value")
			}
			return Spacer{Width: float32(*n)}
		},
	}
	var st State
	w.Layout(Context{}, &st, Constraints{})
	w.Layout(Context{}, &st, Constraints{})
	if calls != 1 {
		t.Errorf("Init called %d times", calls)
	}
	if got := st.MinSize(); got != f32.Pt(7, 0) {
		t.Errorf("size = %v", got)
	}
}

func TestStatefulEnvironment(t *testing.T) {
	inner := Stateful[int]{
		Build: func(gtx Context, n *int) Widget {
			return clicker{onClick: func(env *Env) {
				if n, ok := Local[*int](env); ok {
					*n++
				}
				if s, ok := Lookup[*string](env); ok {
					*s = "clicked"
				}
			}}
		},
	}
	outer := Stateful[string]{
		Build: func(gtx Context, s *string) Widget {
			return inner
		},
	}
	var st State
	outer.Layout(Context{}, &st, Constraints{})
	r := f32.Rect(0, 0, 10, 10)
	outer.Pointer(Context{}, st, r, 0, release(f32.Pt(5, 5)), false)
	os := st.(*StatefulState[string])
	is := os.Inner().(*StatefulState[int])
	if *os.Local() != "clicked" || *is.Local() != 1 {
		t.Errorf("locals = %q, %d", *os.Local(), *is.Local())
	}
}

func TestStatefulShapeMismatch(t *testing.T) {
	base, overlay := newProbe(50, 20), newProbe(40, 30)
	open := true
	w := Stateful[struct{}]{
		Build: func(gtx Context, _ *struct{}) Widget {
			if open {
				return Popup{Base: base, Overlay: overlay}
			}
			return base
		},
	}
	var st State
	w.Layout(Context{}, &st, Constraints{})
	open = false
	err := expectShapeError(func() {
		w.Draw(Context{}, st, f32.Rect(0, 0, 50, 20), 0, false)
	})
	if err == nil {
		t.Fatal("shape change outside layout didn't panic")
	}
	if err.Got != "*layout.PopupState" {
		t.Errorf("error = %v", err)
	}
	// The next layout recovers.
	w.Layout(Context{}, &st, Constraints{})
	w.Draw(Context{}, st, f32.Rect(0, 0, 50, 20), 0, false)
}

func TestStatefulNilBuild(t *testing.T) {
	var st State
	w := Stateful[int]{}
	w.Layout(Context{}, &st, Constraints{})
	if got := st.MinSize(); got != (f32.Point{}) {
		t.Errorf("size = %v", got)
	}
	w.Draw(Context{}, st, f32.Rectangle{}, 0, false)
}
