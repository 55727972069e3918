// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"math"
	"testing"

	"strata.org/f32"
	"strata.org/io/input"
	"strata.org/io/key"
)

func TestFlexFloor(t *testing.T) {
	row := Row(Rigid(newProbe(40, 10)), Rigid(newProbe(60, 20)))
	tests := []struct {
		name string
		cs   Constraints
		want f32.Point
	}{
		{"unbounded", Constraints{}, f32.Pt(100, 20)},
		{"smaller", Constraints{X: Max(50), Y: Max(5)}, f32.Pt(100, 20)},
		{"larger", Constraints{X: Max(300), Y: Max(50)}, f32.Pt(300, 50)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var st State
			row.Layout(Context{}, &st, tc.cs)
			if got := st.MinSize(); got != tc.want {
				t.Errorf("size = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFlexRigidConstraints(t *testing.T) {
	p := newProbe(10, 10)
	col := Col(Rigid(p))
	var st State
	col.Layout(Context{}, &st, Exact(f32.Pt(80, 90)))
	want := Constraints{X: Max(80), Y: Unbounded}
	if got := p.rec.cs[0]; got != want {
		t.Errorf("rigid child constraints = %+v, want %+v", got, want)
	}
}

func TestFlexScenario(t *testing.T) {
	a, b, c := newProbe(40, 10), newProbe(0, 10), newProbe(60, 10)
	row := Row(Rigid(a), Expanded(b), Rigid(c))
	var st State
	row.Layout(Context{}, &st, Constraints{X: Max(200)})
	if got := b.rec.cs[0].X; got != Max(100) {
		t.Errorf("expanded child main limit = %+v, want %+v", got, Max(100))
	}
	row.Draw(Context{}, st, f32.Rect(0, 0, 200, 10), 0, false)
	tests := []struct {
		p      probe
		offset float32
		width  float32
	}{
		{a, 0, 40},
		{b, 40, 100},
		{c, 140, 60},
	}
	for i, tc := range tests {
		if len(tc.p.rec.draws) != 1 {
			t.Fatalf("child %d drawn %d times", i, len(tc.p.rec.draws))
		}
		r := tc.p.rec.draws[0].r
		if r.Min.X != tc.offset || r.Dx() != tc.width {
			t.Errorf("child %d drawn at %v, want offset %v width %v", i, r, tc.offset, tc.width)
		}
	}
}

func TestFlexExactShares(t *testing.T) {
	tests := []struct {
		total float32
		rigid float32
		n     int
	}{
		{100, 10, 3},
		{77.5, 12.5, 2},
		{1000, 1, 7},
		{33, 0, 1},
	}
	for _, tc := range tests {
		var children []Children
		var expanded []probe
		children = append(children, Rigid(newProbe(tc.rigid, 1)))
		for i := 0; i < tc.n; i++ {
			p := newProbe(0, 1)
			expanded = append(expanded, p)
			children = append(children, Expanded(p))
		}
		row := Row(children...)
		var st State
		row.Layout(Context{}, &st, Constraints{X: Max(tc.total)})
		sum := tc.rigid
		share := expanded[0].rec.cs[0].X.Max
		for i, p := range expanded {
			got := p.rec.cs[0].X
			if !got.Bounded || got.Max != share {
				t.Errorf("total %v: child %d limit %+v, want share %v", tc.total, i, got, share)
			}
			sum += got.Max
		}
		if math.Abs(float64(sum-tc.total)) > 1e-3 {
			t.Errorf("total %v: extents sum to %v", tc.total, sum)
		}
		if got := st.MinSize().X; math.Abs(float64(got-tc.total)) > 1e-3 {
			t.Errorf("total %v: size %v", tc.total, got)
		}
	}
}

func TestFlexShareClamp(t *testing.T) {
	p := newProbe(0, 10)
	row := Row(Rigid(newProbe(40, 10)), Expanded(p))
	var st State
	row.Layout(Context{}, &st, Constraints{X: Max(30)})
	if got := p.rec.cs[0].X; got != Max(0) {
		t.Errorf("expanded limit = %+v, want zero", got)
	}
	if got := st.MinSize().X; got != 40 {
		t.Errorf("size = %v, want 40", got)
	}
	// Unbounded containers lay out expanded children unbounded.
	p.rec.reset()
	row.Layout(Context{}, &st, Constraints{})
	if got := p.rec.cs[0].X; got != Unbounded {
		t.Errorf("expanded limit = %+v, want unbounded", got)
	}
}

func TestFlexLayerIsolation(t *testing.T) {
	low, high := newProbe(10, 10), newProbe(10, 10)
	high.layers = 1
	row := Row(Rigid(low), Rigid(high))
	var st State
	row.Layout(Context{}, &st, Constraints{})
	if got := st.ExtraLayers(); got != 1 {
		t.Fatalf("extra layers = %d, want 1", got)
	}
	in := input.State{Cursor: f32.Pt(5, 5), HasCursor: true}
	gtx := Context{Input: in}
	r := f32.Rect(0, 0, 20, 10)
	row.Draw(gtx, st, r, 0, false)
	row.Draw(gtx, st, r, 1, false)
	if n := len(low.rec.draws); n != 1 {
		t.Fatalf("layer 0 child drawn %d times, want 1", n)
	}
	if got := low.rec.draws[0].in; got != input.Empty {
		t.Errorf("layer 0 input = %+v, want empty", got)
	}
	if n := len(high.rec.draws); n != 2 {
		t.Fatalf("layer 1 child drawn %d times, want 2", n)
	}
	if got := high.rec.draws[0].in; got != input.Empty {
		t.Errorf("layer 0 of layered child has input %+v", got)
	}
	if got := high.rec.draws[1]; got.layer != 1 || got.in != in {
		t.Errorf("top layer draw = %+v, want layer 1 with real input", got)
	}
}

func TestFlexHitLayer(t *testing.T) {
	low, high := newProbe(10, 10), newProbe(10, 10)
	high.layers = 2
	row := Row(Rigid(low), Rigid(high))
	var st State
	row.Layout(Context{}, &st, Constraints{X: Max(100), Y: Max(10)})
	r := f32.Rect(0, 0, 100, 10)
	tests := []struct {
		pos   f32.Point
		layer int
		hit   bool
	}{
		{f32.Pt(5, 5), 0, true},
		{f32.Pt(15, 5), 2, true},
		{f32.Pt(50, 5), 0, true},
		{f32.Pt(150, 5), 0, false},
	}
	for _, tc := range tests {
		l, hit := row.HitLayer(Context{}, st, r, tc.pos)
		if l != tc.layer || hit != tc.hit {
			t.Errorf("HitLayer(%v) = %d, %v, want %d, %v", tc.pos, l, hit, tc.layer, tc.hit)
		}
	}
}

func TestFlexPointerLayers(t *testing.T) {
	low, high := newProbe(10, 10), newProbe(10, 10)
	high.layers = 1
	row := Row(Rigid(low), Rigid(high))
	var st State
	row.Layout(Context{}, &st, Constraints{})
	r := f32.Rect(0, 0, 20, 10)
	row.Pointer(Context{}, st, r, 1, press(f32.Pt(15, 5)), false)
	if len(low.rec.pointers) != 0 || len(high.rec.pointers) != 1 {
		t.Errorf("layer 1 event reached %d low and %d high children", len(low.rec.pointers), len(high.rec.pointers))
	}
	row.Pointer(Context{}, st, r, 0, press(f32.Pt(5, 5)), false)
	if len(low.rec.pointers) != 1 || len(high.rec.pointers) != 2 {
		t.Errorf("layer 0 event was not broadcast")
	}
	if got := high.rec.pointers[0].r; got != f32.Rect(10, 0, 20, 10) {
		t.Errorf("child rect = %v", got)
	}
}

func TestFlexFocusBubbling(t *testing.T) {
	leaf := newProbe(10, 10)
	leaf.demand = true
	other := newProbe(10, 10)
	inner := Row(Rigid(other), Rigid(leaf))
	root := Col(Rigid(newProbe(20, 10)), Rigid(inner))
	var st State
	root.Layout(Context{}, &st, Exact(f32.Pt(100, 100)))
	r := f32.Rect(0, 0, 100, 100)
	res := root.Pointer(Context{}, st, r, 0, press(f32.Pt(15, 15)), true)
	if !res.DemandFocus {
		t.Fatal("focus demand didn't reach the root")
	}
	rs := st.(*FlexState)
	if i, ok := rs.Focus(); !ok || i != 1 {
		t.Errorf("root focus = %d, %v, want 1", i, ok)
	}
	var is *FlexState
	rs.children.walk(root.Children, visitUse, func(i int, c Child, slot *State) {
		if i == 1 {
			is = (*slot).(*FlexState)
		}
	})
	if i, ok := is.Focus(); !ok || i != 1 {
		t.Errorf("inner focus = %d, %v, want 1", i, ok)
	}
	if leaf.rec.pointers[0].focus {
		t.Error("leaf had focus before demanding it")
	}
	e := key.Event{Name: "A", Text: "a"}
	root.Key(Context{}, st, r, e, true)
	if len(leaf.rec.keys) != 1 || !leaf.rec.keys[0].focus {
		t.Errorf("focused leaf keys = %+v", leaf.rec.keys)
	}
	if len(other.rec.keys) != 0 {
		t.Error("key reached an unfocused sibling")
	}
	// Without focus, the container routes no keys.
	root.Key(Context{}, st, r, e, false)
	if len(leaf.rec.keys) != 1 {
		t.Error("key routed to an unfocused container")
	}
	root.Pointer(Context{}, st, r, 0, press(f32.Pt(15, 15)), true)
	if !leaf.rec.pointers[1].focus {
		t.Error("focused leaf received pointer event without focus")
	}
}

func TestFlexTrim(t *testing.T) {
	probes := make([]probe, 3)
	for i := range probes {
		probes[i] = newProbe(10, 10)
		probes[i].demand = true
	}
	col := func(n int) Flex {
		return Col(Iter{Len: n, Child: func(i int) Child {
			return Rigid(probes[i])
		}})
	}
	var st State
	col(3).Layout(Context{}, &st, Constraints{})
	r := f32.Rect(0, 0, 10, 30)
	col(3).Pointer(Context{}, st, r, 0, press(f32.Pt(5, 25)), true)
	s := st.(*FlexState)
	if i, ok := s.Focus(); !ok || i != 2 {
		t.Fatalf("focus = %d, %v, want 2", i, ok)
	}
	col(1).Layout(Context{}, &st, Constraints{})
	if _, ok := s.Focus(); ok {
		t.Error("focus survived the removal of its child")
	}
	if n := len(s.children.items); n != 1 {
		t.Errorf("%d child states after trim, want 1", n)
	}
	if got := st.MinSize(); got != f32.Pt(10, 10) {
		t.Errorf("size = %v", got)
	}
	col(3).Layout(Context{}, &st, Constraints{})
	col(3).Draw(Context{}, st, r, 0, false)
	if n := len(probes[2].rec.draws); n != 1 {
		t.Errorf("regrown child drawn %d times", n)
	}
}

func TestFlexShapeMismatch(t *testing.T) {
	row := Row(Rigid(newProbe(10, 10)), Rigid(newProbe(10, 10)))
	var st State
	row.Layout(Context{}, &st, Constraints{})
	r := f32.Rect(0, 0, 20, 10)
	if err := expectShapeError(func() {
		row.Draw(Context{}, &Sized{}, r, 0, false)
	}); err == nil {
		t.Error("foreign state didn't panic")
	}
	other := Row(Iter{Len: 2, Child: func(i int) Child { return Rigid(newProbe(10, 10)) }})
	if err := expectShapeError(func() {
		other.Draw(Context{}, st, r, 0, false)
	}); err == nil {
		t.Error("different child list didn't panic")
	}
	longer := Row(Rigid(newProbe(10, 10)), Rigid(newProbe(10, 10)), Rigid(newProbe(10, 10)))
	if err := expectShapeError(func() {
		longer.Draw(Context{}, st, r, 0, false)
	}); err == nil {
		t.Error("longer child list didn't panic")
	}
}

func TestEmptyFlex(t *testing.T) {
	var st State
	Row().Layout(Context{}, &st, Constraints{})
	if got := st.MinSize(); got != (f32.Point{}) {
		t.Errorf("empty row size = %v", got)
	}
	Row().Draw(Context{}, st, f32.Rectangle{}, 0, false)
}
