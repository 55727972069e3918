// SPDX-License-Identifier: Unlicense OR MIT

package f32

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect(10, 10, 20, 30)
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(10, 10), true},
		{Pt(19.9, 29.9), true},
		{Pt(20, 15), false},
		{Pt(15, 30), false},
		{Pt(9.9, 15), false},
	}
	for _, tc := range tests {
		if got := r.Contains(tc.p); got != tc.want {
			t.Errorf("%v.Contains(%v) = %v, want %v", r, tc.p, got, tc.want)
		}
	}
}

func TestRectCanon(t *testing.T) {
	r := Rect(20, 30, 10, 10)
	if r.Min != Pt(10, 10) || r.Max != Pt(20, 30) {
		t.Errorf("Rect did not canonicalize: %v", r)
	}
}

func TestRectInset(t *testing.T) {
	r := Rect(0, 0, 100, 40)
	if got, want := r.Inset(10), Rect(10, 10, 90, 30); got != want {
		t.Errorf("Inset(10) = %v, want %v", got, want)
	}
	if got, want := r.Inset(-5), Rect(-5, -5, 105, 45); got != want {
		t.Errorf("Inset(-5) = %v, want %v", got, want)
	}
	// Over-insetting collapses to the center instead of inverting.
	if got := r.Inset(30); got.Dy() != 0 || got.Dx() != 40 {
		t.Errorf("Inset(30) = %v, want zero height and width 40", got)
	}
}

func TestRectIntersectUnion(t *testing.T) {
	a := Rect(0, 0, 10, 10)
	b := Rect(5, 5, 15, 15)
	if got, want := a.Intersect(b), Rect(5, 5, 10, 10); got != want {
		t.Errorf("Intersect = %v, want %v", got, want)
	}
	if got, want := a.Union(b), Rect(0, 0, 15, 15); got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}
	if !a.Intersect(Rect(20, 20, 30, 30)).Empty() {
		t.Error("disjoint intersection should be empty")
	}
}
