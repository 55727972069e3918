// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"strata.org/f32"
)

// Limit is an optional maximum extent along a single axis.
type Limit struct {
	Max     float32
	Bounded bool
}

// Constraints hold a Limit for each axis. Constraints are built
// fresh for every Layout call and never stored.
type Constraints struct {
	X, Y Limit
}

// Axis is the Horizontal or Vertical direction.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// Unbounded is the Limit that imposes no maximum.
var Unbounded Limit

// Max returns the Limit with maximum v.
func Max(v float32) Limit {
	return Limit{Max: v, Bounded: true}
}

// Exact returns the constraints bounded by size on both axes.
func Exact(size f32.Point) Constraints {
	return Constraints{X: Max(size.X), Y: Max(size.Y)}
}

// Fill returns the extent a widget of natural extent v reports:
// the larger of v and the limit, or v if unbounded.
func (l Limit) Fill(v float32) float32 {
	if l.Bounded && l.Max > v {
		return l.Max
	}
	return v
}

// Shrink returns the limit reduced by d, floored at zero. An
// unbounded limit stays unbounded.
func (l Limit) Shrink(d float32) Limit {
	if !l.Bounded {
		return l
	}
	l.Max -= d
	if l.Max < 0 {
		l.Max = 0
	}
	return l
}

// Fill applies Limit.Fill to each axis of sz.
func (c Constraints) Fill(sz f32.Point) f32.Point {
	return f32.Point{X: c.X.Fill(sz.X), Y: c.Y.Fill(sz.Y)}
}

// Shrink reduces both limits by d.
func (c Constraints) Shrink(d f32.Point) Constraints {
	return Constraints{X: c.X.Shrink(d.X), Y: c.Y.Shrink(d.Y)}
}

// Convert a point in (x, y) coordinates to (main, cross) coordinates,
// or vice versa. Specifically, Convert((x, y)) returns (x, y) unchanged
// for the horizontal axis, or (y, x) for the vertical axis.
func (a Axis) Convert(pt f32.Point) f32.Point {
	if a == Horizontal {
		return pt
	}
	return f32.Point{X: pt.Y, Y: pt.X}
}

// Main returns the extent of sz along a.
func (a Axis) Main(sz f32.Point) float32 {
	return a.Convert(sz).X
}

// Cross returns the extent of sz across a.
func (a Axis) Cross(sz f32.Point) float32 {
	return a.Convert(sz).Y
}

// Limits returns the (main, cross) limits of cs.
func (a Axis) Limits(cs Constraints) (main, cross Limit) {
	if a == Horizontal {
		return cs.X, cs.Y
	}
	return cs.Y, cs.X
}

// Constraints returns the constraints with the given main and cross
// limits.
func (a Axis) Constraints(main, cross Limit) Constraints {
	if a == Horizontal {
		return Constraints{X: main, Y: cross}
	}
	return Constraints{X: cross, Y: main}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}

// Loose returns the constraints that bound neither axis.
func Loose() Constraints {
	return Constraints{}
}
