// SPDX-License-Identifier: Unlicense OR MIT

// Package ops holds the representation of operation lists shared by
// package op, its sub-packages and the rasterizer.
package ops

import (
	"image"
	"image/color"

	"strata.org/f32"
)

type Ops struct {
	// version is incremented at each Reset.
	version int
	// list contains the operations in the order they were added.
	list []Op

	stacks [2]stack
}

type OpType byte

// Start at a high number for easier debugging.
const firstOpIndex = 200

const (
	TypeTransform OpType = iota + firstOpIndex
	TypePopTransform
	TypeClip
	TypePopClip
	TypeColor
	TypeImage
	TypePaint
)

// Op is a single decoded operation. Only the fields relevant to its
// Type are set.
type Op struct {
	Type OpType
	// Offset is the translation of a TypeTransform.
	Offset f32.Point
	// Bounds is the bounding rectangle of a TypeClip.
	Bounds f32.Rectangle
	// Path is the outline of a TypeClip. A nil Path clips to Bounds.
	Path []Segment
	// Color is the material of a TypeColor.
	Color color.NRGBA
	// Image is the material of a TypeImage.
	Image image.Image
}

// SegmentKind identifies the path command of a Segment.
type SegmentKind uint8

const (
	SegMoveTo SegmentKind = iota
	SegLineTo
	SegQuadTo
	SegCubeTo
)

// Segment is a path command with absolute coordinates. QuadTo uses
// Args[0] as control point and Args[1] as end point; CubeTo uses
// Args[0], Args[1] and Args[2].
type Segment struct {
	Kind SegmentKind
	Args [3]f32.Point
}

type StackID struct {
	id   int
	prev int
}

type stack struct {
	currentID int
	nextID    int
}

type StackKind uint8

const (
	ClipStack StackKind = iota
	TransStack
)

func (o *Ops) Reset() {
	o.version++
	// Leave references to the GC.
	for i := range o.list {
		o.list[i] = Op{}
	}
	o.list = o.list[:0]
	for i := range o.stacks {
		o.stacks[i] = stack{}
	}
}

func (o *Ops) Version() int {
	return o.version
}

func (o *Ops) Len() int {
	return len(o.list)
}

func (o *Ops) Write(op Op) {
	o.list = append(o.list, op)
}

func (o *Ops) PushOp(kind StackKind) StackID {
	return o.stacks[kind].push()
}

func (o *Ops) PopOp(kind StackKind, sid StackID) {
	o.stacks[kind].pop(sid)
}

func (s *stack) push() StackID {
	s.nextID++
	sid := StackID{
		id:   s.nextID,
		prev: s.currentID,
	}
	s.currentID = s.nextID
	return sid
}

func (s *stack) check(sid StackID) {
	if s.currentID != sid.id {
		panic("unbalanced operation")
	}
}

func (s *stack) pop(sid StackID) {
	s.check(sid)
	s.currentID = sid.prev
}
