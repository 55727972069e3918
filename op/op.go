// SPDX-License-Identifier: Unlicense OR MIT

/*
Package op implements operations for describing what a frame draws.

Widgets draw by adding operations to an Ops list. The list is replayed
by a rasterizer once the frame is complete, so adding an operation is
cheap and never touches pixels.

Drawing a colored square:

	ops := new(op.Ops)
	...
	ops.Reset()
	paint.FillShape(ops, color.NRGBA{R: 0x80, A: 0xff}, clip.Rect(f32.Rect(0, 0, 100, 100)).Op())

The TransformOp translates subsequent operations until it is popped:

	ops := new(op.Ops)
	// Apply a transform to subsequent operations.
	stack := op.Offset(f32.Pt(10, 10)).Push(ops)
	...
	// Restore the previous transform.
	stack.Pop()
*/
package op

import (
	"strata.org/f32"
	"strata.org/internal/ops"
)

// Ops holds a list of operations.
type Ops struct {
	// Internal is for internal use, despite being exported.
	Internal ops.Ops
}

// TransformOp represents a translation that can be pushed on the
// transformation stack.
type TransformOp struct {
	offset f32.Point
}

// TransformStack represents a TransformOp pushed on the transformation
// stack.
type TransformStack struct {
	id  ops.StackID
	ops *ops.Ops
}

// Reset the Ops, preparing it for re-use. Reset invalidates
// any recorded stacks.
func (o *Ops) Reset() {
	o.Internal.Reset()
}

// Offset creates a TransformOp with the offset o.
func Offset(o f32.Point) TransformOp {
	return TransformOp{offset: o}
}

// Push the current transformation to the stack and then multiply the
// current transformation with t.
func (t TransformOp) Push(o *Ops) TransformStack {
	id := o.Internal.PushOp(ops.TransStack)
	o.Internal.Write(ops.Op{Type: ops.TypeTransform, Offset: t.offset})
	return TransformStack{ops: &o.Internal, id: id}
}

// Pop the current transform and restore the previous one.
func (t TransformStack) Pop() {
	t.ops.PopOp(ops.TransStack, t.id)
	t.ops.Write(ops.Op{Type: ops.TypePopTransform})
}
