// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"

	"strata.org/f32"
	"strata.org/io/input"
	"strata.org/io/key"
	"strata.org/io/pointer"
)

// Flex lays out its children in a row or column. Children are laid
// out in two passes: first the children that don't expand, sized by
// their content, then the expanded children, each receiving an equal
// share of the space left over.
type Flex struct {
	// Axis is the main axis, either Horizontal or Vertical.
	Axis     Axis
	Children Children
}

// FlexState is the state of a Flex.
type FlexState struct {
	children ListState
	focus    int
	hasFocus bool

	size        f32.Point
	noExpand    float32
	expandCount int
	extraLayers int
}

// Row returns a horizontal Flex of children.
func Row(children ...Children) Flex {
	return Flex{Axis: Horizontal, Children: List(children...)}
}

// Col returns a vertical Flex of children.
func Col(children ...Children) Flex {
	return Flex{Axis: Vertical, Children: List(children...)}
}

func (s *FlexState) MinSize() f32.Point { return s.size }

func (s *FlexState) ExtraLayers() int { return s.extraLayers }

// Focus returns the index of the child holding focus.
func (s *FlexState) Focus() (int, bool) {
	return s.focus, s.hasFocus
}

func (f Flex) Layout(gtx Context, slot *State, cs Constraints) {
	s := Reuse[FlexState](slot)
	if n := s.children.Trim(f.Children); s.focus >= n {
		s.hasFocus = false
		s.focus = 0
	}
	mainMax, crossMax := f.Axis.Limits(cs)
	var size, cross float32
	layers, expand := 0, 0
	// Lay out the children that don't expand.
	s.children.walk(f.Children, visitLayout, func(i int, c Child, slot *State) {
		if c.Expand {
			expand++
			return
		}
		c.Widget.Layout(gtx, slot, f.Axis.Constraints(Unbounded, crossMax))
		sz := f.Axis.Convert((*slot).MinSize())
		size += sz.X
		cross = max(cross, sz.Y)
		layers = max(layers, (*slot).ExtraLayers())
	})
	s.noExpand = size
	s.expandCount = expand
	// Lay out the expanded children with the leftover space.
	if expand > 0 {
		share := Unbounded
		if mainMax.Bounded {
			share = Max(expandShare(mainMax.Max, s.noExpand, expand))
		}
		s.children.walk(f.Children, visitLayout, func(i int, c Child, slot *State) {
			if !c.Expand {
				return
			}
			c.Widget.Layout(gtx, slot, f.Axis.Constraints(share, crossMax))
			sz := f.Axis.Convert((*slot).MinSize())
			if share.Bounded {
				size += share.Max
			} else {
				size += sz.X
			}
			cross = max(cross, sz.Y)
			layers = max(layers, (*slot).ExtraLayers())
		})
	}
	s.extraLayers = layers
	s.size = f.Axis.Convert(f32.Pt(mainMax.Fill(size), crossMax.Fill(cross)))
}

// Draw draws the children that have layer. Children drawn below the
// top layer of the Flex see no input, so nothing beneath an overlay
// reacts to the cursor over it.
func (f Flex) Draw(gtx Context, st State, r f32.Rectangle, layer int, focus bool) {
	s := StateOf[*FlexState](st, f)
	if layer != s.extraLayers {
		gtx.Input = input.Empty
	}
	f.each(s, r, func(i int, c Child, cst State, cr f32.Rectangle) {
		if layer > cst.ExtraLayers() {
			return
		}
		c.Widget.Draw(gtx, cst, cr, layer, s.focused(i, focus))
	})
}

// HitLayer returns the highest layer reported by the children hit at
// pos, or layer 0 when only r contains pos. Unlike the point-in-rect
// default of Leaf, the children decide, so that the overlay of one
// child wins over the siblings beneath it. Children are consulted even
// when pos is outside r, because an overlay may extend past the
// rectangle of its container.
func (f Flex) HitLayer(gtx Context, st State, r f32.Rectangle, pos f32.Point) (int, bool) {
	s := StateOf[*FlexState](st, f)
	top, hit := 0, false
	f.each(s, r, func(i int, c Child, cst State, cr f32.Rectangle) {
		if l, ok := c.Widget.HitLayer(gtx, cst, cr, pos); ok && (!hit || l > top) {
			top, hit = l, true
		}
	})
	if !hit && r.Contains(pos) {
		return 0, true
	}
	return top, hit
}

// Pointer forwards e to every child that has layer. A child
// demanding focus becomes the focused child and the demand is passed
// on to the caller.
func (f Flex) Pointer(gtx Context, st State, r f32.Rectangle, layer int, e pointer.Event, focus bool) Result {
	s := StateOf[*FlexState](st, f)
	var res Result
	f.each(s, r, func(i int, c Child, cst State, cr f32.Rectangle) {
		if cst.ExtraLayers() < layer {
			return
		}
		if c.Widget.Pointer(gtx, cst, cr, layer, e, s.focused(i, focus)).DemandFocus {
			s.focus, s.hasFocus = i, true
			res.DemandFocus = true
		}
	})
	return res
}

// Key forwards e to the focused child.
func (f Flex) Key(gtx Context, st State, r f32.Rectangle, e key.Event, focus bool) {
	s := StateOf[*FlexState](st, f)
	if !focus || !s.hasFocus {
		return
	}
	f.each(s, r, func(i int, c Child, cst State, cr f32.Rectangle) {
		if i == s.focus {
			c.Widget.Key(gtx, cst, cr, e, true)
		}
	})
}

func (s *FlexState) focused(i int, focus bool) bool {
	return focus && s.hasFocus && s.focus == i
}

// each calls fn for every child with its state and rectangle inside
// r. The share of the expanded children is recomputed from r.
func (f Flex) each(s *FlexState, r f32.Rectangle, fn func(i int, c Child, st State, cr f32.Rectangle)) {
	size := f.Axis.Convert(r.Size())
	var share float32
	if s.expandCount > 0 {
		share = expandShare(size.X, s.noExpand, s.expandCount)
	}
	var pos float32
	s.children.walk(f.Children, visitUse, func(i int, c Child, slot *State) {
		st := *slot
		if st == nil {
			panic(&ShapeError{Widget: fmt.Sprintf("%T", c.Widget), Want: "laid out state", Got: "<nil>"})
		}
		ext := share
		if !c.Expand {
			ext = f.Axis.Main(st.MinSize())
		}
		o := r.Min.Add(f.Axis.Convert(f32.Pt(pos, 0)))
		cr := f32.RectAt(o, f.Axis.Convert(f32.Pt(ext, size.Y)))
		pos += ext
		fn(i, c, st, cr)
	})
}

// expandShare divides the space left over after the children that
// don't expand. It is never negative.
func expandShare(total, noExpand float32, n int) float32 {
	return max(0, (total-noExpand)/float32(n))
}
