// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
)

// Children describes the children of a Flex: a Child, two
// concatenated lists (Then) or an iterated list (Iter). A description
// carries no state; the state of every child lives in a parallel
// ListState owned by the container.
type Children interface {
	visit(v *visitor, ls *ListState)
}

// Child is a single child and its expand flag.
type Child struct {
	Widget Widget
	// Expand children share the space left over by the other
	// children evenly.
	Expand bool
}

// Then is the concatenation of two child lists.
type Then struct {
	A, B Children
}

// Iter is a list of Len children produced by Child.
type Iter struct {
	Len   int
	Child func(i int) Child
}

// ListState is the state of a child list, shaped like its
// description.
type ListState struct {
	kind  listKind
	slot  State
	pair  *[2]ListState
	items []State
}

type listKind uint8

const (
	kindNone listKind = iota
	kindChild
	kindThen
	kindIter
)

type visitMode uint8

const (
	// visitUse walks laid out state and panics on mismatches.
	visitUse visitMode = iota
	// visitLayout reconciles the state with the description.
	visitLayout
	// visitTrim reconciles like visitLayout and also drops the
	// state of iterated children past the current length.
	visitTrim
)

type visitor struct {
	mode visitMode
	// n is the flat index of the next child.
	n int
	f func(i int, c Child, slot *State)
}

// Rigid returns a child sized by its content.
func Rigid(w Widget) Child {
	return Child{Widget: w}
}

// Expanded returns a child that takes a share of the leftover space.
func Expanded(w Widget) Child {
	return Child{Widget: w, Expand: true}
}

// List concatenates children in order.
func List(children ...Children) Children {
	switch len(children) {
	case 0:
		return Iter{}
	case 1:
		return children[0]
	}
	return Then{A: children[0], B: List(children[1:]...)}
}

// Trim reconciles ls with c, dropping the state of iterated children
// beyond their current length. It returns the number of children
// described by c.
func (ls *ListState) Trim(c Children) int {
	return ls.walk(c, visitTrim, nil)
}

// walk calls f for every child of c in order together with its state
// slot and returns the number of children.
func (ls *ListState) walk(c Children, mode visitMode, f func(i int, c Child, slot *State)) int {
	if c == nil {
		return 0
	}
	v := &visitor{mode: mode, f: f}
	c.visit(v, ls)
	return v.n
}

// expect makes ls a list of kind k, or panics if v may not change
// the state.
func (ls *ListState) expect(v *visitor, k listKind) {
	if ls.kind == k {
		return
	}
	if v.mode == visitUse {
		panic(&ShapeError{Widget: "layout.Children", Want: k.String(), Got: ls.kind.String()})
	}
	*ls = ListState{kind: k}
}

func (c Child) visit(v *visitor, ls *ListState) {
	ls.expect(v, kindChild)
	if v.f != nil {
		v.f(v.n, c, &ls.slot)
	}
	v.n++
}

func (t Then) visit(v *visitor, ls *ListState) {
	ls.expect(v, kindThen)
	if ls.pair == nil {
		if v.mode == visitUse {
			panic(&ShapeError{Widget: "layout.Then", Want: "laid out pair", Got: "<nil>"})
		}
		ls.pair = new([2]ListState)
	}
	if t.A != nil {
		t.A.visit(v, &ls.pair[0])
	}
	if t.B != nil {
		t.B.visit(v, &ls.pair[1])
	}
}

func (it Iter) visit(v *visitor, ls *ListState) {
	ls.expect(v, kindIter)
	n := it.Len
	if n < 0 || it.Child == nil {
		n = 0
	}
	switch v.mode {
	case visitUse:
		if len(ls.items) < n {
			panic(&ShapeError{
				Widget: "layout.Iter",
				Want:   fmt.Sprintf("%d items", n),
				Got:    fmt.Sprintf("%d items", len(ls.items)),
			})
		}
	case visitTrim:
		if len(ls.items) > n {
			for i := n; i < len(ls.items); i++ {
				ls.items[i] = nil
			}
			ls.items = ls.items[:n]
		}
		fallthrough
	case visitLayout:
		for len(ls.items) < n {
			ls.items = append(ls.items, nil)
		}
	}
	for i := 0; i < n; i++ {
		if v.f != nil {
			v.f(v.n, it.Child(i), &ls.items[i])
		}
		v.n++
	}
}

func (k listKind) String() string {
	switch k {
	case kindNone:
		return "none"
	case kindChild:
		return "Child"
	case kindThen:
		return "Then"
	case kindIter:
		return "Iter"
	default:
		panic("unreachable")
	}
}
