// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"strata.org/io/input"
	"strata.org/op"
	"strata.org/text"
	"strata.org/widget/material"
)

// Context carries the collaborators of a widget tree walk. It is
// passed by value and a widget that changes a field changes it for its
// descendants only.
type Context struct {
	// Shaper measures and outlines text.
	Shaper text.Shaper
	// Theme is the read-only drawing parameter table.
	Theme *material.Theme
	// Ops receives draw operations. It is nil outside Draw.
	Ops *op.Ops
	// Input is the ambient input state. Below the top layer of a
	// container it is input.Empty.
	Input input.State
	// Env is the environment chain exposed by ancestors.
	Env *Env
}

// WithEnv returns a copy of gtx whose environment exposes local in
// front of gtx.Env.
func (c Context) WithEnv(local any) Context {
	c.Env = c.Env.Push(local)
	return c
}

// WithInput returns a copy of gtx with the input state replaced.
func (c Context) WithInput(s input.State) Context {
	c.Input = s
	return c
}
