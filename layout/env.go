// SPDX-License-Identifier: Unlicense OR MIT

package layout

// Env is one level of the environment chain. Each Stateful widget
// exposes its local state to the widgets it builds by pushing a level;
// callbacks reach the state of their ancestors through Lookup.
//
// Envs are created per call and must not be retained.
type Env struct {
	Local  any
	Parent *Env
}

// Push returns a level exposing local with e as its parent.
func (e *Env) Push(local any) *Env {
	return &Env{Local: local, Parent: e}
}

// Local returns the value of the nearest level if it has type T.
func Local[T any](e *Env) (T, bool) {
	var zero T
	if e == nil {
		return zero, false
	}
	v, ok := e.Local.(T)
	return v, ok
}

// Lookup returns the nearest value of type T in the chain starting
// at e.
func Lookup[T any](e *Env) (T, bool) {
	for ; e != nil; e = e.Parent {
		if v, ok := e.Local.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
