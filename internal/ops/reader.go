// SPDX-License-Identifier: Unlicense OR MIT

package ops

// Reader iterates over an ops list.
type Reader struct {
	pc  int
	ops *Ops
}

// Reset start reading from the op list.
func (r *Reader) Reset(ops *Ops) {
	r.pc = 0
	r.ops = ops
}

// Decode returns the next operation, or false at the end of the list.
func (r *Reader) Decode() (Op, bool) {
	if r.ops == nil || r.pc >= len(r.ops.list) {
		return Op{}, false
	}
	op := r.ops.list[r.pc]
	r.pc++
	return op, true
}
