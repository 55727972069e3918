// SPDX-License-Identifier: Unlicense OR MIT

package op

import (
	"testing"

	"strata.org/f32"
	"strata.org/internal/ops"
)

func TestTransformChecks(t *testing.T) {
	defer func() {
		if err := recover(); err == nil {
			t.Error("out of order Pop didn't panic")
		}
	}()
	var o Ops
	outer := Offset(f32.Point{}).Push(&o)
	Offset(f32.Pt(1, 1)).Push(&o)
	outer.Pop()
}

func TestTransformOps(t *testing.T) {
	var o Ops
	Offset(f32.Pt(2, 3)).Push(&o).Pop()
	var r ops.Reader
	r.Reset(&o.Internal)
	first, _ := r.Decode()
	second, _ := r.Decode()
	if first.Type != ops.TypeTransform || first.Offset != f32.Pt(2, 3) {
		t.Errorf("first op = %+v", first)
	}
	if second.Type != ops.TypePopTransform {
		t.Errorf("second op = %+v", second)
	}
	o.Reset()
	if o.Internal.Len() != 0 {
		t.Error("Reset kept ops")
	}
}
