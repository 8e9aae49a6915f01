// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

import "testing"

func TestCellUnderflow(t *testing.T) {
	if !Checked {
		t.Skip("skip: contract checks compiled out (ownrelease)")
	}
	var c cell[int]
	c.init(1)

	v, ok := TryDo(c.removeShared).GetLeft()
	if !ok || v.Kind != Underflow {
		t.Fatalf("removeShared on zero: got %v, want underflow", v)
	}
	v, ok = TryDo(c.removeExclusive).GetLeft()
	if !ok || v.Kind != Underflow {
		t.Fatalf("removeExclusive on zero: got %v, want underflow", v)
	}
}

func TestCellUnderflowSkipsDecrement(t *testing.T) {
	if !Checked {
		t.Skip("skip: contract checks compiled out (ownrelease)")
	}
	defer SetMode(SetMode(ModeRecord))
	Violations()

	var c cell[int]
	c.init(1)
	c.removeShared()
	c.removeExclusive()
	if c.shared != 0 || c.exclusive != 0 {
		t.Fatalf("counters wrapped: shared=%d exclusive=%d", c.shared, c.exclusive)
	}
	if got := len(Violations()); got != 2 {
		t.Fatalf("recorded %d violations, want 2", got)
	}
}

func TestCellRelocateDuplicatesCounters(t *testing.T) {
	var src, dst cell[string]
	src.init("v")
	src.addShared()
	src.addShared()

	dst.relocateFrom(&src)
	if !src.invalidated {
		t.Fatal("source not invalidated")
	}
	if dst.invalidated {
		t.Fatal("destination invalidated")
	}
	if dst.shared != 2 || dst.exclusive != 0 || dst.val != "v" {
		t.Fatalf("destination = {shared:%d exclusive:%d val:%q}, want {2 0 v}", dst.shared, dst.exclusive, dst.val)
	}
	if dst.serial == src.serial {
		t.Fatal("destination kept source serial")
	}

	// Relocating an invalidated cell carries the flag along.
	var again cell[string]
	again.relocateFrom(&src)
	if !again.invalidated {
		t.Fatal("invalidated flag not copied")
	}
}

func TestCellState(t *testing.T) {
	var c cell[int]
	cases := []struct {
		shared, exclusive uint32
		invalidated       bool
		want              State
	}{
		{0, 0, false, Free},
		{3, 0, false, Shared},
		{0, 1, false, Exclusive},
		{2, 0, true, Invalidated},
	}
	for _, tc := range cases {
		c.shared, c.exclusive, c.invalidated = tc.shared, tc.exclusive, tc.invalidated
		if got := c.state(); got != tc.want {
			t.Errorf("state(%d,%d,%v) = %s, want %s", tc.shared, tc.exclusive, tc.invalidated, got, tc.want)
		}
	}
}
