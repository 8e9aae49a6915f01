// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own_test

import (
	"errors"
	"strings"
	"testing"

	"code.hybscloud.com/own"
)

func TestTryRight(t *testing.T) {
	x := own.NewVal(42)
	res := own.Try(x.Get)
	if !res.IsRight() {
		t.Fatal("expected Right")
	}
	if v, _ := res.GetRight(); v != 42 {
		t.Fatalf("Right = %d, want 42", v)
	}
}

func TestTryLeft(t *testing.T) {
	skipUnchecked(t)
	x := own.NewVal(42)
	r := x.Ref()
	defer r.Release()

	res := own.Try(x.Get)
	v, ok := res.GetLeft()
	if !ok {
		t.Fatal("expected Left")
	}
	var target *own.Violation
	if !errors.As(error(v), &target) || target.Kind != own.StaleRead {
		t.Fatalf("Left = %v, want stale-read violation", v)
	}
	if !strings.HasPrefix(v.Error(), "own: stale-read on cell #") {
		t.Fatalf("Error() = %q", v.Error())
	}
}

func TestTryRepanicsForeignPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Fatalf("recovered %v, want boom", r)
		}
	}()
	own.TryDo(func() { panic("boom") })
	t.Fatal("TryDo swallowed a foreign panic")
}

func TestKindString(t *testing.T) {
	cases := map[own.Kind]string{
		own.UseAfterRelocate: "use-after-relocate",
		own.UseAfterDrop:     "use-after-drop",
		own.DanglingBorrow:   "dangling-borrow",
		own.Aliasing:         "aliasing",
		own.StaleRead:        "stale-read",
		own.Underflow:        "underflow",
		own.ReleasedBorrow:   "released-borrow",
		own.Kind(0):          "kind(0)",
		own.Kind(200):        "kind(200)",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", uint8(k), got, want)
		}
	}
}
