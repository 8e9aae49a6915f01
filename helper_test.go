// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own_test

import (
	"testing"

	"code.hybscloud.com/own"
)

// skipUnchecked skips tests that expect a violation to be reported.
// Under -tags ownrelease the checks are compiled out and misuse is undefined.
func skipUnchecked(tb testing.TB) {
	tb.Helper()
	if !own.Checked {
		tb.Skip("skip: contract checks compiled out (ownrelease)")
	}
}

// expectViolation runs fn under ModePanic and fails the test unless fn
// reports a violation of kind k.
func expectViolation(tb testing.TB, k own.Kind, fn func()) *own.Violation {
	tb.Helper()
	defer own.SetMode(own.SetMode(own.ModePanic))
	v, ok := own.TryDo(fn).GetLeft()
	if !ok {
		tb.Fatalf("expected %s violation, got none", k)
	}
	if v.Kind != k {
		tb.Fatalf("violation kind: got %s, want %s (%v)", v.Kind, k, v)
	}
	return v
}

// expectNoViolation runs fn under ModePanic and fails the test on any violation.
func expectNoViolation(tb testing.TB, fn func()) {
	tb.Helper()
	defer own.SetMode(own.SetMode(own.ModePanic))
	if v, ok := own.TryDo(fn).GetLeft(); ok {
		tb.Fatalf("unexpected violation: %v", v)
	}
}
