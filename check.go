// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

// require reports a violation of kind k on serial s unless ok holds.
// It returns false when the check failed and the current mode let the
// caller continue; callers skip only operations that would corrupt a
// counter. With Checked false it always returns true and the condition
// is dead code.
func require(ok bool, k Kind, s Serial, msg string) bool {
	if !Checked || ok {
		return true
	}
	report(&Violation{Kind: k, Serial: s, Msg: msg})
	return false
}
