// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

import (
	"code.hybscloud.com/kont"
)

// Try runs fn and converts a violation panic into a value.
// Returns Right(result) on success, Left(violation) when fn hit a
// contract violation under ModePanic. Other panics propagate.
//
// A Left result means the caller broke the ownership rules; it is a
// diagnostic, not a condition to retry.
func Try[R any](fn func() R) (result kont.Either[*Violation, R]) {
	defer func() {
		if r := recover(); r != nil {
			v, ok := r.(*Violation)
			if !ok {
				panic(r)
			}
			result = kont.Left[*Violation, R](v)
		}
	}()
	return kont.Right[*Violation](fn())
}

// TryDo is Try for functions without a result.
func TryDo(fn func()) kont.Either[*Violation, struct{}] {
	return Try(func() struct{} {
		fn()
		return struct{}{}
	})
}
