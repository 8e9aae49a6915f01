// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build ownrelease

package own

// Checked reports whether contract checks are compiled in.
// In ownrelease builds every check is skipped and misuse is undefined.
const Checked = false
