// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !ownrelease

package own

// Checked reports whether contract checks are compiled in.
// Build with -tags ownrelease to compile them out.
const Checked = true
