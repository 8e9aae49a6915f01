// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

import "code.hybscloud.com/atomix"

// Serial is a monotonically increasing cell identifier.
// Each constructed owner takes the next serial value; relocation
// and cloning hand out a fresh one. Serial 0 marks a zero-value owner.
type Serial = uint32

// counter is the global monotonic counter for cell serials.
var counter atomix.Uint32

// nextSerial returns the next monotonically increasing serial.
func nextSerial() Serial {
	return counter.Add(1)
}
