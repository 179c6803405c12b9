// Copyright (c) 2026 The nemkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package convert provides the byte level conversions the address and id
derivations are built on.

Hex output is always uppercase and produced from a constant nibble table, so the
results do not depend on locale or on the input case.  Multi-byte integers are
packed little endian, which matches how network nodes serialize ids.

XOR of inputs with different lengths treats the shorter input as zero padded:

	convert.Xor([]byte{0xff, 0x0f}, []byte{0x0f}) == "F00F"
*/
package convert
