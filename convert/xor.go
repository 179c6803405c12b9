// Copyright (c) 2026 The nemkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package convert

// XorBytes returns the byte-wise XOR of a and b.  The result has the length of
// the longer input and the shorter input is treated as if it were padded with
// trailing zero bytes.
func XorBytes(a, b []byte) []byte {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]byte, len(a))
	copy(out, a)
	for i, v := range b {
		out[i] ^= v
	}
	return out
}

// Xor returns the uppercase hex encoding of XorBytes(a, b).
func Xor(a, b []byte) string {
	return BytesToHex(XorBytes(a, b))
}
