// Copyright (c) 2026 The nemkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package convert

// Copy copies n bytes from src starting at srcOffset into dst starting at
// dstOffset and returns the number of bytes copied.  The count is clamped so
// neither buffer is read or written out of bounds.
func Copy(dst, src []byte, n, dstOffset, srcOffset int) int {
	if n <= 0 || dstOffset < 0 || srcOffset < 0 || dstOffset >= len(dst) ||
		srcOffset >= len(src) {

		return 0
	}
	end := srcOffset + n
	if end > len(src) {
		end = len(src)
	}
	return copy(dst[dstOffset:], src[srcOffset:end])
}

// IsZeroFilled reports whether every byte of b is zero.
func IsZeroFilled(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// EqualN reports whether the first n bytes of a and b are equal.  It returns
// false when either buffer is shorter than n.
func EqualN(a, b []byte, n int) bool {
	if n < 0 || len(a) < n || len(b) < n {
		return false
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
