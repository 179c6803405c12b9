// Copyright (c) 2026 The nemkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package convert

import (
	"encoding/binary"
	"fmt"
)

// maxFixedWidth is the widest fixed-width integer that can be packed.
const maxFixedWidth = 8

// NumberToFixedBytes packs n little endian into exactly width bytes.
//
// ErrOutOfRange is returned when width is not in the range 1 to 8 or when n
// requires more than width bytes.
func NumberToFixedBytes(n uint64, width int) ([]byte, error) {
	if width < 1 || width > maxFixedWidth {
		str := fmt.Sprintf("width %d is not in the range 1..%d", width,
			maxFixedWidth)
		return nil, makeError(ErrOutOfRange, str)
	}
	if width < maxFixedWidth && n>>(8*uint(width)) != 0 {
		str := fmt.Sprintf("value %d does not fit in %d bytes", n, width)
		return nil, makeError(ErrOutOfRange, str)
	}

	var buf [maxFixedWidth]byte
	binary.LittleEndian.PutUint64(buf[:], n)
	out := make([]byte, width)
	copy(out, buf[:width])
	return out, nil
}

// BytesToNumber unpacks b as a little-endian unsigned integer.  The result
// wraps modulo 2^32, so only the first four bytes contribute.
func BytesToNumber(b []byte) uint32 {
	var v uint32
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint32(b[i])
	}
	return v
}

// BytesToUint32s interprets b as a sequence of little-endian 32-bit words.  Any
// trailing bytes that do not form a whole word are ignored.
func BytesToUint32s(b []byte) []uint32 {
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(b[4*i:])
	}
	return words
}

// Uint32sToBytes serializes the words little endian.
func Uint32sToBytes(words []uint32) []byte {
	b := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(b[4*i:], w)
	}
	return b
}
