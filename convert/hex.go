// Copyright (c) 2026 The nemkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package convert

import "fmt"

// hexDigits is the uppercase nibble table used for all hex output.
const hexDigits = "0123456789ABCDEF"

// hexValues maps an ASCII character to its nibble value or -1 when the
// character is not a hex digit.  Both cases are accepted.
var hexValues = [128]int8{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, -1, -1, -1, -1, -1, -1,
	-1, 10, 11, 12, 13, 14, 15, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, 10, 11, 12, 13, 14, 15, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
}

// nibble returns the value of the provided hex character.
func nibble(c byte) (byte, bool) {
	if c >= 0x80 {
		return 0, false
	}
	v := hexValues[c]
	if v < 0 {
		return 0, false
	}
	return byte(v), true
}

// decodeHexInto decodes the hex string s into dst, which must be exactly half
// the length of s.  When reverse is set, the output byte order is reversed.
func decodeHexInto(dst []byte, s string, reverse bool) error {
	for i := 0; i < len(dst); i++ {
		hi, ok1 := nibble(s[2*i])
		lo, ok2 := nibble(s[2*i+1])
		if !ok1 || !ok2 {
			str := fmt.Sprintf("invalid hex pair %q at offset %d", s[2*i:2*i+2],
				2*i)
			return makeError(ErrInvalidFormat, str)
		}
		idx := i
		if reverse {
			idx = len(dst) - 1 - i
		}
		dst[idx] = hi<<4 | lo
	}
	return nil
}

// HexToBytes decodes the provided hex string.  Both upper and lowercase digits
// are accepted.
//
// ErrInvalidFormat is returned when the string has an odd length or contains a
// pair that is not valid hex.
func HexToBytes(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		str := fmt.Sprintf("hex string has odd length %d", len(s))
		return nil, makeError(ErrInvalidFormat, str)
	}
	b := make([]byte, len(s)/2)
	if err := decodeHexInto(b, s, false); err != nil {
		return nil, err
	}
	return b, nil
}

// HexToBytesReversed decodes the provided hex string the same way as
// HexToBytes and returns the bytes in reverse order.  It is used to read ids
// that are stored little endian on the wire but written big endian as text.
func HexToBytesReversed(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		str := fmt.Sprintf("hex string has odd length %d", len(s))
		return nil, makeError(ErrInvalidFormat, str)
	}
	b := make([]byte, len(s)/2)
	if err := decodeHexInto(b, s, true); err != nil {
		return nil, err
	}
	return b, nil
}

// BytesToHex returns the uppercase hex encoding of b.
func BytesToHex(b []byte) string {
	out := make([]byte, len(b)*2)
	for i, v := range b {
		out[2*i] = hexDigits[v>>4]
		out[2*i+1] = hexDigits[v&0x0f]
	}
	return string(out)
}

// IsHex reports whether s is a valid hex string.  When size is greater than
// zero, s must also encode exactly size bytes.
func IsHex(s string, size int) bool {
	if len(s)%2 != 0 {
		return false
	}
	if size > 0 && len(s) != size*2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if _, ok := nibble(s[i]); !ok {
			return false
		}
	}
	return true
}
