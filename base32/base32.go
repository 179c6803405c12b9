// Copyright (c) 2026 The nemkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package base32 implements the fixed block Base32 codec used for textual
// addresses.
//
// Every 5 input bytes map to exactly 8 characters of the alphabet A-Z, 2-7.
// There is no padding: inputs that are not a whole number of blocks are
// rejected rather than padded.
package base32

import "fmt"

const (
	// Alphabet is the set of characters used in encoded output, indexed by
	// 5-bit group value.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

	// DecodedBlockSize is the number of raw bytes in one block.
	DecodedBlockSize = 5

	// EncodedBlockSize is the number of characters in one encoded block.
	EncodedBlockSize = 8
)

// alphabetRev maps an ASCII character to its 5-bit value or -1 when the
// character is not part of the alphabet.
var alphabetRev = [128]int8{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, 26, 27, 28, 29, 30, 31, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14,
	15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
}

// EncodedLen returns the length of the encoding of n raw bytes.  n must be a
// multiple of DecodedBlockSize.
func EncodedLen(n int) int {
	return n / DecodedBlockSize * EncodedBlockSize
}

// DecodedLen returns the number of raw bytes in an encoding of n characters.
// n must be a multiple of EncodedBlockSize.
func DecodedLen(n int) int {
	return n / EncodedBlockSize * DecodedBlockSize
}

// encodeBlock expands the 40 bits of src into eight 5-bit groups.
func encodeBlock(dst []byte, src []byte) {
	dst[0] = Alphabet[src[0]>>3]
	dst[1] = Alphabet[(src[0]&0x07)<<2|src[1]>>6]
	dst[2] = Alphabet[(src[1]&0x3e)>>1]
	dst[3] = Alphabet[(src[1]&0x01)<<4|src[2]>>4]
	dst[4] = Alphabet[(src[2]&0x0f)<<1|src[3]>>7]
	dst[5] = Alphabet[(src[3]&0x7c)>>2]
	dst[6] = Alphabet[(src[3]&0x03)<<3|src[4]>>5]
	dst[7] = Alphabet[src[4]&0x1f]
}

// decodeBlock recombines eight 5-bit groups into 5 bytes.
func decodeBlock(dst []byte, v *[EncodedBlockSize]byte) {
	dst[0] = v[0]<<3 | v[1]>>2
	dst[1] = v[1]<<6 | v[2]<<1 | v[3]>>4
	dst[2] = v[3]<<4 | v[4]>>1
	dst[3] = v[4]<<7 | v[5]<<2 | v[6]>>3
	dst[4] = v[6]<<5 | v[7]
}

// Encode returns the Base32 encoding of data.
//
// ErrInvalidLength is returned when the length of data is not a multiple of 5.
func Encode(data []byte) (string, error) {
	if len(data)%DecodedBlockSize != 0 {
		str := fmt.Sprintf("decoded size %d is not a multiple of %d",
			len(data), DecodedBlockSize)
		return "", makeError(ErrInvalidLength, str)
	}

	out := make([]byte, EncodedLen(len(data)))
	for i, j := 0, 0; i < len(data); i, j = i+DecodedBlockSize, j+EncodedBlockSize {
		encodeBlock(out[j:j+EncodedBlockSize], data[i:i+DecodedBlockSize])
	}
	return string(out), nil
}

// Decode returns the bytes represented by the Base32 string s.
//
// ErrInvalidLength is returned when the length of s is not a multiple of 8 and
// ErrInvalidCharacter when s contains a character outside Alphabet.  Lowercase
// letters are not part of the alphabet.
func Decode(s string) ([]byte, error) {
	if len(s)%EncodedBlockSize != 0 {
		str := fmt.Sprintf("encoded size %d is not a multiple of %d", len(s),
			EncodedBlockSize)
		return nil, makeError(ErrInvalidLength, str)
	}

	out := make([]byte, DecodedLen(len(s)))
	var vals [EncodedBlockSize]byte
	for i, j := 0, 0; i < len(s); i, j = i+EncodedBlockSize, j+DecodedBlockSize {
		for k := 0; k < EncodedBlockSize; k++ {
			c := s[i+k]
			if c >= 0x80 || alphabetRev[c] < 0 {
				str := fmt.Sprintf("illegal base32 character %q at offset %d",
					c, i+k)
				return nil, makeError(ErrInvalidCharacter, str)
			}
			vals[k] = byte(alphabetRev[c])
		}
		decodeBlock(out[j:j+DecodedBlockSize], &vals)
	}
	return out, nil
}
