// Copyright (c) 2026 The nemkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package uint64pair converts between unsigned 64-bit integers and the pair of
// 32-bit words that network nodes and wire formats use to represent them.
//
// Values are always carried as uint64 in Go.  The word pair only exists at the
// edges where a format defines an id as [low, high].
package uint64pair

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/decred/dcrd/math/uint256"
	"github.com/nemkit/nemkit/convert"
)

const (
	// HexLen is the number of characters in the hex form of a value.
	HexLen = 16

	// MaxSafeInteger is the largest integer that round trips exactly through
	// an IEEE 754 double, 2^53 - 1.
	MaxSafeInteger = 1<<53 - 1
)

// Pair is a 64-bit unsigned integer split into its low and high 32-bit words.
type Pair struct {
	Lo uint32
	Hi uint32
}

// FromUint64 splits v into its word pair.
func FromUint64(v uint64) Pair {
	return Pair{Lo: uint32(v), Hi: uint32(v >> 32)}
}

// Uint64 joins the word pair into a single value.
func (p Pair) Uint64() uint64 {
	return uint64(p.Hi)<<32 | uint64(p.Lo)
}

// IsZero reports whether both words are zero.
func (p Pair) IsZero() bool {
	return p.Lo == 0 && p.Hi == 0
}

// Compare returns -1, 0, or 1 depending on whether p is less than, equal to,
// or greater than other.
func (p Pair) Compare(other Pair) int {
	switch {
	case p.Hi < other.Hi:
		return -1
	case p.Hi > other.Hi:
		return 1
	case p.Lo < other.Lo:
		return -1
	case p.Lo > other.Lo:
		return 1
	}
	return 0
}

// Equal reports whether p and other represent the same value.
func (p Pair) Equal(other Pair) bool {
	return p == other
}

// Hex returns the 16 character, zero padded, uppercase hex form of the value.
func (p Pair) Hex() string {
	return Hex(p.Uint64())
}

// String returns the hex form of the value.
func (p Pair) String() string {
	return p.Hex()
}

// Bytes returns the little-endian wire serialization of the value.
func (p Pair) Bytes() [8]byte {
	var b [8]byte
	binary.LittleEndian.PutUint32(b[0:4], p.Lo)
	binary.LittleEndian.PutUint32(b[4:8], p.Hi)
	return b
}

// FromBytes reads a value from its little-endian wire serialization.
func FromBytes(b [8]byte) Pair {
	return Pair{
		Lo: binary.LittleEndian.Uint32(b[0:4]),
		Hi: binary.LittleEndian.Uint32(b[4:8]),
	}
}

// Hex returns the 16 character, zero padded, uppercase hex form of v.
func Hex(v uint64) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return convert.BytesToHex(b[:])
}

// ParseHex parses a 16 character hex string, most significant byte first.
//
// ErrInvalidFormat is returned when s is not exactly 16 valid hex characters.
func ParseHex(s string) (uint64, error) {
	if len(s) != HexLen {
		str := fmt.Sprintf("hex value %q must be %d characters, got %d", s,
			HexLen, len(s))
		return 0, makeError(ErrInvalidFormat, str)
	}
	b, err := convert.HexToBytes(s)
	if err != nil {
		str := fmt.Sprintf("hex value %q is malformed: %v", s, err)
		return 0, makeError(ErrInvalidFormat, str)
	}
	return binary.BigEndian.Uint64(b), nil
}

// FromHex parses a 16 character hex string into a word pair.
func FromHex(s string) (Pair, error) {
	v, err := ParseHex(s)
	if err != nil {
		return Pair{}, err
	}
	return FromUint64(v), nil
}

// ParseDecimal parses a base 10 string such as the ones found in JSON
// documents where 64-bit values are quoted.
//
// ErrOutOfRange is returned for negative values or values above 2^64-1 and
// ErrInvalidFormat for anything that is not a decimal number.
func ParseDecimal(s string) (uint64, error) {
	if digits := strings.TrimPrefix(s, "-"); digits != s && isDigits(digits) {
		str := fmt.Sprintf("value %s is negative", s)
		return 0, makeError(ErrOutOfRange, str)
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			str := fmt.Sprintf("value %s does not fit in 64 bits", s)
			return 0, makeError(ErrOutOfRange, str)
		}
		str := fmt.Sprintf("value %q is not a decimal number", s)
		return 0, makeError(ErrInvalidFormat, str)
	}
	return v, nil
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// FromWide narrows a 256-bit value to 64 bits.
//
// ErrOutOfRange is returned when the value does not fit in 64 bits.
func FromWide(n *uint256.Uint256) (uint64, error) {
	if !n.IsUint64() {
		str := fmt.Sprintf("value with bit length %d does not fit in 64 bits",
			n.BitLen())
		return 0, makeError(ErrOutOfRange, str)
	}
	return n.Uint64(), nil
}

// ToWide widens v to a 256-bit value.
func ToWide(v uint64) *uint256.Uint256 {
	return new(uint256.Uint256).SetUint64(v)
}

// FromBig narrows an arbitrary precision integer to 64 bits.
//
// ErrOutOfRange is returned when the value is negative or does not fit in 64
// bits.
func FromBig(n *big.Int) (uint64, error) {
	if n.Sign() < 0 {
		str := fmt.Sprintf("value %s is negative", n)
		return 0, makeError(ErrOutOfRange, str)
	}
	if n.BitLen() > 256 {
		str := fmt.Sprintf("value with bit length %d does not fit in 64 bits",
			n.BitLen())
		return 0, makeError(ErrOutOfRange, str)
	}
	return FromWide(new(uint256.Uint256).SetBig(n))
}

// IsSafeInteger reports whether v can be represented exactly by an IEEE 754
// double, which is the largest integer some JSON consumers accept unquoted.
func IsSafeInteger(v uint64) bool {
	return v <= MaxSafeInteger
}
