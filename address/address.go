// Copyright (c) 2026 The nemkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address derives account addresses from public keys and converts
// them between their binary and textual forms.
package address

import (
	"errors"
	"fmt"
	"strings"

	"github.com/decred/dcrd/crypto/ripemd160"
	"github.com/nemkit/nemkit/base32"
	"github.com/nemkit/nemkit/convert"
	"golang.org/x/crypto/sha3"
)

const (
	// PublicKeySize is the size of a serialized account public key.
	PublicKeySize = 32

	// ChecksumSize is the number of SHA3-256 digest bytes kept as checksum.
	ChecksumSize = 4

	// DecodedSize is the size of a decoded address: network byte, RIPEMD-160
	// hash, and checksum.
	DecodedSize = 1 + ripemd160.Size + ChecksumSize

	// EncodedSize is the number of characters in an encoded address.
	EncodedSize = 40

	// prettyGroupSize is the number of characters between separators in the
	// pretty form of an address.
	prettyGroupSize = 6
)

// Decoded is the 25 byte binary form of an address.
type Decoded [DecodedSize]byte

// hash160 returns RIPEMD-160(SHA3-256(b)).
func hash160(b []byte) [ripemd160.Size]byte {
	digest := sha3.Sum256(b)
	var out [ripemd160.Size]byte
	h := ripemd160.New()
	h.Write(digest[:])
	copy(out[:], h.Sum(nil))
	return out
}

// checksum returns the first ChecksumSize bytes of the SHA3-256 digest of the
// network byte and hash portion of an address.
func checksum(body []byte) [ChecksumSize]byte {
	digest := sha3.Sum256(body)
	var out [ChecksumSize]byte
	copy(out[:], digest[:ChecksumSize])
	return out
}

// PublicKeyToAddress derives the decoded address of a public key on the
// provided network.
//
// ErrInvalidLength is returned when the public key is not 32 bytes.
func PublicKeyToAddress(pubKey []byte, net NetworkType) (Decoded, error) {
	if len(pubKey) != PublicKeySize {
		str := fmt.Sprintf("public key is %d bytes vs required %d bytes",
			len(pubKey), PublicKeySize)
		return Decoded{}, makeError(ErrInvalidLength, str)
	}

	var decoded Decoded
	decoded[0] = byte(net)
	hash := hash160(pubKey)
	copy(decoded[1:1+ripemd160.Size], hash[:])
	sum := checksum(decoded[:1+ripemd160.Size])
	copy(decoded[1+ripemd160.Size:], sum[:])
	return decoded, nil
}

// Network returns the network byte of the address.
func (d Decoded) Network() NetworkType {
	return NetworkType(d[0])
}

// Hash160 returns the RIPEMD-160 portion of the address.
func (d Decoded) Hash160() [ripemd160.Size]byte {
	var h [ripemd160.Size]byte
	copy(h[:], d[1:1+ripemd160.Size])
	return h
}

// IsValid reports whether the address checksum matches its contents and the
// address belongs to the provided network.
func IsValid(decoded Decoded, net NetworkType) bool {
	if decoded.Network() != net {
		return false
	}
	sum := checksum(decoded[:1+ripemd160.Size])
	return convert.EqualN(sum[:], decoded[1+ripemd160.Size:], ChecksumSize)
}

// IsValid reports whether the address has a valid checksum for the provided
// network.
func (d Decoded) IsValid(net NetworkType) bool {
	return IsValid(d, net)
}

// String returns the 40 character encoded form of the address.
func (d Decoded) String() string {
	// A decoded address is always a whole number of blocks.
	s, _ := base32.Encode(d[:])
	return s
}

// Pretty returns the encoded form of the address in groups of six characters
// separated by hyphens.
func (d Decoded) Pretty() string {
	s := d.String()
	var b strings.Builder
	b.Grow(len(s) + len(s)/prettyGroupSize)
	for i := 0; i < len(s); i += prettyGroupSize {
		if i > 0 {
			b.WriteByte('-')
		}
		end := i + prettyGroupSize
		if end > len(s) {
			end = len(s)
		}
		b.WriteString(s[i:end])
	}
	return b.String()
}

// Bytes returns a copy of the decoded address as a slice.
func (d Decoded) Bytes() []byte {
	b := make([]byte, DecodedSize)
	copy(b, d[:])
	return b
}

// AddressToString encodes a decoded address.
//
// ErrInvalidLength is returned when b is not 25 bytes.
func AddressToString(b []byte) (string, error) {
	if len(b) != DecodedSize {
		str := fmt.Sprintf("decoded address is %d bytes vs required %d bytes",
			len(b), DecodedSize)
		return "", makeError(ErrInvalidLength, str)
	}
	var d Decoded
	copy(d[:], b)
	return d.String(), nil
}

// StringToAddress decodes an encoded address.  No checksum or network check
// is performed; see ParseAddress for that.
//
// ErrInvalidLength is returned when s is not 40 characters and
// ErrInvalidCharacter when it contains a character outside the Base32
// alphabet.
func StringToAddress(s string) (Decoded, error) {
	if len(s) != EncodedSize {
		str := fmt.Sprintf("encoded address is %d characters vs required %d "+
			"characters", len(s), EncodedSize)
		return Decoded{}, makeError(ErrInvalidLength, str)
	}
	b, err := base32.Decode(s)
	if err != nil {
		kind := ErrInvalidCharacter
		if errors.Is(err, base32.ErrInvalidLength) {
			kind = ErrInvalidLength
		}
		str := fmt.Sprintf("failed to decode address %q: %v", s, err)
		return Decoded{}, makeError(kind, str)
	}
	var d Decoded
	copy(d[:], b)
	return d, nil
}

// normalize strips surrounding whitespace and hyphens from an address string
// and uppercases it so both the plain and pretty forms are accepted.
func normalize(s string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", ""))
}

// ParseAddress decodes an address in either its plain or pretty form and
// ensures it has a valid checksum for the provided network.
func ParseAddress(s string, net NetworkType) (Decoded, error) {
	d, err := StringToAddress(normalize(s))
	if err != nil {
		return Decoded{}, err
	}
	if d.Network() != net {
		str := fmt.Sprintf("address %q is for network %s, not %s", s,
			d.Network(), net)
		return Decoded{}, makeError(ErrWrongNetwork, str)
	}
	if !IsValid(d, net) {
		str := fmt.Sprintf("address %q has an invalid checksum", s)
		return Decoded{}, makeError(ErrBadChecksum, str)
	}
	return d, nil
}

// IsValidString reports whether s is a valid address for the provided
// network in either its plain or pretty form.
func IsValidString(s string, net NetworkType) bool {
	_, err := ParseAddress(s, net)
	return err == nil
}
