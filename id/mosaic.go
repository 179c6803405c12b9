// Copyright (c) 2026 The nemkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package id

import (
	"encoding/binary"
	"fmt"

	"github.com/decred/dcrd/crypto/rand"
	"github.com/nemkit/nemkit/convert"
	"github.com/nemkit/nemkit/math/uint64pair"
	"golang.org/x/crypto/sha3"
)

const (
	// NonceSize is the size of a mosaic nonce.
	NonceSize = 4

	// OwnerKeySize is the size of the public key of a mosaic owner.
	OwnerKeySize = 32

	// discriminatorBit is the most significant bit of an 8 byte id.  It is
	// clear for mosaic ids and set for namespace ids.
	discriminatorBit = uint64(1) << 63
)

// MosaicNonce is the 4 byte nonce mixed with the owner public key to derive a
// mosaic id.
type MosaicNonce [NonceSize]byte

// NewMosaicNonce returns a nonce drawn from the default cryptographically
// secure random source.
func NewMosaicNonce() MosaicNonce {
	var n MosaicNonce
	rand.Read(n[:])
	return n
}

// MosaicNonceFromUint32 returns the little-endian nonce for v.
func MosaicNonceFromUint32(v uint32) MosaicNonce {
	var n MosaicNonce
	binary.LittleEndian.PutUint32(n[:], v)
	return n
}

// MosaicNonceFromHex parses a nonce from its 8 character hex form.
func MosaicNonceFromHex(s string) (MosaicNonce, error) {
	if !convert.IsHex(s, NonceSize) {
		str := fmt.Sprintf("nonce %q is not %d hex encoded bytes", s,
			NonceSize)
		return MosaicNonce{}, makeError(ErrInvalidLength, str)
	}
	b, err := convert.HexToBytes(s)
	if err != nil {
		return MosaicNonce{}, err
	}
	var n MosaicNonce
	copy(n[:], b)
	return n, nil
}

// Uint32 returns the little-endian value of the nonce.
func (n MosaicNonce) Uint32() uint32 {
	return binary.LittleEndian.Uint32(n[:])
}

// String returns the hex form of the nonce.
func (n MosaicNonce) String() string {
	return convert.BytesToHex(n[:])
}

// MosaicID identifies a mosaic.  The most significant bit is always clear.
type MosaicID uint64

// Words returns the id as its low and high 32-bit words.
func (m MosaicID) Words() uint64pair.Pair {
	return uint64pair.FromUint64(uint64(m))
}

// String returns the 16 character hex form of the id.
func (m MosaicID) String() string {
	return uint64pair.Hex(uint64(m))
}

// GenerateMosaicID derives the id of the mosaic created by owner with the
// provided nonce: the first 8 bytes of SHA3-256(nonce || owner) read as two
// little-endian words with the most significant bit cleared.
//
// ErrInvalidLength is returned when owner is not 32 bytes.
func GenerateMosaicID(nonce MosaicNonce, owner []byte) (MosaicID, error) {
	if len(owner) != OwnerKeySize {
		str := fmt.Sprintf("owner public key is %d bytes vs required %d "+
			"bytes", len(owner), OwnerKeySize)
		return 0, makeError(ErrInvalidLength, str)
	}

	h := sha3.New256()
	h.Write(nonce[:])
	h.Write(owner)
	digest := h.Sum(nil)
	v := binary.LittleEndian.Uint64(digest[:8])
	return MosaicID(v &^ discriminatorBit), nil
}
