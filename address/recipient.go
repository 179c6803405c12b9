// Copyright (c) 2026 The nemkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"encoding/binary"
	"fmt"

	"github.com/nemkit/nemkit/convert"
)

const (
	// aliasFlag is set on the network byte of a recipient that refers to a
	// namespace instead of an address.  Every network byte has it clear.
	aliasFlag = 0x01

	// namespaceIDSize is the size of a serialized namespace id.
	namespaceIDSize = 8
)

// Recipient is the 25 byte wire form of a transfer destination.  It holds
// either a decoded address or an alias:
//
//	network|0x01 (1) || namespace id little endian (8) || zero (16)
type Recipient [DecodedSize]byte

// AddressRecipient returns the recipient form of a decoded address.
func AddressRecipient(d Decoded) Recipient {
	return Recipient(d)
}

// AliasToRecipient returns the alias recipient for a namespace id given in its
// big-endian byte form, as produced by decoding the hex form of the id.  The
// id bytes are reversed into wire order.
func AliasToRecipient(namespaceID [namespaceIDSize]byte, net NetworkType) Recipient {
	var r Recipient
	r[0] = byte(net) | aliasFlag
	for i := 0; i < namespaceIDSize; i++ {
		r[1+i] = namespaceID[namespaceIDSize-1-i]
	}
	return r
}

// NamespaceRecipient returns the alias recipient for a namespace id.
func NamespaceRecipient(namespaceID uint64, net NetworkType) Recipient {
	var r Recipient
	r[0] = byte(net) | aliasFlag
	binary.LittleEndian.PutUint64(r[1:1+namespaceIDSize], namespaceID)
	return r
}

// RecipientFromBytes validates and copies a serialized recipient.
//
// ErrInvalidLength is returned when b is not 25 bytes and
// ErrMalformedRecipient when b is an alias with non-zero padding.
func RecipientFromBytes(b []byte) (Recipient, error) {
	if len(b) != DecodedSize {
		str := fmt.Sprintf("recipient is %d bytes vs required %d bytes",
			len(b), DecodedSize)
		return Recipient{}, makeError(ErrInvalidLength, str)
	}
	var r Recipient
	copy(r[:], b)
	if r.IsAlias() && !convert.IsZeroFilled(r[1+namespaceIDSize:]) {
		str := fmt.Sprintf("alias recipient %x has non-zero padding", b)
		return Recipient{}, makeError(ErrMalformedRecipient, str)
	}
	return r, nil
}

// IsAlias reports whether the recipient refers to a namespace.
func (r Recipient) IsAlias() bool {
	return r[0]&aliasFlag != 0
}

// Network returns the network the recipient belongs to.
func (r Recipient) Network() NetworkType {
	return NetworkType(r[0] &^ aliasFlag)
}

// NamespaceID returns the namespace id of an alias recipient.  The second
// return value is false when the recipient is an address.
func (r Recipient) NamespaceID() (uint64, bool) {
	if !r.IsAlias() {
		return 0, false
	}
	return binary.LittleEndian.Uint64(r[1 : 1+namespaceIDSize]), true
}

// Address returns the decoded address of an address recipient.  The second
// return value is false when the recipient is an alias.
func (r Recipient) Address() (Decoded, bool) {
	if r.IsAlias() {
		return Decoded{}, false
	}
	return Decoded(r), true
}

// String returns the encoded address for address recipients and the hex
// namespace id for aliases.
func (r Recipient) String() string {
	if id, ok := r.NamespaceID(); ok {
		var b [namespaceIDSize]byte
		binary.BigEndian.PutUint64(b[:], id)
		return convert.BytesToHex(b[:])
	}
	return Decoded(r).String()
}
