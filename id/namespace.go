// Copyright (c) 2026 The nemkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package id

import (
	"encoding/binary"
	"strings"

	"github.com/nemkit/nemkit/math/uint64pair"
	"golang.org/x/crypto/sha3"
)

// MaxNamespaceDepth is the maximum number of parts in a namespace name.
const MaxNamespaceDepth = 3

// NamespaceID identifies a namespace.  The most significant bit is always set.
type NamespaceID uint64

// Words returns the id as its low and high 32-bit words.
func (n NamespaceID) Words() uint64pair.Pair {
	return uint64pair.FromUint64(uint64(n))
}

// String returns the 16 character hex form of the id.
func (n NamespaceID) String() string {
	return uint64pair.Hex(uint64(n))
}

// Namespace pairs a namespace id with its fully qualified name.
type Namespace struct {
	ID       NamespaceID
	FullName string
}

// isValidPart reports whether part is a well formed namespace part.  The first
// character must be a lowercase letter or digit and the remaining characters
// may also be '_' or '-'.
func isValidPart(part string) bool {
	if part == "" {
		return false
	}
	for i := 0; i < len(part); i++ {
		c := part[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		case i > 0 && (c == '_' || c == '-'):
		default:
			return false
		}
	}
	return true
}

// GenerateNamespaceID derives the id of the namespace named segment under
// parent.  The root namespaces use a zero parent.
//
// The id is the first 8 bytes of SHA3-256(parent || segment), where parent is
// encoded as 8 little-endian bytes, read as two little-endian words with the
// most significant bit set.  The segment is not validated.
func GenerateNamespaceID(parent NamespaceID, segment string) NamespaceID {
	var parentBytes [8]byte
	binary.LittleEndian.PutUint64(parentBytes[:], uint64(parent))

	h := sha3.New256()
	h.Write(parentBytes[:])
	h.Write([]byte(segment))
	digest := h.Sum(nil)
	v := binary.LittleEndian.Uint64(digest[:8])
	return NamespaceID(v | discriminatorBit)
}

// GenerateNamespacePath returns the ids of every level of the provided fully
// qualified name, root first.  Each id is derived from the id before it.
//
// An *FqnError, which matches ErrInvalidFqn, is returned when the name is
// empty, any part is empty or malformed, or there are more than
// MaxNamespaceDepth parts.
func GenerateNamespacePath(name string) ([]NamespaceID, error) {
	if name == "" {
		return nil, invalidFqn("empty name", name)
	}
	parts := strings.Split(name, ".")
	if len(parts) > MaxNamespaceDepth {
		return nil, invalidFqn("too many parts", name)
	}

	path := make([]NamespaceID, 0, len(parts))
	var parent NamespaceID
	for _, part := range parts {
		if part == "" {
			return nil, invalidFqn("empty part", name)
		}
		if !isValidPart(part) {
			return nil, invalidFqn("invalid part", name)
		}
		parent = GenerateNamespaceID(parent, part)
		path = append(path, parent)
	}
	return path, nil
}

// NamespaceIDFromName returns the id of the deepest level of name.
func NamespaceIDFromName(name string) (NamespaceID, error) {
	path, err := GenerateNamespacePath(name)
	if err != nil {
		return 0, err
	}
	return path[len(path)-1], nil
}

// SubnamespaceParentID returns the id of the level just above the deepest
// level of name.  A single part name has no parent and produces an
// *FqnError.
func SubnamespaceParentID(name string) (NamespaceID, error) {
	path, err := GenerateNamespacePath(name)
	if err != nil {
		return 0, err
	}
	if len(path) < 2 {
		return 0, invalidFqn("missing parent", name)
	}
	return path[len(path)-2], nil
}

// SubnamespaceNamespaceID returns the id of the deepest level of name.
func SubnamespaceNamespaceID(name string) (NamespaceID, error) {
	return NamespaceIDFromName(name)
}

// NewNamespace returns the namespace for the provided fully qualified name.
func NewNamespace(name string) (Namespace, error) {
	nsID, err := NamespaceIDFromName(name)
	if err != nil {
		return Namespace{}, err
	}
	return Namespace{ID: nsID, FullName: name}, nil
}
