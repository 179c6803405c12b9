// Copyright (c) 2026 The nemkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package id derives mosaic and namespace identifiers.

Both identifier kinds are 8 byte values taken from the front of a SHA3-256
digest and read as two little-endian 32-bit words.  The most significant bit
tells them apart: it is always clear for a MosaicID and always set for a
NamespaceID.

A namespace name is a dot separated list of at most three parts, such as
"nem.xem".  Each part is hashed together with the id of the part before it, so
GenerateNamespacePath returns one id per level, root first.
*/
package id
