// Copyright (c) 2026 The nemkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package convert

// UTF8ToHex returns the uppercase hex encoding of the UTF-8 bytes of s.
func UTF8ToHex(s string) string {
	return BytesToHex([]byte(s))
}

// HexToUTF8 decodes the provided hex string and returns the result as text.
//
// Only malformed hex is an error.  Decoded bytes that are not valid UTF-8 are
// returned unchanged so binary and legacy payloads survive a round trip.
func HexToUTF8(s string) (string, error) {
	b, err := HexToBytes(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
