// Copyright (c) 2026 The nemkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

// ErrorKind identifies a kind of error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrInvalidLength indicates a public key, decoded address, encoded
	// address, or recipient does not have its required size.
	ErrInvalidLength = ErrorKind("ErrInvalidLength")

	// ErrInvalidCharacter indicates an encoded address contains a character
	// outside the Base32 alphabet.
	ErrInvalidCharacter = ErrorKind("ErrInvalidCharacter")

	// ErrBadChecksum indicates the checksum of a decoded address does not
	// match its contents.
	ErrBadChecksum = ErrorKind("ErrBadChecksum")

	// ErrWrongNetwork indicates an address is well formed but belongs to a
	// different network than the one requested.
	ErrWrongNetwork = ErrorKind("ErrWrongNetwork")

	// ErrUnknownNetwork indicates a network name or address prefix does not
	// identify a known network.
	ErrUnknownNetwork = ErrorKind("ErrUnknownNetwork")

	// ErrMalformedRecipient indicates an alias recipient has a non-zero
	// padding region.
	ErrMalformedRecipient = ErrorKind("ErrMalformedRecipient")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an address-related error.
//
// It has full support for errors.Is and errors.As, so the caller can ascertain
// the specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
