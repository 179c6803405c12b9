// Copyright (c) 2026 The nemkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package id

import "fmt"

// ErrorKind identifies a kind of error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrInvalidLength indicates an owner public key or nonce does not have
	// its required size.
	ErrInvalidLength = ErrorKind("ErrInvalidLength")

	// ErrInvalidFqn indicates a namespace name is empty, has an empty or
	// malformed part, or has too many parts.
	ErrInvalidFqn = ErrorKind("ErrInvalidFqn")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an id generation error.
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

// FqnError describes a namespace name that could not be turned into a path.
// It matches ErrInvalidFqn via errors.Is.
type FqnError struct {
	Name   string
	Reason string
}

// Error satisfies the error interface and prints human-readable errors.
func (e *FqnError) Error() string {
	return fmt.Sprintf("fully qualified name is invalid due to %s (%s)",
		e.Reason, e.Name)
}

// Unwrap returns ErrInvalidFqn.
func (e *FqnError) Unwrap() error {
	return ErrInvalidFqn
}

// invalidFqn creates an FqnError for the provided name and reason.
func invalidFqn(reason, name string) *FqnError {
	return &FqnError{Name: name, Reason: reason}
}
