// Copyright (c) 2026 The nemkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package derive

import "fmt"

// ItemError describes the input that stopped a batch.  It wraps the error
// returned for that input so callers can still match its kind with
// errors.Is.
type ItemError struct {
	Index int
	Err   error
}

// Error satisfies the error interface and prints human-readable errors.
func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying wrapped error.
func (e *ItemError) Unwrap() error {
	return e.Err
}
