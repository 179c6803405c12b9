// Copyright (c) 2026 The nemkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package derive runs address and namespace id derivation over batches of inputs
on a bounded number of goroutines.

Results keep the order of their inputs.  The first failing input cancels the
rest of the batch and is reported as an *ItemError.  Progress is logged
periodically through the logger set with UseLogger.
*/
package derive
