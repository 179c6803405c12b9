// Copyright (c) 2026 The nemkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package progresslog provides periodic logging for batch derivation.

Each Logger accumulates the number of processed items, and how many of them
failed, between log statements.  The totals are logged once the configured
interval, 10 seconds by default, has passed, or immediately when a message is
forced.
*/
package progresslog
