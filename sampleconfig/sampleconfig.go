// Copyright (c) 2026 The nemkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sampleconfig

import (
	_ "embed"
)

// sampleNemaddrConf is a string containing the commented example config for
// nemaddr.
//
//go:embed sample-nemaddr.conf
var sampleNemaddrConf string

// Nemaddr returns a string containing the commented example config for
// nemaddr.
func Nemaddr() string {
	return sampleNemaddrConf
}
