// Copyright (c) 2026 The nemkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"fmt"
	"strings"
)

// NetworkType is the single byte that tags which network an address belongs
// to.  It is the first byte of every decoded address.
type NetworkType byte

// These constants define the known networks.  Each value is chosen so the
// first character of an encoded address identifies the network.
const (
	// MainNet addresses start with 'N'.
	MainNet NetworkType = 0x68

	// TestNet addresses start with 'T'.
	TestNet NetworkType = 0x98

	// Mijin addresses start with 'M'.
	Mijin NetworkType = 0x60

	// MijinTest addresses start with 'S'.
	MijinTest NetworkType = 0x90
)

// networkNames maps each known network to its canonical name.
var networkNames = map[NetworkType]string{
	MainNet:   "mainnet",
	TestNet:   "testnet",
	Mijin:     "mijin",
	MijinTest: "mijintest",
}

// String returns the canonical name of the network or its hex value when the
// network is not known.
func (n NetworkType) String() string {
	if name, ok := networkNames[n]; ok {
		return name
	}
	return fmt.Sprintf("network(0x%02x)", byte(n))
}

// IsKnown reports whether n is one of the defined networks.
func (n NetworkType) IsKnown() bool {
	_, ok := networkNames[n]
	return ok
}

// ParseNetwork returns the network with the provided canonical name.  The
// comparison ignores case.
func ParseNetwork(name string) (NetworkType, error) {
	lower := strings.ToLower(name)
	for net, netName := range networkNames {
		if netName == lower {
			return net, nil
		}
	}
	str := fmt.Sprintf("unknown network name %q", name)
	return 0, makeError(ErrUnknownNetwork, str)
}

// NetworkFromAddressString returns the network identified by the first
// character of an encoded address.
func NetworkFromAddressString(s string) (NetworkType, error) {
	if len(s) == 0 {
		return 0, makeError(ErrUnknownNetwork, "empty address string")
	}
	switch s[0] {
	case 'N', 'n':
		return MainNet, nil
	case 'T', 't':
		return TestNet, nil
	case 'M', 'm':
		return Mijin, nil
	case 'S', 's':
		return MijinTest, nil
	}
	str := fmt.Sprintf("address %q does not start with a known network "+
		"prefix", s)
	return 0, makeError(ErrUnknownNetwork, str)
}
