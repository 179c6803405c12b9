// Copyright (c) 2026 The nemkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address_test

import (
	"encoding/hex"
	"fmt"

	"github.com/nemkit/nemkit/address"
)

// This example demonstrates deriving the address of a public key and showing
// it in both textual forms.
func ExamplePublicKeyToAddress() {
	pubKey, err := hex.DecodeString("3485d98efd7eb07adafcfd1a157d89de2796a95e" +
		"780813c0258af3f5f84ed8cb")
	if err != nil {
		fmt.Println(err)
		return
	}

	addr, err := address.PublicKeyToAddress(pubKey, address.MainNet)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(addr)
	fmt.Println(addr.Pretty())

	// Output:
	// NAR3W7B4BCOZSZMFIZRYB3N5YGOUSWIYJCJ6HDFG
	// NAR3W7-B4BCOZ-SZMFIZ-RYB3N5-YGOUSW-IYJCJ6-HDFG
}

// This example demonstrates parsing a user supplied address for a specific
// network.
func ExampleParseAddress() {
	addr, err := address.ParseAddress("TAR3W7-B4BCOZ-SZMFIZ-RYB3N5-YGOUSW-"+
		"IYJBF7-P2MX", address.TestNet)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%x\n", addr[:])

	_, err = address.ParseAddress(addr.String(), address.MainNet)
	fmt.Println(err)

	// Output:
	// 9823bb7c3c089d996585466380edbdc19d495918484bf7e997
	// address "TAR3W7B4BCOZSZMFIZRYB3N5YGOUSWIYJBF7P2MX" is for network testnet, not mainnet
}
