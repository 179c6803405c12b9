// Copyright (c) 2026 The nemkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Nemaddr derives and checks network addresses, mosaic ids and namespace ids.

Usage:

	nemaddr [OPTIONS] <command> [command OPTIONS] [args]

Application Options:

	-V, --version           Display version information and exit
	-A, --appdata=          Path to application home directory
	-C, --configfile=       Path to configuration file
	    --logdir=           Directory to log output
	    --maxlogrolls=      Number of rolled log files to keep (default: 8)
	    --nofilelogging     Disable file logging
	-d, --debuglevel=       Logging level for all subsystems (default: info)
	-n, --network=          Network addresses are derived for {mainnet,
	                        testnet, mijin, mijintest} (default: mainnet)
	    --workers=          Maximum number of keys or names derived at the
	                        same time (0 selects the number of CPUs)
	    --pathcachesize=    Number of namespace paths kept in memory during
	                        batch derivation (default: 1024)
	    --progressinterval= Time between progress messages during batch
	                        derivation (default: 10s)
	    --pretty            Print addresses in dash separated groups

Available commands:

	address      Derive addresses from public keys
	base32       Encode or decode base32
	batch        Derive addresses or namespace ids in bulk
	mosaicid     Derive a mosaic id
	namespaceid  Derive namespace ids
	validate     Validate encoded addresses
	words        Split 64-bit values into 32-bit words

A commented sample config file is written to the application home directory
the first time nemaddr runs.
*/
package main
