// Copyright (c) 2026 The nemkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/nemkit/nemkit/address"
	"github.com/nemkit/nemkit/base32"
	"github.com/nemkit/nemkit/convert"
	"github.com/nemkit/nemkit/derive"
	"github.com/nemkit/nemkit/id"
	"github.com/nemkit/nemkit/math/uint64pair"
	"golang.org/x/term"
)

// cmdEnv is the state shared by all commands.  The config is filled in by
// loadConfig once parsing is complete.
type cmdEnv struct {
	cfg    *config
	ctx    context.Context
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	// isTerminal reports whether in is an interactive terminal.
	isTerminal func() bool
}

// newStdEnv returns a command environment bound to the process standard
// streams.
func newStdEnv() *cmdEnv {
	return &cmdEnv{
		ctx:    context.Background(),
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
}

// formatAddress returns the configured text form of an address.
func (env *cmdEnv) formatAddress(decoded address.Decoded) string {
	if env.cfg.Pretty {
		return decoded.Pretty()
	}
	return decoded.String()
}

// addCommands registers every command with the parser.
func addCommands(parser *flags.Parser, env *cmdEnv) {
	commands := []struct {
		name  string
		short string
		long  string
		data  any
	}{{
		name:  "address",
		short: "Derive addresses from public keys",
		long:  "Derive the address of each hex encoded public key on the configured network.",
		data:  &addressCmd{env: env},
	}, {
		name:  "validate",
		short: "Validate encoded addresses",
		long:  "Check the length, alphabet, network and checksum of each address.",
		data:  &validateCmd{env: env},
	}, {
		name:  "mosaicid",
		short: "Derive a mosaic id",
		long:  "Derive the id of the mosaic created by an owner public key with a nonce.",
		data:  &mosaicIDCmd{env: env},
	}, {
		name:  "namespaceid",
		short: "Derive namespace ids",
		long:  "Derive the id of each fully qualified namespace name.",
		data:  &namespaceIDCmd{env: env},
	}, {
		name:  "words",
		short: "Split 64-bit values into 32-bit words",
		long:  "Print the low and high 32-bit words of each 64-bit value.",
		data:  &wordsCmd{env: env},
	}, {
		name:  "base32",
		short: "Encode or decode base32",
		long:  "Encode hex input as base32 or decode base32 input to hex.  Input must be a whole number of blocks.",
		data:  &base32Cmd{env: env},
	}, {
		name:  "batch",
		short: "Derive addresses or namespace ids in bulk",
		long:  "Read one public key or namespace name per line from a file or standard input and print the results in input order.",
		data:  &batchCmd{env: env},
	}}
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.data); err != nil {
			panic(fmt.Sprintf("unable to register command %s: %v", c.name, err))
		}
	}
}

// addressCmd derives addresses from public keys.
type addressCmd struct {
	env  *cmdEnv
	Args struct {
		PubKeys []string `positional-arg-name:"pubkey" required:"1"`
	} `positional-args:"yes"`
}

// Execute derives and prints the address of each public key.
func (c *addressCmd) Execute(args []string) error {
	for _, s := range c.Args.PubKeys {
		pubKey, err := convert.HexToBytes(s)
		if err != nil {
			return fmt.Errorf("public key %q: %w", s, err)
		}
		decoded, err := address.PublicKeyToAddress(pubKey, c.env.cfg.net)
		if err != nil {
			return fmt.Errorf("public key %q: %w", s, err)
		}
		fmt.Fprintln(c.env.out, c.env.formatAddress(decoded))
	}
	return nil
}

// validateCmd validates encoded addresses.
type validateCmd struct {
	env        *cmdEnv
	AnyNetwork bool `long:"anynetwork" description:"Accept addresses for any known network instead of only the configured one"`
	Args       struct {
		Addresses []string `positional-arg-name:"address" required:"1"`
	} `positional-args:"yes"`
}

// Execute prints whether each address is valid.  An error is returned when
// any address is invalid.
func (c *validateCmd) Execute(args []string) error {
	var numInvalid int
	for _, s := range c.Args.Addresses {
		net := c.env.cfg.net
		if c.AnyNetwork {
			var err error
			net, err = address.NetworkFromAddressString(s)
			if err != nil {
				numInvalid++
				fmt.Fprintf(c.env.out, "%s invalid: %v\n", s, err)
				continue
			}
		}
		decoded, err := address.ParseAddress(s, net)
		if err != nil {
			numInvalid++
			fmt.Fprintf(c.env.out, "%s invalid: %v\n", s, err)
			continue
		}
		fmt.Fprintf(c.env.out, "%s valid %s\n", c.env.formatAddress(decoded),
			decoded.Network())
	}
	if numInvalid > 0 {
		str := fmt.Sprintf("%d of %d addresses are invalid", numInvalid,
			len(c.Args.Addresses))
		return errSuppressUsage(str)
	}
	return nil
}

// mosaicIDCmd derives a mosaic id.
type mosaicIDCmd struct {
	env   *cmdEnv
	Nonce string `long:"nonce" description:"Nonce as 8 hex characters (a random nonce is used when omitted)"`
	Args  struct {
		Owner string `positional-arg-name:"ownerpubkey"`
	} `positional-args:"yes" required:"yes"`
}

// Execute derives and prints the mosaic id along with the nonce used.
func (c *mosaicIDCmd) Execute(args []string) error {
	owner, err := convert.HexToBytes(c.Args.Owner)
	if err != nil {
		return fmt.Errorf("owner public key %q: %w", c.Args.Owner, err)
	}
	nonce := id.NewMosaicNonce()
	if c.Nonce != "" {
		nonce, err = id.MosaicNonceFromHex(c.Nonce)
		if err != nil {
			return err
		}
	}
	mosaicID, err := id.GenerateMosaicID(nonce, owner)
	if err != nil {
		return err
	}
	words := mosaicID.Words()
	fmt.Fprintf(c.env.out, "nonce %s (%d)\n", nonce, nonce.Uint32())
	fmt.Fprintf(c.env.out, "id %s (%d %d)\n", mosaicID, words.Lo, words.Hi)
	return nil
}

// namespaceIDCmd derives namespace ids.
type namespaceIDCmd struct {
	env       *cmdEnv
	Path      bool `long:"path" description:"Print the id of every level of each name"`
	Recipient bool `long:"recipient" description:"Also print the alias recipient of each namespace for the configured network"`
	Args      struct {
		Names []string `positional-arg-name:"name" required:"1"`
	} `positional-args:"yes"`
}

// Execute derives and prints the ids of each name.
func (c *namespaceIDCmd) Execute(args []string) error {
	for _, name := range c.Args.Names {
		path, err := id.GenerateNamespacePath(name)
		if err != nil {
			return err
		}
		first := len(path) - 1
		if c.Path {
			first = 0
		}
		parts := strings.Split(name, ".")
		for i := first; i < len(path); i++ {
			words := path[i].Words()
			fmt.Fprintf(c.env.out, "%s %s (%d %d)\n",
				strings.Join(parts[:i+1], "."), path[i], words.Lo, words.Hi)
		}
		if c.Recipient {
			r := address.NamespaceRecipient(uint64(path[len(path)-1]),
				c.env.cfg.net)
			fmt.Fprintf(c.env.out, "recipient %s\n", convert.BytesToHex(r[:]))
		}
	}
	return nil
}

// wordsCmd splits 64-bit values into 32-bit words.
type wordsCmd struct {
	env  *cmdEnv
	Hex  bool `long:"hex" description:"Values are 16 hex characters instead of decimal"`
	Args struct {
		Values []string `positional-arg-name:"value" required:"1"`
	} `positional-args:"yes"`
}

// Execute prints the hex form, words and JSON safety of each value.
func (c *wordsCmd) Execute(args []string) error {
	for _, s := range c.Args.Values {
		var v uint64
		var err error
		if c.Hex {
			v, err = uint64pair.ParseHex(s)
		} else {
			v, err = uint64pair.ParseDecimal(s)
		}
		if err != nil {
			return err
		}
		pair := uint64pair.FromUint64(v)
		fmt.Fprintf(c.env.out, "%s lo %d hi %d safe %t\n", pair.Hex(),
			pair.Lo, pair.Hi, uint64pair.IsSafeInteger(v))
	}
	return nil
}

// base32Cmd encodes and decodes base32.
type base32Cmd struct {
	env    *cmdEnv
	Decode bool `short:"D" long:"decode" description:"Decode base32 input instead of encoding hex input"`
	Text   bool `long:"text" description:"Treat the unencoded side as UTF-8 text instead of hex"`
	Args   struct {
		Input string `positional-arg-name:"input"`
	} `positional-args:"yes" required:"yes"`
}

// Execute prints the encoded or decoded input.
func (c *base32Cmd) Execute(args []string) error {
	if c.Decode {
		data, err := base32.Decode(c.Args.Input)
		if err != nil {
			return err
		}
		out := convert.BytesToHex(data)
		if c.Text {
			out, err = convert.HexToUTF8(out)
			if err != nil {
				return err
			}
		}
		fmt.Fprintln(c.env.out, out)
		return nil
	}

	in := c.Args.Input
	if c.Text {
		in = convert.UTF8ToHex(in)
	}
	data, err := convert.HexToBytes(in)
	if err != nil {
		return err
	}
	encoded, err := base32.Encode(data)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.env.out, encoded)
	return nil
}

// batchCmd derives addresses or namespace ids in bulk.
type batchCmd struct {
	env   *cmdEnv
	Names bool `long:"names" description:"Read namespace names instead of public keys"`
	Args  struct {
		File string `positional-arg-name:"file" description:"File to read (standard input when omitted or -)"`
	} `positional-args:"yes"`
}

// batchLine is a non-empty input line and its one based line number.
type batchLine struct {
	num  int
	text string
}

// readBatchLines returns the non-empty lines of r that are not comments.
func readBatchLines(r io.Reader) ([]batchLine, error) {
	var lines []batchLine
	scanner := bufio.NewScanner(r)
	for num := 1; scanner.Scan(); num++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, batchLine{num: num, text: text})
	}
	return lines, scanner.Err()
}

// open returns the reader for the batch input.
func (c *batchCmd) open() (io.ReadCloser, error) {
	if c.Args.File != "" && c.Args.File != "-" {
		return os.Open(cleanAndExpandPath(c.Args.File))
	}
	if c.env.isTerminal != nil && c.env.isTerminal() {
		what := "public keys"
		if c.Names {
			what = "namespace names"
		}
		fmt.Fprintf(c.env.errOut, "Enter %s, one per line, then end of "+
			"input (Ctrl+D):\n", what)
	}
	return io.NopCloser(c.env.in), nil
}

// lineError maps a batch error to the line that caused it.
func lineError(err error, lines []batchLine) error {
	var itemErr *derive.ItemError
	if errors.As(err, &itemErr) {
		return fmt.Errorf("line %d: %w", lines[itemErr.Index].num, itemErr.Err)
	}
	return err
}

// Execute derives and prints the result for every input line.
func (c *batchCmd) Execute(args []string) error {
	r, err := c.open()
	if err != nil {
		return err
	}
	lines, err := readBatchLines(r)
	r.Close()
	if err != nil {
		return err
	}

	cfg := c.env.cfg
	deriveCfg := &derive.Config{
		Workers:          cfg.Workers,
		ProgressInterval: cfg.ProgressInterval,
	}

	if c.Names {
		if cfg.PathCacheSize > 0 {
			deriveCfg.Cache = id.NewPathCache(cfg.PathCacheSize)
		}
		names := make([]string, len(lines))
		for i, line := range lines {
			names[i] = line.text
		}
		nsIDs, err := derive.NamespaceIDs(c.env.ctx, names, deriveCfg)
		if err != nil {
			return lineError(err, lines)
		}
		for i, nsID := range nsIDs {
			fmt.Fprintf(c.env.out, "%s %s\n", names[i], nsID)
		}
		return nil
	}

	pubKeys := make([][]byte, len(lines))
	for i, line := range lines {
		pubKeys[i], err = convert.HexToBytes(line.text)
		if err != nil {
			return fmt.Errorf("line %d: %w", line.num, err)
		}
	}
	addrs, err := derive.Addresses(c.env.ctx, pubKeys, cfg.net, deriveCfg)
	if err != nil {
		return lineError(err, lines)
	}
	for _, decoded := range addrs {
		fmt.Fprintln(c.env.out, c.env.formatAddress(decoded))
	}
	return nil
}
