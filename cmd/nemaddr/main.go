// Copyright (c) 2026 The nemkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/nemkit/nemkit/internal/version"
)

// nemaddrMain is the real main function for nemaddr.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func nemaddrMain() error {
	// Load configuration and parse command line.  This function also
	// initializes logging and configures it accordingly.
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	env := newStdEnv()
	cfg, command, args, err := loadConfig(appName, os.Args[1:], env)
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) {
			// The parser already printed the message.
			if e.Type == flags.ErrHelp {
				return nil
			}
			return err
		}
		if errors.Is(err, errShowSubsystems) {
			return nil
		}
		fmt.Fprintln(os.Stderr, err)
		var suppress errSuppressUsage
		if !errors.As(err, &suppress) {
			fmt.Fprintf(os.Stderr, "Use %s -h to show usage\n", appName)
		}
		return err
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	// Get a context that will be canceled when a shutdown signal has been
	// triggered from an OS signal such as SIGINT (Ctrl+C).
	env.ctx = shutdownListener()

	nemaLog.Debugf("Version %s (Go version %s %s/%s)", version.String(),
		runtime.Version(), runtime.GOOS, runtime.GOARCH)
	nemaLog.Debugf("Home dir: %s", cfg.HomeDir)
	nemaLog.Debugf("Network: %s", cfg.net)

	if command == nil {
		return nil
	}
	if err := command.Execute(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

func main() {
	if err := nemaddrMain(); err != nil {
		os.Exit(1)
	}
}
