// Copyright (c) 2026 The nemkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	flags "github.com/jessevdk/go-flags"
	"github.com/nemkit/nemkit/address"
	"github.com/nemkit/nemkit/sampleconfig"
)

const testPubKey = "3485d98efd7eb07adafcfd1a157d89de2796a95e780813c0258af3f5f84ed8cb"

// newTestEnv returns a command environment that writes to the returned
// buffer.
func newTestEnv() (*cmdEnv, *bytes.Buffer) {
	var out bytes.Buffer
	return &cmdEnv{
		ctx:    context.Background(),
		in:     strings.NewReader(""),
		out:    &out,
		errOut: io.Discard,
	}, &out
}

// TestLoadConfig ensures the config file, command line and defaults combine
// as expected and the selected command is returned without being run.
func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		confFile    string
		args        []string
		wantNet     address.NetworkType
		wantPretty  bool
		wantWorkers int
		wantCmd     string
	}{{
		name:    "defaults",
		args:    []string{"address", testPubKey},
		wantNet: address.MainNet,
		wantCmd: "NAR3W7B4BCOZSZMFIZRYB3N5YGOUSWIYJCJ6HDFG\n",
	}, {
		name:        "config file",
		confFile:    "[Application Options]\nnetwork=testnet\npretty=1\nworkers=3\n",
		args:        []string{"address", testPubKey},
		wantNet:     address.TestNet,
		wantPretty:  true,
		wantWorkers: 3,
		wantCmd:     "TAR3W7-B4BCOZ-SZMFIZ-RYB3N5-YGOUSW-IYJBF7-P2MX\n",
	}, {
		name:     "command line overrides config file",
		confFile: "[Application Options]\nnetwork=testnet\n",
		args:     []string{"--network=mijin", "address", testPubKey},
		wantNet:  address.Mijin,
		wantCmd:  "MAR3W7B4BCOZSZMFIZRYB3N5YGOUSWIYJCZXE5YU\n",
	}, {
		name:    "short network flag and mixed case",
		args:    []string{"-n", "MijinTest", "address", testPubKey},
		wantNet: address.MijinTest,
		wantCmd: "SAR3W7B4BCOZSZMFIZRYB3N5YGOUSWIYJBXU7BVH\n",
	}}

	for _, test := range tests {
		homeDir := t.TempDir()
		if test.confFile != "" {
			confPath := filepath.Join(homeDir, defaultConfigFilename)
			err := os.WriteFile(confPath, []byte(test.confFile), 0600)
			if err != nil {
				t.Fatalf("%q: unable to write config: %v", test.name, err)
			}
		}

		env, out := newTestEnv()
		args := append([]string{"--appdata", homeDir, "--nofilelogging"},
			test.args...)
		cfg, cmd, cmdArgs, err := loadConfig("nemaddr", args, env)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", test.name, err)
			continue
		}
		if cfg.net != test.wantNet {
			t.Errorf("%q: mismatched network -- got %s, want %s", test.name,
				cfg.net, test.wantNet)
		}
		if cfg.Pretty != test.wantPretty {
			t.Errorf("%q: mismatched pretty -- got %v, want %v", test.name,
				cfg.Pretty, test.wantPretty)
		}
		if cfg.Workers != test.wantWorkers {
			t.Errorf("%q: mismatched workers -- got %d, want %d", test.name,
				cfg.Workers, test.wantWorkers)
		}
		if cfg.ProgressInterval != defaultProgressInterval {
			t.Errorf("%q: mismatched progress interval -- got %v",
				test.name, cfg.ProgressInterval)
		}
		if env.cfg != cfg {
			t.Errorf("%q: command environment config not set", test.name)
		}
		if _, ok := cmd.(*addressCmd); !ok {
			t.Errorf("%q: mismatched command -- got %T", test.name, cmd)
			continue
		}
		if out.Len() != 0 {
			t.Errorf("%q: command ran during config load", test.name)
		}
		if err := cmd.Execute(cmdArgs); err != nil {
			t.Errorf("%q: unexpected command error: %v", test.name, err)
			continue
		}
		if out.String() != test.wantCmd {
			t.Errorf("%q: mismatched output -- got %q, want %q", test.name,
				out.String(), test.wantCmd)
		}
	}
}

// TestLoadConfigCreatesSample ensures a missing default config file is
// written from the sample config while an explicitly named one is not.
func TestLoadConfigCreatesSample(t *testing.T) {
	homeDir := t.TempDir()
	env, _ := newTestEnv()
	args := []string{"--appdata", homeDir, "--nofilelogging", "words", "1"}
	if _, _, _, err := loadConfig("nemaddr", args, env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(homeDir, defaultConfigFilename))
	if err != nil {
		t.Fatalf("sample config not written: %v", err)
	}
	if string(got) != sampleconfig.Nemaddr() {
		t.Fatalf("written config does not match the sample config")
	}

	otherHome := t.TempDir()
	confPath := filepath.Join(otherHome, "custom.conf")
	args = []string{"--appdata", otherHome, "--configfile", confPath,
		"--nofilelogging", "words", "1"}
	if _, _, _, err := loadConfig("nemaddr", args, env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(confPath); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("explicit config file was created: %v", err)
	}
}

// TestLoadConfigFileLogging ensures the log rotator writes into the log
// directory.
func TestLoadConfigFileLogging(t *testing.T) {
	homeDir := t.TempDir()
	env, _ := newTestEnv()
	args := []string{"--appdata", homeDir, "words", "1"}
	if _, _, _, err := loadConfig("nemaddr", args, env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() {
		logRotator.Close()
		logRotator = nil
	}()
	logDir := filepath.Join(homeDir, defaultLogDirname)
	if _, err := os.Stat(logDir); err != nil {
		t.Fatalf("log directory not created: %v", err)
	}
}

// TestLoadConfigErrors ensures invalid options are rejected.
func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name     string
		confFile string
		args     []string
		check    func(error) bool
	}{{
		name: "unknown network",
		args: []string{"--network=moonnet", "words", "1"},
		check: func(err error) bool {
			return errors.Is(err, address.ErrUnknownNetwork)
		},
	}, {
		name: "negative workers",
		args: []string{"--workers=-1", "words", "1"},
		check: func(err error) bool {
			return strings.Contains(err.Error(), "workers")
		},
	}, {
		name: "zero progress interval",
		args: []string{"--progressinterval=0s", "words", "1"},
		check: func(err error) bool {
			return strings.Contains(err.Error(), "progressinterval")
		},
	}, {
		name: "invalid debug level",
		args: []string{"--debuglevel=loud", "words", "1"},
		check: func(err error) bool {
			return strings.Contains(err.Error(), "debug level")
		},
	}, {
		name: "invalid subsystem",
		args: []string{"--debuglevel=XXXX=debug", "words", "1"},
		check: func(err error) bool {
			return strings.Contains(err.Error(), "subsystem")
		},
	}, {
		name: "no command",
		args: nil,
		check: func(err error) bool {
			var e *flags.Error
			return errors.As(err, &e) && e.Type == flags.ErrCommandRequired
		},
	}, {
		name: "help",
		args: []string{"-h"},
		check: func(err error) bool {
			var e *flags.Error
			return errors.As(err, &e) && e.Type == flags.ErrHelp
		},
	}, {
		name:     "malformed config file",
		confFile: "[Application Options]\nworkers=many\n",
		args:     []string{"words", "1"},
		check: func(err error) bool {
			return strings.Contains(err.Error(), "config file")
		},
	}, {
		name: "show subsystems",
		args: []string{"--debuglevel=show", "words", "1"},
		check: func(err error) bool {
			return errors.Is(err, errShowSubsystems)
		},
	}}

	for _, test := range tests {
		homeDir := t.TempDir()
		if test.confFile != "" {
			confPath := filepath.Join(homeDir, defaultConfigFilename)
			err := os.WriteFile(confPath, []byte(test.confFile), 0600)
			if err != nil {
				t.Fatalf("%q: unable to write config: %v", test.name, err)
			}
		}
		env, _ := newTestEnv()
		args := append([]string{"--appdata", homeDir, "--nofilelogging"},
			test.args...)
		_, _, _, err := loadConfig("nemaddr", args, env)
		if err == nil {
			t.Errorf("%q: did not receive expected error", test.name)
			continue
		}
		if !test.check(err) {
			t.Errorf("%q: unexpected error: %v", test.name, err)
		}
	}

	// Restore the default levels for other tests.
	setLogLevels(defaultLogLevel)
}

// TestCleanAndExpandPath ensures paths are cleaned and the home directory is
// expanded.
func TestCleanAndExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	t.Setenv("NEMADDR_TEST_DIR", "/tmp/nemaddr")

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/a/b/../c", filepath.Clean("/a/c")},
		{"~", homeDir},
		{"~/logs", filepath.Join(homeDir, "logs")},
		{"$NEMADDR_TEST_DIR/logs", filepath.Clean("/tmp/nemaddr/logs")},
	}
	for _, test := range tests {
		if got := cleanAndExpandPath(test.in); got != test.want {
			t.Errorf("%q: mismatched path -- got %q, want %q", test.in, got,
				test.want)
		}
	}
}

// TestAppDataDir ensures the data directory follows each operating system's
// conventions.
func TestAppDataDir(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	tests := []struct {
		goos string
		name string
		want string
	}{
		{"linux", "nemaddr", filepath.Join(homeDir, ".nemaddr")},
		{"linux", ".Nemaddr", filepath.Join(homeDir, ".nemaddr")},
		{"darwin", "nemaddr", filepath.Join(homeDir, "Library",
			"Application Support", "Nemaddr")},
		{"plan9", "nemaddr", filepath.Join(homeDir, "nemaddr")},
		{"linux", "", "."},
		{"linux", ".", "."},
	}
	for _, test := range tests {
		if got := appDataDir(test.goos, test.name); got != test.want {
			t.Errorf("%s/%q: mismatched dir -- got %q, want %q", test.goos,
				test.name, got, test.want)
		}
	}
}

// TestParseCommandOptions ensures command options and positional arguments
// are wired to the command structs.
func TestParseCommandOptions(t *testing.T) {
	var cfg config
	env, _ := newTestEnv()
	parser := newConfigParser(&cfg, env, flags.HelpFlag)
	var got flags.Commander
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		got = cmd
		return nil
	}

	_, err := parser.ParseArgs([]string{"--progressinterval=3s",
		"namespaceid", "--path", "--recipient", "nem.xem", "cat"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nsCmd, ok := got.(*namespaceIDCmd)
	if !ok {
		t.Fatalf("mismatched command -- got %T", got)
	}
	if !nsCmd.Path || !nsCmd.Recipient {
		t.Fatalf("command options not set: %+v", nsCmd)
	}
	if strings.Join(nsCmd.Args.Names, ",") != "nem.xem,cat" {
		t.Fatalf("mismatched names -- got %v", nsCmd.Args.Names)
	}
	if cfg.ProgressInterval != 3*time.Second {
		t.Fatalf("mismatched progress interval -- got %v",
			cfg.ProgressInterval)
	}
	if nsCmd.env != env {
		t.Fatalf("command not bound to the environment")
	}

	if _, err := parser.ParseArgs([]string{"mosaicid"}); err == nil {
		t.Fatalf("missing owner did not produce an error")
	}
}
