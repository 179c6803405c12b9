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
	"time"

	flags "github.com/jessevdk/go-flags"
	"github.com/nemkit/nemkit/address"
	"github.com/nemkit/nemkit/internal/version"
	"github.com/nemkit/nemkit/sampleconfig"
)

const (
	defaultConfigFilename   = "nemaddr.conf"
	defaultLogDirname       = "logs"
	defaultLogFilename      = "nemaddr.log"
	defaultLogLevel         = "info"
	defaultMaxLogRolls      = 8
	defaultNetwork          = "mainnet"
	defaultPathCacheSize    = 1024
	defaultProgressInterval = 10 * time.Second
)

var (
	defaultHomeDir    = defaultAppDataDir("nemaddr")
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
	defaultLogDir     = filepath.Join(defaultHomeDir, defaultLogDirname)
)

// config defines the configuration options for nemaddr.
//
// See loadConfig for details on the configuration load process.
type config struct {
	// General application behavior.
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	HomeDir     string `short:"A" long:"appdata" description:"Path to application home directory"`
	ConfigFile  string `short:"C" long:"configfile" description:"Path to configuration file"`

	// Logging.
	LogDir        string `long:"logdir" description:"Directory to log output"`
	MaxLogRolls   int    `long:"maxlogrolls" description:"Number of rolled log files to keep"`
	NoFileLogging bool   `long:"nofilelogging" description:"Disable file logging"`
	DebugLevel    string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`

	// Derivation.
	Network          string        `short:"n" long:"network" description:"Network addresses are derived for {mainnet, testnet, mijin, mijintest}"`
	Workers          int           `long:"workers" description:"Maximum number of keys or names derived at the same time (0 selects the number of CPUs)"`
	PathCacheSize    uint32        `long:"pathcachesize" description:"Number of namespace paths kept in memory during batch derivation (0 disables the cache)"`
	ProgressInterval time.Duration `long:"progressinterval" description:"Time between progress messages during batch derivation"`
	Pretty           bool          `long:"pretty" description:"Print addresses in dash separated groups of six characters"`

	// net is the parsed form of Network.
	net address.NetworkType
}

// errSuppressUsage signifies that an error that happened during the initial
// configuration phase should suppress the usage output since it was not caused
// by the user.
type errSuppressUsage string

// Error implements the error interface.
func (e errSuppressUsage) Error() string {
	return string(e)
}

// errShowSubsystems signifies the caller asked for the list of logging
// subsystems, which has already been printed.
var errShowSubsystems = errors.New("requested subsystem list")

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Nothing to do when no path is given.
	if path == "" {
		return path
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows cmd.exe-style
	// %VARIABLE%, but the variables can still be expanded via POSIX-style
	// $VARIABLE.
	path = os.ExpandEnv(path)

	if !strings.HasPrefix(path, "~") {
		return filepath.Clean(path)
	}

	// Expand initial ~ to the current user's home directory, or ~otheruser to
	// otheruser's home directory.  On Windows, both forward and backward
	// slashes can be used.
	path = path[1:]

	var pathSeparators string
	if runtime.GOOS == "windows" {
		pathSeparators = string(os.PathSeparator) + "/"
	} else {
		pathSeparators = string(os.PathSeparator)
	}

	userName := ""
	if i := strings.IndexAny(path, pathSeparators); i != -1 {
		userName = path[:i]
		path = path[i:]
	}

	homeDir := ""
	if userName == "" {
		homeDir, _ = os.UserHomeDir()
	}
	if homeDir == "" {
		// Fallback to CWD if the user's home directory can't be found.
		homeDir = "."
	}

	return filepath.Join(homeDir, path)
}

// createDefaultConfigFile writes the sample configuration to the provided path
// along with any directories it needs.
func createDefaultConfigFile(destPath string) error {
	err := os.MkdirAll(filepath.Dir(destPath), 0700)
	if err != nil {
		return err
	}
	return os.WriteFile(destPath, []byte(sampleconfig.Nemaddr()), 0600)
}

// newConfigParser returns a new command line parser for cfg with all commands
// registered against env.
func newConfigParser(cfg *config, env *cmdEnv, options flags.Options) *flags.Parser {
	parser := flags.NewParser(cfg, options)
	addCommands(parser, env)
	return parser
}

// loadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// The selected command and its arguments are returned without being run.
func loadConfig(appName string, args []string, env *cmdEnv) (*config, flags.Commander, []string, error) {
	// Default config.
	cfg := config{
		HomeDir:          defaultHomeDir,
		ConfigFile:       defaultConfigFile,
		LogDir:           defaultLogDir,
		MaxLogRolls:      defaultMaxLogRolls,
		DebugLevel:       defaultLogLevel,
		Network:          defaultNetwork,
		PathCacheSize:    defaultPathCacheSize,
		ProgressInterval: defaultProgressInterval,
	}

	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified.  Any errors aside from the
	// help message error can be ignored here since they will be caught by
	// the final parse below.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.PassDoubleDash|flags.IgnoreUnknown)
	preParser.ParseArgs(args)

	// Show the version and exit if the version flag was specified.
	if preCfg.ShowVersion {
		fmt.Fprintf(env.out, "%s version %s (Go version %s %s/%s)\n", appName,
			version.String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
		os.Exit(0)
	}

	// Update the home directory if specified.  Since the home directory is
	// updated, other variables need to be updated to reflect the new
	// changes.
	if preCfg.HomeDir != "" {
		cfg.HomeDir = cleanAndExpandPath(preCfg.HomeDir)
		if cfg.HomeDir != defaultHomeDir {
			cfg.ConfigFile = filepath.Join(cfg.HomeDir, defaultConfigFilename)
			cfg.LogDir = filepath.Join(cfg.HomeDir, defaultLogDirname)
		}
	}
	configFileSet := preCfg.ConfigFile != defaultConfigFile
	if configFileSet {
		cfg.ConfigFile = cleanAndExpandPath(preCfg.ConfigFile)
	}

	// Capture the selected command instead of running it so logging and
	// validation finish first.
	var command flags.Commander
	var commandArgs []string
	parser := newConfigParser(&cfg, env, flags.Default)
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		command, commandArgs = cmd, args
		return nil
	}

	// Load additional config from file.  A missing default config file is
	// created from the sample config.
	err := flags.NewIniParser(parser).ParseFile(cfg.ConfigFile)
	if err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			str := fmt.Sprintf("error parsing config file: %v", err)
			return nil, nil, nil, errors.New(str)
		}
		if !configFileSet {
			if err := createDefaultConfigFile(cfg.ConfigFile); err != nil {
				str := fmt.Sprintf("unable to create config file: %v", err)
				return nil, nil, nil, errSuppressUsage(str)
			}
		}
	}

	// Parse command line options again to ensure they take precedence.
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, nil, nil, err
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Fprintln(env.out, "Supported subsystems", supportedSubsystems())
		return nil, nil, nil, errShowSubsystems
	}

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return nil, nil, nil, err
	}

	cfg.net, err = address.ParseNetwork(cfg.Network)
	if err != nil {
		return nil, nil, nil, err
	}
	if cfg.Workers < 0 {
		str := fmt.Sprintf("the workers option may not be negative -- "+
			"parsed [%d]", cfg.Workers)
		return nil, nil, nil, errors.New(str)
	}
	if cfg.ProgressInterval <= 0 {
		str := fmt.Sprintf("the progressinterval option must be positive "+
			"-- parsed [%v]", cfg.ProgressInterval)
		return nil, nil, nil, errors.New(str)
	}

	// Initialize log rotation.  After the log rotation has been initialized,
	// the logger variables may be used.
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
	if !cfg.NoFileLogging {
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := initLogRotator(logFile, cfg.MaxLogRolls); err != nil {
			return nil, nil, nil, errSuppressUsage(err.Error())
		}
	}

	env.cfg = &cfg
	return &cfg, command, commandArgs, nil
}
