// Copyright (c) 2026 The nemkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"unicode"
)

// appDataDir returns an operating system specific directory to be used for
// storing application data for an application.
//
// The appName parameter is the name of the application the data directory is
// being requested for.  This function will prepend a period to the appName for
// POSIX style operating systems since that is standard practice.  An empty
// appName or one with a single dot is treated as requesting the current
// directory so only "." will be returned.  Further, the first character of
// appName will be made lowercase for POSIX style operating systems and
// uppercase for Mac and Windows since that is standard practice.
func appDataDir(goos, appName string) string {
	if appName == "" || appName == "." {
		return "."
	}

	// The caller really shouldn't prepend the appName with a period, but
	// if they do, handle it gracefully by trimming it.
	appName = strings.TrimPrefix(appName, ".")
	appNameUpper := string(unicode.ToUpper(rune(appName[0]))) + appName[1:]
	appNameLower := string(unicode.ToLower(rune(appName[0]))) + appName[1:]

	// Get the OS specific home directory.
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	switch goos {
	// Attempt to use the LOCALAPPDATA or APPDATA environment variable on
	// Windows.
	case "windows":
		// Windows XP and before didn't have a LOCALAPPDATA, so fallback
		// to regular APPDATA when LOCALAPPDATA is not set.
		appData := os.Getenv("LOCALAPPDATA")
		if appData == "" {
			appData = os.Getenv("APPDATA")
		}
		if appData != "" {
			return filepath.Join(appData, appNameUpper)
		}

	case "darwin":
		return filepath.Join(homeDir, "Library", "Application Support",
			appNameUpper)

	case "plan9":
		return filepath.Join(homeDir, appNameLower)
	}

	// Fall back to standard HOME directory that works for most POSIX OSes.
	return filepath.Join(homeDir, "."+appNameLower)
}

// defaultAppDataDir returns the application data directory for the current
// operating system.
func defaultAppDataDir(appName string) string {
	return appDataDir(runtime.GOOS, appName)
}
