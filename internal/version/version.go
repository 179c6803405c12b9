// Copyright (c) 2026 The nemkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version holds the version information for nemaddr and other
// utilities provided in the same repository.
package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// semanticAlphabet defines the allowed characters for the pre-release and
// build metadata portions of a semantic version string.
const semanticAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-."

// semverRE splits a semantic version string into its constituent parts.
var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
	`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*` +
	`[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

// Version is the application version per the semantic versioning 2.0.0 spec
// (https://semver.org/).
//
// It is a variable so release builds can override it with:
// '-ldflags "-X github.com/nemkit/nemkit/internal/version.Version=fullsemver"'
//
// It MUST be a full semantic version or the package panics at init.
var Version = "0.3.0-pre"

// SemVer is a parsed semantic version.
type SemVer struct {
	Major         uint
	Minor         uint
	Patch         uint
	PreRelease    string
	BuildMetadata string
}

// current is the parsed form of Version.
var current SemVer

// Parse parses a semantic version string.
func Parse(s string) (SemVer, error) {
	m := semverRE.FindStringSubmatch(s)
	if m == nil {
		return SemVer{}, fmt.Errorf("malformed version string %q: does not "+
			"conform to semver specification", s)
	}

	var nums [3]uint
	for i, field := range []string{"major", "minor", "patch"} {
		val, err := strconv.ParseUint(m[i+1], 10, 0)
		if err != nil {
			return SemVer{}, fmt.Errorf("malformed semver %s: %w", field, err)
		}
		nums[i] = uint(val)
	}
	return SemVer{
		Major:         nums[0],
		Minor:         nums[1],
		Patch:         nums[2],
		PreRelease:    m[4],
		BuildMetadata: m[5],
	}, nil
}

// String returns the version in semver form.
func (v SemVer) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.PreRelease != "" {
		s += "-" + v.PreRelease
	}
	if v.BuildMetadata != "" {
		s += "+" + v.BuildMetadata
	}
	return s
}

func init() {
	var err error
	current, err = Parse(Version)
	if err != nil {
		panic(err)
	}
	if current.BuildMetadata == "" {
		current.BuildMetadata = NormalizeString(vcsCommitID())
	}
}

// Current returns the parsed application version.  The build metadata falls
// back to the VCS revision recorded by the Go toolchain when Version does not
// carry any.
func Current() SemVer {
	return current
}

// String returns the application version as a properly formed string.
func String() string {
	return current.String()
}

// NormalizeString returns the passed string stripped of all characters which
// are not valid in pre-release and build metadata strings.
func NormalizeString(str string) string {
	var b strings.Builder
	for _, r := range str {
		if strings.ContainsRune(semanticAlphabet, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
