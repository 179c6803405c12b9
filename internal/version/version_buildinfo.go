// Copyright (c) 2026 The nemkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package version

import "runtime/debug"

// vcsCommitID returns the abbreviated revision the binary was built from, or
// an empty string when the toolchain did not record one.
func vcsCommitID() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var vcs, revision string
	var modified bool
	for _, bs := range bi.Settings {
		switch bs.Key {
		case "vcs":
			vcs = bs.Value
		case "vcs.revision":
			revision = bs.Value
		case "vcs.modified":
			modified = bs.Value == "true"
		}
	}
	if vcs != "git" || revision == "" {
		return ""
	}
	if len(revision) > 9 {
		revision = revision[:9]
	}
	if modified {
		revision += ".dirty"
	}
	return revision
}
