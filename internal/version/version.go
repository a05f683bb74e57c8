// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package version reports the pyclassgen build. Short is stamped into the
// header of every generated Python file.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/dacolabs/pyclassgen/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

const shortCommitLen = 7

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		fromBuildInfo(info)
	}
}

// fromBuildInfo fills whichever of Version, Commit and Date still hold
// their placeholder from the module and VCS data embedded by the go tool.
func fromBuildInfo(info *debug.BuildInfo) {
	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	var revision string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		case "vcs.time":
			if Date == "unknown" {
				Date = s.Value
			}
		}
	}

	if Commit == "none" && len(revision) >= shortCommitLen {
		Commit = revision[:shortCommitLen]
		if dirty {
			Commit += "-dirty"
		}
	}
}

// Info returns the line printed by "pyclassgen version".
func Info() string {
	return fmt.Sprintf("pyclassgen version %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, runtime.Version())
}

// Short returns the version written into generated file headers.
func Short() string {
	return Version
}
