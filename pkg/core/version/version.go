// ============================================================================
// morsetree - Morse code over binary code trees
// ============================================================================
//
// Package:     version
// Description: Central version information for the morse binary
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version is the release version of morsetree
const Version = "1.0.0"

// Set at build time via -ldflags
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info bundles build information for display
type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String renders the block printed by `morse version`
func (i Info) String() string {
	return fmt.Sprintf("morsetree v%s\n  Git Commit: %s\n  Build Date: %s\n  Go Version: %s\n  OS/Arch:    %s\n",
		i.Version, i.GitCommit, i.BuildDate, i.GoVersion, i.Platform)
}
