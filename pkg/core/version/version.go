// ============================================================================
// epochx - Date/Time to Unix Epoch Conversion
// ============================================================================
//
// Package:     version
// Description: Build version information for the epochx tool
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Name of the tool
const Name = "epochx"

// Build information, set with -ldflags "-X .../version.Version=..."
var (
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

// Short returns "epochx v<version>"
func Short() string {
	return fmt.Sprintf("%s v%s", Name, Version)
}

// Info returns the multi-line version report printed by "epochx version"
func Info() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", Short())
	fmt.Fprintf(&b, "  Git Commit: %s\n", GitCommit)
	fmt.Fprintf(&b, "  Build Date: %s\n", BuildDate)
	fmt.Fprintf(&b, "  Go Version: %s\n", runtime.Version())
	fmt.Fprintf(&b, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	return b.String()
}
