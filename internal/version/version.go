// Package version exposes build metadata injected at link time.
package version

import (
	"fmt"
	"runtime"
)

// These variables are set at build time using -ldflags.
var (
	// Version is the semantic version of the binary.
	Version = "dev"

	// GitCommit is the git commit hash the binary was built from.
	GitCommit = "unknown"

	// BuildTime is when the binary was built, RFC3339.
	BuildTime = "unknown"
)

// String returns a single-line version description.
func String() string {
	return fmt.Sprintf("hop %s (commit %s, built %s, %s, %s/%s)",
		Version, GitCommit, BuildTime, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
