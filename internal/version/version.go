// Package version holds build information injected at link time.
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the semantic version, set via ldflags.
	Version = "dev"
	// BuildTime is the build timestamp, set via ldflags.
	BuildTime = "unknown"
	// GitCommit is the short commit hash, set via ldflags.
	GitCommit = "unknown"
)

// SetInfo overrides the build information. Used by main when the values
// arrive through a different mechanism than ldflags.
func SetInfo(version, buildTime, gitCommit string) {
	if version != "" {
		Version = version
	}
	if buildTime != "" {
		BuildTime = buildTime
	}
	if gitCommit != "" {
		GitCommit = gitCommit
	}
}

// String renders the full build information on one line.
func String() string {
	return fmt.Sprintf("cronjobctl %s (commit %s, built %s, %s)",
		Version, GitCommit, BuildTime, runtime.Version())
}
