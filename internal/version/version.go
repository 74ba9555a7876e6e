// Package version holds build metadata for the openstatus CLI.
//
// The variables are overridden at link time:
//
//	go build -ldflags "-X github.com/openstatushq/openstatus-go/internal/version.Version=v0.2.0"
package version

import (
	"fmt"
	"runtime"
)

// Version is the CLI version.
var Version = "dev"

// Commit is the git commit hash.
var Commit = "none"

// BuildTime is the build timestamp in RFC3339 format.
var BuildTime = "unknown"

// GetVersionString returns the one-line version, e.g.
// "openstatus version v0.2.0 (commit 4a9b2c1, built 2026-01-12T10:00:00Z)".
func GetVersionString() string {
	return fmt.Sprintf("openstatus version %s (commit %s, built %s)", Version, Commit, BuildTime)
}

// GetFullVersionInfo adds the Go runtime to GetVersionString.
func GetFullVersionInfo() string {
	return fmt.Sprintf("%s\ngo version %s (%s/%s)",
		GetVersionString(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
