// Package version holds build metadata injected via ldflags.
package version

import "fmt"

//nolint:revive // Set via ldflags at build time.
var (
	Version = "1.0.0"
	Commit  = "unknown"
	Date    = "unknown"
)

// String formats the build metadata for `assessctl version` and startup logs.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
