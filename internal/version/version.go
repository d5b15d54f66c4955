// Package version holds build metadata injected via ldflags.
package version

import "fmt"

//nolint:revive // Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// UserAgent is the User-Agent sent with search submissions.
func UserAgent() string {
	return "happywhale-go/" + Version
}

// String describes the build in one line.
func String() string {
	return fmt.Sprintf("happywhale %s (commit %s, built %s)", Version, Commit, Date)
}
