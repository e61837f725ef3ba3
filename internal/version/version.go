// Package version reports the jmap build.
package version

import "fmt"

// Name is the binary and root command name.
const Name = "jmap"

// Set at build time via ldflags:
//
//	-X github.com/example/journeymap/internal/version.Commit=$(git rev-parse HEAD)
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns the version line. There is no semver; builds are identified by commit.
func String() string {
	return fmt.Sprintf("%s dev (commit: %s, built: %s)", Name, ShortCommit(), BuildTime)
}

// ShortCommit returns the first seven characters of Commit.
func ShortCommit() string {
	const short = 7
	if len(Commit) > short {
		return Commit[:short]
	}
	return Commit
}
