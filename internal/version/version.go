// Package version provides build information for oyvp.
package version

import "fmt"

// Version is the release version. Overridden at build time with ldflags.
var Version = "development"

// Commit is the git commit hash. Overridden at build time with ldflags.
var Commit = "unknown"

// String returns the version, suffixed with the commit hash when known.
func String() string {
	if Commit != "unknown" {
		return Version + "+" + Commit
	}
	return Version
}

// Banner returns the line printed by the version command.
func Banner(appName string) string {
	return fmt.Sprintf("%s %s", appName, String())
}
