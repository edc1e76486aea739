// Package version holds build-time version information,
// injected via -ldflags at release build.
package version

var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git commit hash of the build.
	Commit = "unknown"
)
