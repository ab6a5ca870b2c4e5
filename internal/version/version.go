// Package version provides build-time version information.
package version

// Set via -ldflags at build time; the defaults cover plain `go build`.
var (
	// Version is the semantic version of the release.
	Version = "0.1.0"

	// BuildTime is the UTC time the binary was built.
	BuildTime = "unknown"

	// GitCommit is the git commit hash the binary was built from.
	GitCommit = "unknown"
)
