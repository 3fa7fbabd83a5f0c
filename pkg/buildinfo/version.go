// Package buildinfo provides build-time version information.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/ChenhuiZhang/cargo-scorecard/pkg/buildinfo.Version=0.1.0 \
//	    -X github.com/ChenhuiZhang/cargo-scorecard/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/ChenhuiZhang/cargo-scorecard/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

// Name is the program name reported to upstream APIs and in --version output.
const Name = "cargo-scorecard"

var (
	// Version is the semantic version (e.g., "0.1.0").
	// Set via ldflags: -X github.com/ChenhuiZhang/cargo-scorecard/pkg/buildinfo.Version=...
	Version = "0.1.0"

	// Commit is the git commit SHA.
	// Set via ldflags: -X github.com/ChenhuiZhang/cargo-scorecard/pkg/buildinfo.Commit=...
	Commit = "none"

	// Date is the build timestamp.
	// Set via ldflags: -X github.com/ChenhuiZhang/cargo-scorecard/pkg/buildinfo.Date=...
	Date = "unknown"
)

// UserAgent returns the User-Agent header value sent to crates.io and the
// scorecard API, e.g. "cargo-scorecard/0.1.0".
func UserAgent() string {
	return Name + "/" + Version
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
