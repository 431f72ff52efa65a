// Package version holds the build metadata of gosteel. The variables are
// set at link time:
//
//	go build -ldflags "-X github.com/alexiusacademia/gosteel/internal/version.Version=0.3.1 \
//	  -X github.com/alexiusacademia/gosteel/internal/version.GitCommit=$(git rev-parse --short HEAD)"
package version

import "fmt"

var (
	Version   = "0.3.0"
	BuildTime = "unknown"
	GitCommit = "unknown"

	Author = "Alexius Academia"
	Year   = "2025"
)

// Code is the design specification every check follows
const Code = "AISC 360-10"

// String returns "gosteel v<version>"
func String() string {
	return "gosteel v" + Version
}

// Build returns the build time and commit, for reports and --version output
func Build() string {
	return fmt.Sprintf("%s (commit %s)", BuildTime, GitCommit)
}
