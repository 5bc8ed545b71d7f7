package version

import "github.com/fatih/color"

// Build metadata for the coercly CLI.
// These variables can be overridden at build time via -ldflags.
var (
	banner = color.New(color.FgCyan, color.Bold)

	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Banner renders the tool name and version for terminal output.
func Banner() string {
	return banner.Sprint("coercly") + " " + Version
}
