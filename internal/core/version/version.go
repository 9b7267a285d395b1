// Package version reports build metadata stamped in with -ldflags
package version

// BuildInfo holds version information about the build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Set via -ldflags "-X 'sayitanyway/internal/core/version.version=v0.1.0'
// -X 'sayitanyway/internal/core/version.commit=abcd' -X 'sayitanyway/internal/core/version.date=2026-01-02'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the build information
func Info() BuildInfo {
	return BuildInfo{Service: "sayitanyway", Version: version, Commit: commit, Date: date}
}
