// Package version provides information about the build version of the service.
package version

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service string `json:"service" example:"gadash-api"`
	Version string `json:"version" example:"v0.3.0"`
	Commit  string `json:"commit" example:"4f2a9c1"`
	Date    string `json:"date" example:"2025-09-02"`
}

// Service names the binary that reports the build, set once from main
var Service = "gadash-api"

// Info returns the build information. The version, commit, and date variables
// are intended to be set at build time using -ldflags.
func Info() BuildInfo {
	// Set via -ldflags "-X 'gadash/internal/core/version.version=v0.0.1'
	// -X 'gadash/internal/core/version.commit=abcd' -X 'gadash/internal/core/version.date=2025-09-02'"
	return BuildInfo{
		Service: Service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
