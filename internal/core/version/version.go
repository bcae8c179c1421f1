// Package version reports the build stamped into the binary
package version

// stamped at link time:
// -ldflags "-X figurefriday/internal/core/version.version=v0.3.0 -X figurefriday/internal/core/version.commit=$(git rev-parse --short HEAD) -X figurefriday/internal/core/version.date=$(date -u +%F)"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// BuildInfo is the /meta/version payload
type BuildInfo struct {
	Service string `json:"service" example:"figurefriday-api"`
	Version string `json:"version" example:"v0.3.0"`
	Commit  string `json:"commit" example:"579f33b"`
	Date    string `json:"date" example:"2025-09-03"`
}

func Info() BuildInfo {
	return BuildInfo{Service: "figurefriday-api", Version: version, Commit: commit, Date: date}
}
