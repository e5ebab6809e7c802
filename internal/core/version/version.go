// Package version provides information about the build version of the service.
package version

import (
	"runtime"
	"runtime/debug"
)

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
}

// ServiceName is the name reported by meta endpoints and logs
const ServiceName = "sentilex-api"

// Info returns the build information. version, commit and date are set at build time:
//
//	-ldflags "-X 'sentilex/internal/core/version.version=v0.1.0' -X 'sentilex/internal/core/version.commit=abcd'"
//
// When commit was not injected the VCS revision stamped by the go tool is used.
func Info() BuildInfo {
	c := commit
	if c == "none" {
		c = vcsRevision()
	}
	return BuildInfo{
		Service: ServiceName,
		Version: version,
		Commit:  c,
		Date:    date,
		Go:      runtime.Version(),
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	readBuildInfo = debug.ReadBuildInfo
)

func vcsRevision() string {
	bi, ok := readBuildInfo()
	if !ok || bi == nil {
		return "none"
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return "none"
}
