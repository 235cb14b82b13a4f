// Package version provides information about the build version of the service.
package version

import "reviewtrust/internal/core/review"

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service          string `json:"service"`
	Version          string `json:"version"`
	Commit           string `json:"commit"`
	Date             string `json:"date"`
	AlgorithmVersion int    `json:"algorithm_version"`
}

// Info returns the build information. The version, commit, and date variables
// are intended to be set at build time using -ldflags.
func Info() BuildInfo {
	// Set via -ldflags "-X 'reviewtrust/internal/core/version.version=v0.0.1'
	// -X 'reviewtrust/internal/core/version.commit=abcd' -X 'reviewtrust/internal/core/version.date=2026-10-01'"
	return BuildInfo{
		Service:          "reviewtrust-api",
		Version:          version,
		Commit:           commit,
		Date:             date,
		AlgorithmVersion: review.AlgorithmVersion,
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
