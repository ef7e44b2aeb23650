// Package version exposes the build version of the service.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Current is set at build time:
//
//	go build -ldflags "-X github.com/bdorababu707/goldvault-investment-module/internal/shared/version.Current=1.4.0"
var Current = "dev"

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// String returns the canonical form of Current, or Current unchanged when it
// is not a semantic version (e.g. "dev").
func String() string {
	v := Normalize(Current)
	if !semver.IsValid(v) {
		return Current
	}
	return semver.Canonical(v)
}

// IsRelease reports whether the binary was built with a release version.
func IsRelease() bool {
	v := Normalize(Current)
	return semver.IsValid(v) && semver.Prerelease(v) == ""
}
