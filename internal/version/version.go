package version

import (
	"runtime/debug"
	"strings"
	"sync"
)

const (
	versionDevel   = "devel"
	versionUnknown = "unknown"
)

// version is stamped by release builds with
// -ldflags "-X github.com/zyclope0/supernovafit-sub004/internal/version.version=v1.2.3".
// A `go install` of the CLI falls back to the module version from the build info.
var version = versionDevel

var once sync.Once

// Get is the version shown by `supernova --version` and attached to log lines.
func Get() string {
	once.Do(func() {
		if version != versionDevel {
			return
		}
		info, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		if v := info.Main.Version; v != "" && v != "("+versionDevel+")" {
			version = v
		}
	})
	return version
}

// IsDevelopment reports builds that are not tagged releases: local builds,
// dirty trees and pseudo-versions. The footer shows those in full.
func IsDevelopment(v string) bool {
	return v == versionDevel || v == versionUnknown || v == "" ||
		strings.Contains(v, "dirty") ||
		strings.Contains(v, "-0.")
}

// Short is the release footer's label: "v1.2.3-rc.1" becomes "1.2.3".
func Short(v string) string {
	if IsDevelopment(v) {
		return versionDevel
	}
	v = strings.TrimPrefix(v, "v")
	if idx := strings.IndexAny(v, "-+"); idx > 0 {
		return v[:idx]
	}
	return v
}
