package config

import "strings"

// Release metadata stamped by the linker, e.g.
//
//	go build -ldflags "-X farmdesk/internal/config.version=1.4.0 \
//	    -X farmdesk/internal/config.commit=$(git rev-parse --short HEAD) \
//	    -X farmdesk/internal/config.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/...
//
// Unstamped builds report dev, none and unknown.
var (
	version   = "dev"
	commit    = "none"
	buildTime = "unknown"
)

// BuiltinTable is the TableSource reported when no agronomy table file is set.
const BuiltinTable = "built-in"

// NewBuildInfo returns the stamped release metadata together with the
// agronomy table in effect: tablePath when set, BuiltinTable otherwise.
func NewBuildInfo(tablePath string) BuildInfo {
	source := strings.TrimSpace(tablePath)
	if source == "" {
		source = BuiltinTable
	}
	return BuildInfo{
		Version:     version,
		Commit:      commit,
		BuildTime:   buildTime,
		TableSource: source,
	}
}
