package version

import (
	"fmt"
	"runtime"
	"strconv"

	"stylometer/internal/features"
)

// Set via ldflags at release time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func Info() string {
	return fmt.Sprintf("stylometer %s (%s) built on %s with %s, feature schema v%d",
		Version, Commit, Date, runtime.Version(), features.SchemaVersion)
}

func Short() string {
	return Version + "+schema" + strconv.Itoa(features.SchemaVersion)
}
