package sstv

import (
	"fmt"
	"runtime/debug"
	"strconv"
)

// Set at build time via `-ldflags "-X 'github.com/jacksondiette/73-SSTV/src.SSTV_VERSION=X'"`
var SSTV_VERSION string

func getBuildSettingOrDefault(bi *debug.BuildInfo, key string, defaultValue string) string {
	for _, bs := range bi.Settings {
		if bs.Key == key {
			return bs.Value
		}
	}

	return defaultValue
}

// PrintVersion writes the tool version, derived from build info when
// no explicit version was linked in.
func PrintVersion(verbose bool) {
	var buildInfo, _ = debug.ReadBuildInfo()

	var (
		buildTimeStr              = getBuildSettingOrDefault(buildInfo, "vcs.time", "UNKNOWN")
		buildCommit               = getBuildSettingOrDefault(buildInfo, "vcs.revision", "UNKNOWN")
		buildDirtyStr             = getBuildSettingOrDefault(buildInfo, "vcs.modified", "INVALID")
		buildDirty, buildDirtyErr = strconv.ParseBool(buildDirtyStr)
	)

	var version = SSTV_VERSION
	if version == "" {
		version = buildInfo.Main.Version
	}

	fmt.Printf("73-SSTV version %s\n", version)

	if verbose {
		fmt.Printf("Built %s from commit %s", buildTimeStr, buildCommit)
		if buildDirtyErr == nil && buildDirty {
			fmt.Printf(" (modified)")
		}
		fmt.Printf("\n")
	}
}
