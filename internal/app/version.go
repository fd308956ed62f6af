package app

import (
	"runtime/debug"
	"sync"
)

// Version is stamped at release time with
// -ldflags "-X github.com/heartmarshall/precinct-records/internal/app.Version=v1.4.0".
var Version = "dev"

var buildVersion = sync.OnceValue(func() string {
	return describeBuild(Version, readBuildInfo())
})

func readBuildInfo() *debug.BuildInfo {
	info, _ := debug.ReadBuildInfo()
	return info
}

// BuildVersion is the release tag followed by the VCS revision the binary
// was built from, e.g. "v1.4.0+3f9a2c1d0e4b" or "dev+3f9a2c1d0e4b-dirty".
func BuildVersion() string { return buildVersion() }

func describeBuild(version string, info *debug.BuildInfo) string {
	if info == nil {
		return version
	}

	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return version
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if dirty {
		rev += "-dirty"
	}
	return version + "+" + rev
}
