// Package version reports which build of normalize-triplet is running.
//
// Release builds inject Version, Commit and Date with ldflags, e.g.
//
//	-ldflags "-X github.com/vixigi/julia/internal/version.Version=1.0.0"
//
// Builds without them fall back to the VCS stamp the Go toolchain records.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/vixigi/julia/internal/triplet"
)

// Values injected at link time. Commit and Date stay empty unless set.
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Info describes the running binary. Platform is the canonical triplet of
// the host, or GOOS/GOARCH when it has none.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	Date      string `json:"date,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get merges the injected values with the recorded build settings.
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  hostPlatform(runtime.GOOS, runtime.GOARCH),
	}

	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == "" {
				info.Date = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

func hostPlatform(goos, goarch string) string {
	if t, err := triplet.HostTriplet(goos, goarch); err == nil {
		return t
	}
	return goos + "/" + goarch
}

// String returns a human-readable version line.
func String() string {
	info := Get()
	if info.Commit == "" {
		return fmt.Sprintf("normalize-triplet version %s (%s, %s)", info.Version, info.GoVersion, info.Platform)
	}

	commit := info.Commit
	if len(commit) > 8 {
		commit = commit[:8]
	}
	if info.Modified {
		commit += "-dirty"
	}
	built := ""
	if info.Date != "" {
		built = ", built: " + info.Date
	}
	return fmt.Sprintf("normalize-triplet version %s (commit: %s%s, %s, %s)",
		info.Version, commit, built, info.GoVersion, info.Platform)
}

// Short returns the bare version.
func Short() string {
	return Get().Version
}
