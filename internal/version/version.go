// Package version holds build metadata injected with -ldflags, e.g.
// -X formvalidator/internal/version.Version=1.4.0.
// Binaries built without ldflags fall back to the module and VCS data the
// Go toolchain embeds.
package version

import (
	"fmt"
	"runtime/debug"
)

const unknown = "unknown"

var (
	Version   = "dev"
	BuildTime = unknown
	GitCommit = unknown
)

var readBuildInfo = debug.ReadBuildInfo

func Get() string {
	return Info().Version
}

type BuildInfo struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
	Modified  bool   `json:"modified,omitempty"`
}

func Info() BuildInfo {
	info := BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}

	embedded, ok := readBuildInfo()
	if !ok {
		return info
	}

	if info.Version == "dev" && embedded.Main.Version != "" && embedded.Main.Version != "(devel)" {
		info.Version = embedded.Main.Version
	}
	for _, setting := range embedded.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.GitCommit == unknown {
				info.GitCommit = shortCommit(setting.Value)
			}
		case "vcs.time":
			if info.BuildTime == unknown {
				info.BuildTime = setting.Value
			}
		case "vcs.modified":
			info.Modified = setting.Value == "true"
		}
	}
	return info
}

func shortCommit(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}

func (b BuildInfo) String() string {
	commit := b.GitCommit
	if b.Modified {
		commit += "+dirty"
	}
	return fmt.Sprintf("%s (commit %s, built %s)", b.Version, commit, b.BuildTime)
}
