package app

import (
	"fmt"
	"runtime/debug"
)

// Set via -ldflags "-X github.com/heartmarshall/termtrans-backend/internal/app.Version=...".
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// Build identifies the running binary.
type Build struct {
	Version   string
	Commit    string
	BuildTime string
	Modified  bool
}

// CurrentBuild returns the ldflags values, filling gaps from the VCS stamp
// the Go toolchain embeds in module builds.
func CurrentBuild() Build {
	b := Build{Version: Version, Commit: Commit, BuildTime: BuildTime}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return b.withDefaults()
	}
	return fromSettings(b, info.Settings).withDefaults()
}

func fromSettings(b Build, settings []debug.BuildSetting) Build {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if b.Commit == "" {
				b.Commit = s.Value
			}
		case "vcs.time":
			if b.BuildTime == "" {
				b.BuildTime = s.Value
			}
		case "vcs.modified":
			b.Modified = s.Value == "true"
		}
	}
	return b
}

func (b Build) withDefaults() Build {
	if b.Commit == "" {
		b.Commit = "unknown"
	}
	if len(b.Commit) > 12 {
		b.Commit = b.Commit[:12]
	}
	if b.BuildTime == "" {
		b.BuildTime = "unknown"
	}
	return b
}

func (b Build) String() string {
	commit := b.Commit
	if b.Modified {
		commit += "+dirty"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", b.Version, commit, b.BuildTime)
}

// BuildVersion is CurrentBuild formatted for logs and the health endpoint.
func BuildVersion() string {
	return CurrentBuild().String()
}
