// Package version provides build version information embedding.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

var (
	// These variables are set at build time using -ldflags
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// Info represents version information.
type Info struct {
	Version   string    `json:"version"`
	GitCommit string    `json:"git_commit,omitempty"`
	BuildTime string    `json:"build_time,omitempty"`
	GoVersion string    `json:"go_version"`
	BuildDate time.Time `json:"build_date"`
}

// Get returns version information, falling back to Go build info when
// ldflags were not provided.
func Get() *Info {
	info := &Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = buildInfo.GoVersion
		for _, setting := range buildInfo.Settings {
			switch setting.Key {
			case "vcs.revision":
				if info.GitCommit == "" {
					info.GitCommit = setting.Value
					if len(info.GitCommit) > 7 {
						info.GitCommit = info.GitCommit[:7]
					}
				}
			case "vcs.time":
				if BuildTime == "" {
					if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
						info.BuildDate = t
						info.BuildTime = setting.Value
					}
				}
			}
		}
	}

	if info.BuildDate.IsZero() {
		if t, err := time.Parse(time.RFC3339, info.BuildTime); err == nil {
			info.BuildDate = t
		} else {
			info.BuildDate = time.Now().UTC()
			info.BuildTime = info.BuildDate.Format(time.RFC3339)
		}
	}

	return info
}

// Short returns a short version string.
func Short() string {
	info := Get()
	if info.GitCommit != "" {
		return fmt.Sprintf("%s-%s", info.Version, info.GitCommit)
	}
	return info.Version
}
