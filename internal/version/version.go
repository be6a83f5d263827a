// Package version reports the build identity of the tabstate binary.
package version

import (
	"runtime/debug"
	"strings"
	"time"
)

const (
	defaultModule  = "pkt.systems/tabstate"
	unknownVersion = "v0.0.0-unknown"
)

// buildVersion is set via -ldflags "-X pkt.systems/tabstate/internal/version.buildVersion=...".
var buildVersion = ""

// Info describes the running build.
type Info struct {
	Version   string    `json:"version"`
	Module    string    `json:"module"`
	Revision  string    `json:"revision,omitempty"`
	Committed time.Time `json:"committed,omitzero"`
	Dirty     bool      `json:"dirty,omitempty"`
	GoVersion string    `json:"go_version,omitempty"`
}

// Current returns the version string without a dirty suffix.
func Current() string {
	return Read().Version
}

// Read collects build information from the ldflags override and the
// embedded build settings.
func Read() Info {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		info = nil
	}
	return fromBuildInfo(info)
}

func fromBuildInfo(info *debug.BuildInfo) Info {
	out := Info{Module: defaultModule, Version: unknownVersion}
	var vcs vcsSettings
	if info != nil {
		if path := strings.TrimSpace(info.Main.Path); path != "" {
			out.Module = path
		}
		out.GoVersion = info.GoVersion
		vcs = readVCS(info.Settings)
		out.Revision = vcs.revision
		out.Committed = vcs.committed
		out.Dirty = vcs.modified
	}
	switch {
	case strings.TrimSpace(buildVersion) != "":
		out.Version = trimDirty(buildVersion)
	case info != nil && info.Main.Version != "" && info.Main.Version != "(devel)":
		out.Version = trimDirty(info.Main.Version)
	default:
		if v := vcs.pseudo(); v != "" {
			out.Version = v
		}
	}
	return out
}

func trimDirty(v string) string {
	return strings.TrimSuffix(strings.TrimSpace(v), "+dirty")
}

type vcsSettings struct {
	revision  string
	committed time.Time
	modified  bool
}

func readVCS(settings []debug.BuildSetting) vcsSettings {
	var out vcsSettings
	for _, setting := range settings {
		switch setting.Key {
		case "vcs.revision":
			out.revision = setting.Value
		case "vcs.time":
			if parsed, err := time.Parse(time.RFC3339, setting.Value); err == nil {
				out.committed = parsed.UTC()
			}
		case "vcs.modified":
			out.modified = setting.Value == "true"
		}
	}
	return out
}

// pseudo builds a Go-style pseudo version from VCS settings.
func (v vcsSettings) pseudo() string {
	if v.revision == "" || v.committed.IsZero() {
		return ""
	}
	rev := v.revision
	if len(rev) > 12 {
		rev = rev[:12]
	}
	return "v0.0.0-" + v.committed.Format("20060102150405") + "-" + rev
}
