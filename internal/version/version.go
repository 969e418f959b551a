// Package version reports which paintsviewer build is running.
//
// Release builds set Version, Commit and Date with -ldflags -X. Anything left
// unset is filled from the VCS stamp the go tool embeds in the binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
)

// Build-time values, injected via
// -ldflags "-X github.com/Fiszh/7TVPaintsViewer/internal/version.Version=x.y.z".
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// Info describes a build.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	Date      string `json:"date,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// vcsStamp holds the settings read from the embedded build info.
type vcsStamp struct {
	revision string
	time     string
	modified bool
}

var (
	stampOnce sync.Once
	stamp     vcsStamp
)

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

func loadStamp() vcsStamp {
	stampOnce.Do(func() {
		bi, ok := readBuildInfo()
		if !ok {
			return
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				stamp.revision = s.Value
			case "vcs.time":
				stamp.time = s.Value
			case "vcs.modified":
				stamp.modified = s.Value == "true"
			}
		}
	})
	return stamp
}

// GetInfo merges ldflags values with the embedded VCS stamp.
func GetInfo() Info {
	vcs := loadStamp()

	info := Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if info.Commit == "" {
		info.Commit = vcs.revision
		info.Modified = vcs.modified
	}
	if info.Date == "" {
		info.Date = vcs.time
	}
	return info
}

// ShortCommit returns the first eight characters of the commit, if known.
func (i Info) ShortCommit() string {
	if len(i.Commit) > 8 {
		return i.Commit[:8]
	}
	return i.Commit
}

// String renders the info for the version command.
func (i Info) String() string {
	s := "paintsviewer " + i.Version
	if c := i.ShortCommit(); c != "" {
		if i.Modified {
			c += "-dirty"
		}
		s += " (" + c
		if i.Date != "" {
			s += ", " + i.Date
		}
		s += ")"
	}
	return fmt.Sprintf("%s %s %s", s, i.GoVersion, i.Platform)
}

// String returns the human-readable version line.
func String() string {
	return GetInfo().String()
}

// UserAgent returns the User-Agent sent with outbound requests.
func UserAgent() string {
	return "paintsviewer/" + Version
}
