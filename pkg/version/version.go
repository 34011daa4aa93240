// Package version reports which build of gcont is running.
package version

import (
	"fmt"
	"runtime"
)

// Stamped by the linker, e.g. -X gcont/pkg/version.Version=0.3.0.
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// AppName tags log lines and prefixes the version banner.
const AppName = "gcont"

// Info describes one build of the binary.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string // GOOS/GOARCH
}

// Get collects the stamped values together with the running toolchain.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders the banner printed by "gcont version".
func (i Info) String() string {
	return fmt.Sprintf("%s version %s (commit: %s) built at %s with %s on %s",
		AppName, i.Version, i.GitCommit, i.BuildTime, i.GoVersion, i.Platform)
}
