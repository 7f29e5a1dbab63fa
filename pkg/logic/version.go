package logic

import "runtime"

// Version is the current version of the proofdroid reasoning core.
const Version = "0.3.0"

// VersionInfo provides detailed version information.
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// GetVersionInfo returns detailed version information. GoVersion is the
// toolchain the running binary was built with.
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   GetVersion(),
		GoVersion: runtime.Version(),
	}
}
