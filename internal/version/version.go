// Package version holds build metadata injected with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/longkey1/gptc/internal/version.Version=v1.0.0"
package version

import (
	"fmt"
	"runtime"
)

var (
	Version   = "dev"
	CommitSHA = "unknown"
	BuildTime = "unknown"
)

// Short returns only the version number
func Short() string {
	return Version
}

// Info returns detailed version information
func Info() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nBuilt: %s\nGo version: %s\nOS/Arch: %s/%s",
		Version, CommitSHA, BuildTime, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
