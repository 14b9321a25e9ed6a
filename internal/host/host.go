// Package host gathers the process-wide facts an audit needs: the host
// profile for report headers, the platform base directories the catalog
// expands, and the output directory.
package host

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/redactyl/footprint/internal/catalog"
	"github.com/redactyl/footprint/internal/types"
	"github.com/spf13/afero"
)

// Profile describes the current host. It is computed once per session.
func Profile(now time.Time) types.HostProfile {
	name, err := os.Hostname()
	if err != nil {
		name = "unknown"
	}
	return types.HostProfile{
		Hostname:     name,
		OSVersion:    osVersion(),
		Architecture: runtime.GOARCH,
		Elevated:     isElevated(),
		AuditTime:    now,
	}
}

// BasePaths reads the platform base directories from the process environment.
func BasePaths() catalog.Paths {
	home, _ := os.UserHomeDir()
	return PathsFrom(runtime.GOOS, os.Getenv, home)
}

// PathsFrom builds base paths from an explicit lookup. The local and roaming
// bases only exist on Windows; elsewhere they stay empty.
func PathsFrom(goos string, getenv func(string) string, home string) catalog.Paths {
	p := catalog.Paths{GOOS: goos, Home: home}
	if goos == catalog.Platform {
		p.Local = getenv("LOCALAPPDATA")
		p.Roaming = getenv("APPDATA")
	}
	return p
}

// DefaultOutputDir is where reports go unless configured otherwise.
func DefaultOutputDir(home string) string {
	return filepath.Join(home, "Desktop", "Footprint", "Output")
}

// OutputDir makes sure dir exists, falling back to DefaultOutputDir when dir
// is empty, and returns the directory that reports are written to.
func OutputDir(fsys afero.Fs, dir, home string) (string, error) {
	if dir == "" {
		if home == "" {
			return "", fmt.Errorf("output directory: no home directory to default to")
		}
		dir = DefaultOutputDir(home)
	}
	if err := fsys.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("output directory: %w", err)
	}
	return dir, nil
}
