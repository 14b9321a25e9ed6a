// Package probe inspects artifact metadata. It never opens or reads a file:
// size, modification time and read permission all come from stat-level calls.
package probe

import (
	"math"
	"os"
	"time"

	"github.com/redactyl/footprint/internal/types"
	"github.com/spf13/afero"
)

// ReadableFunc reports whether the current process may read path.
type ReadableFunc func(path string, info os.FileInfo) bool

// Metadata is the classification of one artifact file.
type Metadata struct {
	SizeKB   float64
	Modified time.Time
	Status   types.AccessStatus
	Path     string
}

// Analyzer stats candidate artifacts on a filesystem.
type Analyzer struct {
	Fs       afero.Fs
	Readable ReadableFunc
}

// NewAnalyzer picks the read check for fsys: the operating system's access
// check for the real filesystem, permission bits for anything else.
func NewAnalyzer(fsys afero.Fs) *Analyzer {
	a := &Analyzer{Fs: fsys, Readable: ModeReadable}
	if _, ok := fsys.(*afero.OsFs); ok {
		a.Readable = OSReadable
	}
	return a
}

// Analyze classifies path. ok is false when the file cannot be stat'ed or is
// a directory; callers treat that as absent.
func (a *Analyzer) Analyze(path string) (Metadata, bool) {
	info, err := a.Fs.Stat(path)
	if err != nil || info.IsDir() {
		return Metadata{}, false
	}
	status := types.Locked
	if a.Readable(path, info) {
		status = types.Exposed
	}
	return Metadata{
		SizeKB:   SizeKB(info.Size()),
		Modified: info.ModTime().Truncate(time.Minute),
		Status:   status,
		Path:     path,
	}, true
}

// SizeKB converts bytes to kilobytes rounded to two decimals.
func SizeKB(n int64) float64 {
	return math.Round(float64(n)/1024*100) / 100
}

// ModeReadable checks the owner read bit.
func ModeReadable(_ string, info os.FileInfo) bool {
	return info.Mode().Perm()&0o400 != 0
}
