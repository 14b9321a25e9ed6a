// Package layout describes how artifacts are arranged under an application
// root. A Strategy turns a root into the ordered list of directories the
// scanner searches.
package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const (
	KindFixed    = "fixed"
	KindProfiles = "profiles"
)

// DefaultSubdirs is the directory set searched for single-profile layouts.
// The empty element stands for the root itself.
var DefaultSubdirs = []string{"", "Default", "Network"}

// Strategy lists the directories to search under root.
type Strategy interface {
	Kind() string
	SearchDirs(fsys afero.Fs, root string) ([]string, error)
}

// Fixed searches a fixed set of subdirectories relative to the root.
type Fixed struct {
	Subdirs []string
}

func (Fixed) Kind() string { return KindFixed }

// SearchDirs returns root joined with each subdirectory. It does not check
// existence; missing directories are skipped by the scanner.
func (f Fixed) SearchDirs(_ afero.Fs, root string) ([]string, error) {
	subdirs := f.Subdirs
	if len(subdirs) == 0 {
		subdirs = DefaultSubdirs
	}
	out := make([]string, 0, len(subdirs))
	for _, s := range subdirs {
		out = append(out, filepath.Join(root, filepath.FromSlash(s)))
	}
	return out, nil
}

// Profiles treats every immediate subdirectory of the root as a profile.
type Profiles struct{}

func (Profiles) Kind() string { return KindProfiles }

// SearchDirs lists the child directories of root in name order.
func (Profiles) SearchDirs(fsys afero.Fs, root string) ([]string, error) {
	infos, err := afero.ReadDir(fsys, root)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, fi := range infos {
		if isDir(fsys, root, fi) {
			out = append(out, filepath.Join(root, fi.Name()))
		}
	}
	return out, nil
}

// isDir follows symlinked profile directories, which ReadDir reports as links.
func isDir(fsys afero.Fs, root string, fi os.FileInfo) bool {
	if fi.IsDir() {
		return true
	}
	if fi.Mode()&os.ModeSymlink == 0 {
		return false
	}
	st, err := fsys.Stat(filepath.Join(root, fi.Name()))
	return err == nil && st.IsDir()
}

// Parse maps a config layout name to a Strategy. subdirs only applies to the
// fixed layout.
func Parse(kind string, subdirs []string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", KindFixed:
		return Fixed{Subdirs: subdirs}, nil
	case KindProfiles:
		if len(subdirs) > 0 {
			return nil, fmt.Errorf("layout %q does not take subdirs", KindProfiles)
		}
		return Profiles{}, nil
	}
	return nil, fmt.Errorf("unknown layout %q (want %s|%s)", kind, KindFixed, KindProfiles)
}
