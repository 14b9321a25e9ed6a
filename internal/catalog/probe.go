package catalog

import (
	"path/filepath"
	"strings"

	"github.com/redactyl/footprint/internal/layout"
	"github.com/redactyl/footprint/internal/types"
	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

// DefaultProbeDepth is how many directory levels below a search root are
// inspected. "Vendor/Product/User Data" sits at depth 3.
const DefaultProbeDepth = 3

const (
	chromiumMarker = "Local State"
	mozillaMarker  = "profiles.ini"
	mozillaDir     = "Profiles"
)

// Probe finds application roots by their on-disk markers instead of by
// name. A directory holding a "Local State" file is a Chromium-family root;
// a "Profiles" directory next to a "profiles.ini" that lists at least one
// profile is a Mozilla-family root.
// It backs the deep rescan.
type Probe struct {
	Roots    []string
	MaxDepth int
}

// Candidates walks each search root breadth-first. Unreadable directories
// are skipped. Matched roots are not descended into.
func (p Probe) Candidates(fsys afero.Fs) []types.Environment {
	depth := p.MaxDepth
	if depth <= 0 {
		depth = DefaultProbeDepth
	}
	var out []types.Environment
	seen := map[string]bool{}
	for _, root := range p.Roots {
		if root == "" {
			continue
		}
		root = filepath.Clean(root)
		level := []string{root}
		for d := 1; d <= depth && len(level) > 0; d++ {
			var next []string
			for _, dir := range level {
				infos, err := afero.ReadDir(fsys, dir)
				if err != nil {
					continue
				}
				for _, fi := range infos {
					if !fi.IsDir() {
						continue
					}
					child := filepath.Join(dir, fi.Name())
					if seen[child] {
						continue
					}
					if env, ok := classify(fsys, root, child); ok {
						seen[child] = true
						out = append(out, env)
						continue
					}
					next = append(next, child)
				}
			}
			level = next
		}
	}
	return out
}

func classify(fsys afero.Fs, searchRoot, dir string) (types.Environment, bool) {
	if isFile(fsys, filepath.Join(dir, chromiumMarker)) {
		return types.Environment{Name: probeName(searchRoot, dir), Root: dir, Layout: layout.Fixed{}}, true
	}
	if filepath.Base(dir) == mozillaDir && listsProfiles(fsys, filepath.Join(filepath.Dir(dir), mozillaMarker)) {
		return types.Environment{Name: probeName(searchRoot, dir), Root: dir, Layout: layout.Profiles{}}, true
	}
	return types.Environment{}, false
}

func isFile(fsys afero.Fs, p string) bool {
	st, err := fsys.Stat(p)
	return err == nil && !st.IsDir()
}

// listsProfiles reports whether path is a profiles.ini with a [ProfileN]
// section that names a profile directory.
func listsProfiles(fsys afero.Fs, path string) bool {
	if !isFile(fsys, path) {
		return false
	}
	b, err := afero.ReadFile(fsys, path)
	if err != nil {
		return false
	}
	f, err := ini.Load(b)
	if err != nil {
		return false
	}
	for _, sec := range f.Sections() {
		if strings.HasPrefix(sec.Name(), "Profile") && sec.HasKey("Path") {
			return true
		}
	}
	return false
}

// probeName derives a display name from the path below the search root,
// dropping the conventional "User Data" and "Profiles" leaf directories:
// "Google/Chrome/User Data" becomes "Google Chrome".
func probeName(searchRoot, dir string) string {
	rel, err := filepath.Rel(searchRoot, dir)
	if err != nil {
		return filepath.Base(dir)
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if n := len(parts); n > 1 && (parts[n-1] == "User Data" || parts[n-1] == mozillaDir) {
		parts = parts[:n-1]
	}
	return strings.Join(parts, " ")
}
