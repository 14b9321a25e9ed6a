package engine

import (
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
	"github.com/redactyl/footprint/internal/layout"
	"github.com/redactyl/footprint/internal/types"
)

// FilterEnvironments applies comma-separated include/exclude globs to the
// environment names. Include globs, when present, act as a positive filter;
// exclude globs are subtracted last.
func FilterEnvironments(envs []types.Environment, include, exclude string) []types.Environment {
	includes := parseGlobsList(include)
	excludes := parseGlobsList(exclude)
	if len(includes) == 0 && len(excludes) == 0 {
		return envs
	}
	var out []types.Environment
	for _, e := range envs {
		if len(includes) > 0 && !matchAnyGlob(e.Name, includes) {
			continue
		}
		if len(excludes) > 0 && matchAnyGlob(e.Name, excludes) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// allowedProfile reports whether a profile directory survives the exclude
// globs. Only expanded profile layouts are filtered; fixed subdirectories
// are part of the layout itself.
func allowedProfile(env types.Environment, dir string, excludes []string) bool {
	if len(excludes) == 0 {
		return true
	}
	if _, ok := env.Layout.(layout.Profiles); !ok {
		return true
	}
	return !matchAnyGlob(filepath.Base(dir), excludes)
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// matchAnyGlob matches case-insensitively: environment and profile names
// are display names, not paths.
func matchAnyGlob(name string, globs []string) bool {
	lower := strings.ToLower(name)
	for _, g := range globs {
		if ok, _ := doublestar.Match(strings.ToLower(g), lower); ok {
			return true
		}
	}
	return false
}
