// Package catalog maps known application names to the filesystem roots where
// they keep credential and session state. Resolution is pure: it expands
// templates over the platform base directories and never touches the disk.
package catalog

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/redactyl/footprint/internal/layout"
	"github.com/redactyl/footprint/internal/types"
	"github.com/spf13/afero"
)

// Platform is the GOOS the built-in table describes. Other platforms get an
// empty built-in catalog; custom entries still apply.
const Platform = "windows"

// MaxTemplates bounds the candidate roots per application.
const MaxTemplates = 3

// Template placeholders.
const (
	PlaceholderLocal   = "{local}"
	PlaceholderRoaming = "{roaming}"
	PlaceholderHome    = "{home}"
)

// Paths carries the platform base directories. Empty values mean unknown;
// templates that need them are dropped.
type Paths struct {
	GOOS    string
	Local   string
	Roaming string
	Home    string
}

// Entry is one application in the catalog.
type Entry struct {
	Name   string
	Roots  []string
	Layout layout.Strategy
}

var fixed = layout.Fixed{}

// Builtin is the Windows catalog, in presentation order.
var Builtin = []Entry{
	{Name: "Google Chrome", Roots: []string{"{local}/Google/Chrome/User Data"}, Layout: fixed},
	{Name: "Chrome Beta", Roots: []string{"{local}/Google/Chrome Beta/User Data"}, Layout: fixed},
	{Name: "Microsoft Edge", Roots: []string{"{local}/Microsoft/Edge/User Data"}, Layout: fixed},
	{Name: "Brave", Roots: []string{"{local}/BraveSoftware/Brave-Browser/User Data"}, Layout: fixed},
	{Name: "Opera Stable", Roots: []string{"{roaming}/Opera Software/Opera Stable"}, Layout: fixed},
	{Name: "Opera GX", Roots: []string{"{roaming}/Opera Software/Opera GX Stable"}, Layout: fixed},
	{Name: "Vivaldi", Roots: []string{"{local}/Vivaldi/User Data"}, Layout: fixed},
	{Name: "Mozilla Firefox", Roots: []string{"{roaming}/Mozilla/Firefox/Profiles"}, Layout: layout.Profiles{}},
	{Name: "Waterfox", Roots: []string{"{roaming}/Waterfox/Profiles"}, Layout: layout.Profiles{}},
}

// Validate checks a custom entry.
func (e Entry) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return errors.New("environment name is required")
	}
	if len(e.Roots) == 0 || len(e.Roots) > MaxTemplates {
		return fmt.Errorf("environment %q: want 1 to %d roots, got %d", e.Name, MaxTemplates, len(e.Roots))
	}
	for _, r := range e.Roots {
		if strings.TrimSpace(r) == "" {
			return fmt.Errorf("environment %q: empty root", e.Name)
		}
	}
	if e.Layout == nil {
		return fmt.Errorf("environment %q: layout is required", e.Name)
	}
	return nil
}

// Merge returns base with custom entries applied: an entry whose name
// matches a base entry replaces it in place, the rest are appended.
func Merge(base, custom []Entry) []Entry {
	out := make([]Entry, len(base))
	copy(out, base)
	index := make(map[string]int, len(out))
	for i, e := range out {
		index[e.Name] = i
	}
	for _, c := range custom {
		if i, ok := index[c.Name]; ok {
			out[i] = c
			continue
		}
		index[c.Name] = len(out)
		out = append(out, c)
	}
	return out
}

// Resolve expands the built-in table (on Platform only) and the custom
// entries into candidate environments. Each entry yields one candidate per
// template whose base directories are known, in template order; a name may
// therefore appear more than once.
func Resolve(p Paths, custom []Entry) []types.Environment {
	var entries []Entry
	if p.GOOS == Platform {
		entries = Builtin
	}
	entries = Merge(entries, custom)

	var out []types.Environment
	for _, e := range entries {
		for _, tmpl := range e.Roots {
			root, ok := Expand(tmpl, p)
			if !ok {
				continue
			}
			out = append(out, types.Environment{Name: e.Name, Root: root, Layout: e.Layout})
		}
	}
	return out
}

// Expand substitutes the base directory placeholders in tmpl. It reports
// false when a referenced base is unknown or the result is not absolute.
func Expand(tmpl string, p Paths) (string, bool) {
	for ph, val := range map[string]string{
		PlaceholderLocal:   p.Local,
		PlaceholderRoaming: p.Roaming,
		PlaceholderHome:    p.Home,
	} {
		if strings.Contains(tmpl, ph) && val == "" {
			return "", false
		}
	}
	r := strings.NewReplacer(
		PlaceholderLocal, filepath.ToSlash(p.Local),
		PlaceholderRoaming, filepath.ToSlash(p.Roaming),
		PlaceholderHome, filepath.ToSlash(p.Home),
	)
	out := filepath.Clean(filepath.FromSlash(r.Replace(tmpl)))
	if !filepath.IsAbs(out) {
		return "", false
	}
	return out, true
}

// Catalog is a discovery source over the static table.
type Catalog struct {
	Paths  Paths
	Custom []Entry
}

// Candidates implements the discovery source contract.
func (c Catalog) Candidates(_ afero.Fs) []types.Environment {
	return Resolve(c.Paths, c.Custom)
}
