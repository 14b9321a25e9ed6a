package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/redactyl/footprint/internal/catalog"
	"github.com/redactyl/footprint/internal/layout"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for Footprint.
type FileConfig struct {
	OutputDir      *string  `yaml:"output_dir,omitempty"`
	Category       *string  `yaml:"category,omitempty"`
	Format         *string  `yaml:"format,omitempty"`
	NoColor        *bool    `yaml:"no_color,omitempty"`
	LogLevel       *string  `yaml:"log_level,omitempty"`
	Include        *string  `yaml:"include,omitempty"`
	Exclude        *string  `yaml:"exclude,omitempty"`
	ProfileExclude *string  `yaml:"profile_exclude,omitempty"`
	SearchRoots    []string `yaml:"search_roots,omitempty"`

	// Environments extends the built-in catalog. An entry named like a
	// built-in one replaces it.
	Environments []EnvironmentConfig `yaml:"environments,omitempty"`
}

// EnvironmentConfig describes one custom catalog entry.
type EnvironmentConfig struct {
	Name string `yaml:"name"`
	// Roots are path templates tried in order; {local}, {roaming} and {home}
	// expand to the platform base directories.
	Roots   []string `yaml:"roots,omitempty"`
	Layout  string   `yaml:"layout,omitempty"`
	Subdirs []string `yaml:"subdirs,omitempty"`
}

// CustomEntries converts and validates the configured environments.
func (fc FileConfig) CustomEntries() ([]catalog.Entry, error) {
	var out []catalog.Entry
	seen := map[string]bool{}
	for i, ec := range fc.Environments {
		strat, err := layout.Parse(ec.Layout, ec.Subdirs)
		if err != nil {
			return nil, fmt.Errorf("environments[%d]: %w", i, err)
		}
		e := catalog.Entry{Name: ec.Name, Roots: ec.Roots, Layout: strat}
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("environments[%d]: %w", i, err)
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("environments[%d]: duplicate name %q", i, e.Name)
		}
		seen[e.Name] = true
		out = append(out, e)
	}
	return out, nil
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadLocal searches for a config file in the given directory.
// It supports .footprint.yml/.yaml and footprint.yml/.yaml.
func LoadLocal(dir string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".footprint.yml", ".footprint.yaml", "footprint.yml", "footprint.yaml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// GlobalPath returns the global config location under the XDG base
// directory or ~/.config.
func GlobalPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return "", errors.New("no config dir")
	}
	return filepath.Join(base, "footprint", "config.yml"), nil
}

// LoadGlobal loads the global config file.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	p, err := GlobalPath()
	if err != nil {
		return cfg, err
	}
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}

// Template is written by `footprint config init`.
const Template = `# Footprint configuration
# output_dir: ~/Desktop/Footprint/Output
# category: credentials        # credentials | sessions | comprehensive
# format: table                # table | text | json
# no_color: false
# log_level: warn
# include: ""                  # environment name globs, comma separated
# exclude: ""
# profile_exclude: ""          # profile directory globs (profiles layout only)
# search_roots: []             # deep rescan roots; defaults to the local and roaming bases
# environments:
#   - name: Chromium
#     roots: ["{local}/Chromium/User Data", "{home}/.config/chromium"]
#     layout: fixed
#   - name: LibreWolf
#     roots: ["{roaming}/librewolf/Profiles", "{home}/.librewolf"]
#     layout: profiles
`
