package footprint

import (
	"fmt"
	"io"
	"os"

	"github.com/redactyl/footprint/internal/catalog"
	"github.com/redactyl/footprint/internal/config"
	"github.com/redactyl/footprint/internal/discovery"
	"github.com/redactyl/footprint/internal/engine"
	"github.com/redactyl/footprint/internal/telemetry"
	"github.com/redactyl/footprint/internal/types"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// settings is the merged view of flags, the local file and the global file.
type settings struct {
	OutputDir      string
	Category       string
	Format         string
	NoColor        bool
	LogLevel       string
	Include        string
	Exclude        string
	ProfileExclude string
	SearchRoots    []string
	Custom         []catalog.Entry
}

// loadSettings resolves CLI > local (or --config) > global.
func loadSettings() (settings, error) {
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if flagConfig != "" {
		c, err := config.LoadFile(flagConfig)
		if err != nil {
			return settings{}, fmt.Errorf("load config: %w", err)
		}
		lcfg = c
	} else if wd, err := os.Getwd(); err == nil {
		if c, err := config.LoadLocal(wd); err == nil {
			lcfg = c
		}
	}
	return mergeSettings(lcfg, gcfg)
}

func mergeSettings(lcfg, gcfg config.FileConfig) (settings, error) {
	s := settings{
		OutputDir:      pickString(flagOutputDir, lcfg.OutputDir, gcfg.OutputDir),
		Category:       pickString(flagCategory, lcfg.Category, gcfg.Category),
		Format:         pickString(flagFormat, lcfg.Format, gcfg.Format),
		NoColor:        pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor),
		LogLevel:       pickString(flagLogLevel, lcfg.LogLevel, gcfg.LogLevel),
		Include:        pickString(flagInclude, lcfg.Include, gcfg.Include),
		Exclude:        pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		ProfileExclude: pickString(flagProfileExclude, lcfg.ProfileExclude, gcfg.ProfileExclude),
		SearchRoots:    pickStrings(lcfg.SearchRoots, gcfg.SearchRoots),
	}
	// Custom environments from both files apply; local entries win by name.
	global, err := gcfg.CustomEntries()
	if err != nil {
		return s, fmt.Errorf("global config: %w", err)
	}
	local, err := lcfg.CustomEntries()
	if err != nil {
		return s, fmt.Errorf("local config: %w", err)
	}
	s.Custom = catalog.Merge(global, local)
	return s, nil
}

func (s settings) logger(w io.Writer) (zerolog.Logger, error) {
	lvl, err := telemetry.ParseLevel(s.LogLevel)
	if err != nil {
		return zerolog.Nop(), err
	}
	return telemetry.NewLogger(w, lvl, s.NoColor), nil
}

// searchRoots are the deep rescan roots: configured ones, else the platform
// bases, else the home directory.
func (s settings) searchRoots(p catalog.Paths) []string {
	if len(s.SearchRoots) > 0 {
		var out []string
		for _, r := range s.SearchRoots {
			if root, ok := catalog.Expand(r, p); ok {
				out = append(out, root)
			}
		}
		return out
	}
	var out []string
	for _, r := range []string{p.Local, p.Roaming} {
		if r != "" {
			out = append(out, r)
		}
	}
	if len(out) == 0 && p.Home != "" {
		out = append(out, p.Home)
	}
	return out
}

func (s settings) discovery(fsys afero.Fs, p catalog.Paths, prompter discovery.Prompter, log zerolog.Logger) *discovery.Engine {
	return &discovery.Engine{
		Fs:       fsys,
		Sources:  []discovery.Source{catalog.Catalog{Paths: p, Custom: s.Custom}},
		Deep:     []discovery.Source{catalog.Probe{Roots: s.searchRoots(p)}},
		Prompter: prompter,
		Log:      log,
	}
}

func (s settings) engineConfig(fsys afero.Fs, envs []types.Environment, cat types.AuditCategory, log zerolog.Logger) engine.Config {
	return engine.Config{
		Fs:             fsys,
		Environments:   envs,
		Category:       cat,
		IncludeEnvs:    s.Include,
		ExcludeEnvs:    s.Exclude,
		ProfileExclude: s.ProfileExclude,
		Log:            log,
	}
}
