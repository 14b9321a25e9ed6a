package engine

import (
	"path/filepath"

	"github.com/redactyl/footprint/internal/types"
)

// Walk searches one environment and hands every classified artifact to emit.
// It returns the number of existing directories searched.
func Walk(cfg Config, env types.Environment, names []string, emit func(types.ScanEntry)) int {
	log := cfg.Log.With().Str("environment", env.Name).Logger()
	if env.Layout == nil {
		log.Debug().Msg("no layout; skipping")
		return 0
	}
	dirs, err := env.Layout.SearchDirs(cfg.Fs, env.Root)
	if err != nil {
		log.Debug().Err(err).Str("root", env.Root).Msg("cannot list search directories")
		return 0
	}
	excludes := parseGlobsList(cfg.ProfileExclude)

	searched := 0
	for _, dir := range dirs {
		if !allowedProfile(env, dir, excludes) {
			log.Debug().Str("dir", dir).Msg("profile excluded")
			continue
		}
		st, err := cfg.Fs.Stat(dir)
		if err != nil || !st.IsDir() {
			continue
		}
		searched++
		for _, name := range names {
			p := filepath.Join(dir, filepath.FromSlash(name))
			md, ok := cfg.Analyzer.Analyze(p)
			if !ok {
				continue
			}
			log.Debug().Str("path", p).Str("status", string(md.Status)).Msg("artifact found")
			emit(types.ScanEntry{
				ID:          EntryID(env.Name, md.Path),
				Environment: env.Name,
				Target:      name,
				SizeKB:      md.SizeKB,
				Modified:    md.Modified,
				Status:      md.Status,
				Path:        md.Path,
			})
		}
	}
	return searched
}
