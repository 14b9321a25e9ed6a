package engine

import (
	"context"
	"errors"
	"time"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/redactyl/footprint/internal/probe"
	"github.com/redactyl/footprint/internal/targets"
	"github.com/redactyl/footprint/internal/types"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Config controls one scan pass.
type Config struct {
	Fs           afero.Fs
	Environments []types.Environment
	Category     types.AuditCategory
	// Targets overrides the category's target set when non-empty.
	Targets []string

	IncludeEnvs    string
	ExcludeEnvs    string
	ProfileExclude string

	// Analyzer defaults to probe.NewAnalyzer(Fs).
	Analyzer *probe.Analyzer
	Log      zerolog.Logger
	// Progress, when set, is called before each environment is searched.
	Progress func(env types.Environment)
	// Found, when set, is called for each entry as it is appended.
	Found func(entry types.ScanEntry)
}

// Result contains entries and basic scan statistics.
type Result struct {
	Entries      []types.ScanEntry
	Environments int
	DirsSearched int
	Duration     time.Duration
}

// Scan runs a scan and returns only entries (without stats).
func Scan(ctx context.Context, cfg Config) ([]types.ScanEntry, error) {
	res, err := ScanWithStats(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return res.Entries, nil
}

// ScanWithStats searches every environment in order and returns the entries
// in environment, directory, target order. Per-item failures never abort
// the scan; only a cancelled context does.
func ScanWithStats(ctx context.Context, cfg Config) (Result, error) {
	var result Result
	if cfg.Fs == nil {
		return result, errors.New("engine: no filesystem configured")
	}
	if cfg.Analyzer == nil {
		cfg.Analyzer = probe.NewAnalyzer(cfg.Fs)
	}
	names := cfg.Targets
	if len(names) == 0 {
		names = targets.Resolve(cfg.Category)
	}
	envs := FilterEnvironments(cfg.Environments, cfg.IncludeEnvs, cfg.ExcludeEnvs)

	started := time.Now()
	emit := func(e types.ScanEntry) {
		result.Entries = append(result.Entries, e)
		if cfg.Found != nil {
			cfg.Found(e)
		}
	}

	for _, env := range envs {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if cfg.Progress != nil {
			cfg.Progress(env)
		}
		result.Environments++
		result.DirsSearched += Walk(cfg, env, names, emit)
	}
	result.Duration = time.Since(started)
	return result, nil
}

// EntryID is a stable fingerprint of an artifact within an environment.
func EntryID(env, path string) string {
	sum := xxhash.Sum64String(env + "\x00" + path)
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}
