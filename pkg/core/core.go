package core

import (
	"context"
	"io"

	"github.com/redactyl/footprint/internal/catalog"
	"github.com/redactyl/footprint/internal/discovery"
	"github.com/redactyl/footprint/internal/engine"
	"github.com/redactyl/footprint/internal/host"
	"github.com/redactyl/footprint/internal/report"
	"github.com/redactyl/footprint/internal/types"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type (
	Config        = engine.Config
	Result        = engine.Result
	ScanEntry     = types.ScanEntry
	Environment   = types.Environment
	AuditCategory = types.AuditCategory
	HostProfile   = types.HostProfile
	CatalogEntry  = catalog.Entry
)

const (
	Credentials   = types.Credentials
	Sessions      = types.Sessions
	Comprehensive = types.Comprehensive
)

// Scan is the stable entrypoint for other programs.
func Scan(ctx context.Context, cfg Config) ([]ScanEntry, error) {
	return engine.Scan(ctx, cfg)
}

// ScanWithStats runs a scan and returns entries plus statistics.
func ScanWithStats(ctx context.Context, cfg Config) (Result, error) {
	return engine.ScanWithStats(ctx, cfg)
}

// Environments returns the catalog environments whose roots exist on fsys,
// without any operator dialog. custom entries extend or replace the
// built-in catalog by name, as the environments section of a config file does.
func Environments(fsys afero.Fs, custom ...CatalogEntry) []Environment {
	return environments(fsys, host.BasePaths(), custom)
}

func environments(fsys afero.Fs, p catalog.Paths, custom []CatalogEntry) []Environment {
	e := &discovery.Engine{
		Fs:      fsys,
		Sources: []discovery.Source{catalog.Catalog{Paths: p, Custom: custom}},
		Log:     zerolog.Nop(),
	}
	return e.Active()
}

// MarshalEntries pretty-prints entries with the host profile as JSON.
func MarshalEntries(w io.Writer, entries []ScanEntry, c AuditCategory, host HostProfile) error {
	return report.WriteJSON(w, report.NewDocument(entries, c, host), false)
}

// UnmarshalEntries decodes the JSON written by MarshalEntries.
func UnmarshalEntries(r io.Reader) ([]ScanEntry, error) {
	doc, err := report.ReadJSON(r)
	if err != nil {
		return nil, err
	}
	return doc.Entries, nil
}
