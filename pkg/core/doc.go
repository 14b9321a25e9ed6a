// Package core provides a small, stable facade over Footprint's internal
// engine for programs that embed the audit. It re-exports a narrow API
// surface so callers do not import internal packages.
//
// Example:
//
//	fsys := afero.NewOsFs()
//	cfg := core.Config{Fs: fsys, Environments: core.Environments(fsys), Category: core.Credentials}
//	entries, err := core.Scan(context.Background(), cfg)
//	if err != nil { /* handle */ }
//	_ = core.MarshalEntries(os.Stdout, entries, cfg.Category, core.HostProfile{})
package core
