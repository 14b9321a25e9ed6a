package core

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/redactyl/footprint/internal/catalog"
	"github.com/redactyl/footprint/internal/layout"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_Smoke(t *testing.T) {
	fsys := afero.NewMemMapFs()
	root := filepath.FromSlash("/apps/chromium")
	require.NoError(t, fsys.MkdirAll(filepath.Join(root, "Default"), 0o755))
	require.NoError(t, afero.WriteFile(fsys, filepath.Join(root, "Default", "Cookies"), []byte("x"), 0o644))

	cfg := Config{
		Fs:           fsys,
		Environments: []Environment{{Name: "Chromium", Root: root, Layout: layout.Fixed{}}},
		Category:     Sessions,
		Log:          zerolog.Nop(),
	}
	entries, err := Scan(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	var buf bytes.Buffer
	require.NoError(t, MarshalEntries(&buf, entries, Sessions, HostProfile{Hostname: "h"}))
	back, err := UnmarshalEntries(&buf)
	require.NoError(t, err)
	require.Len(t, back, 1)
	assert.Equal(t, entries[0].Path, back[0].Path)
}

func TestEnvironments_EmptyFs(t *testing.T) {
	assert.Empty(t, Environments(afero.NewMemMapFs()))
}

func TestEnvironments_MatchesDiscoveryRules(t *testing.T) {
	fsys := afero.NewMemMapFs()
	p := catalog.Paths{GOOS: "windows", Local: filepath.FromSlash("/L"), Roaming: filepath.FromSlash("/R"), Home: filepath.FromSlash("/H")}
	chrome := filepath.FromSlash("/L/Google/Chrome/User Data")
	require.NoError(t, fsys.MkdirAll(chrome, 0o755))
	// A root that exists as a plain file still counts as present.
	require.NoError(t, afero.WriteFile(fsys, filepath.FromSlash("/L/Vivaldi/User Data"), []byte("x"), 0o644))

	custom := []CatalogEntry{
		{Name: "Chrome Portable", Roots: []string{"{local}/Google/Chrome/User Data"}, Layout: layout.Fixed{}},
	}
	envs := environments(fsys, p, custom)
	var names []string
	for _, e := range envs {
		names = append(names, e.Name)
	}
	assert.ElementsMatch(t, []string{"Google Chrome", "Vivaldi", "Chrome Portable"}, names)
}
