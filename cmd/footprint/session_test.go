package footprint

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/redactyl/footprint/internal/catalog"
	"github.com/redactyl/footprint/internal/report"
	"github.com/redactyl/footprint/internal/types"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	localBase   = filepath.FromSlash("/L")
	roamingBase = filepath.FromSlash("/R")
	outDir      = filepath.FromSlash("/out")
)

func winPaths() catalog.Paths {
	return catalog.Paths{GOOS: "windows", Local: localBase, Roaming: roamingBase, Home: filepath.FromSlash("/H")}
}

func hostProfile() types.HostProfile {
	return types.HostProfile{Hostname: "WS-01", OSVersion: "10.0.19045", Architecture: "amd64", AuditTime: time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)}
}

func seed(t *testing.T, fsys afero.Fs, rel string, size int) string {
	t.Helper()
	p := filepath.Join(localBase, filepath.FromSlash(rel))
	require.NoError(t, fsys.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, afero.WriteFile(fsys, p, make([]byte, size), 0o644))
	return p
}

func TestSession_ConfirmAuditAndExit(t *testing.T) {
	fsys := afero.NewMemMapFs()
	login := seed(t, fsys, "Google/Chrome/User Data/Default/Login Data", 4096)
	require.NoError(t, fsys.MkdirAll(outDir, 0o700))

	var out bytes.Buffer
	in := strings.NewReader("y\n1\n\n4\n")
	sess := newSession(fsys, in, &out, winPaths(), hostProfile(), outDir, settings{NoColor: true}, zerolog.Nop())
	require.NoError(t, sess.run(context.Background()))

	got := out.String()
	for _, want := range []string{
		"[+] Google Chrome",
		"Are these all the target environments? (Y/N):",
		"[*] Executing Credentials footprint audit...",
		"[+] Auditing environment: Google Chrome",
		"    -> Discovered: Login Data",
		"[+] Report compiled successfully: " + filepath.Join(outDir, "footprint_credentials_audit.txt"),
		"Shutting down footprint session...",
	} {
		assert.Contains(t, got, want)
	}

	data, err := afero.ReadFile(fsys, filepath.Join(outDir, report.Filename(types.Credentials)))
	require.NoError(t, err)
	assert.Contains(t, string(data), " Hostname: WS-01")
	assert.Contains(t, string(data), "[EXPOSED] Google Chrome -> Login Data (4.0 KB)")
	assert.Contains(t, string(data), "Path: "+login)
}

func TestSession_EmptyDiscoveryEndsRun(t *testing.T) {
	var out bytes.Buffer
	sess := newSession(afero.NewMemMapFs(), strings.NewReader("1\n"), &out, winPaths(), hostProfile(), outDir, settings{}, zerolog.Nop())
	require.NoError(t, sess.run(context.Background()))
	assert.Contains(t, out.String(), "No supported environments detected")
	assert.Contains(t, out.String(), "Audit aborted")
	assert.NotContains(t, out.String(), "Select target footprint")
}

func TestSession_NoDataWritesNoReport(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll(filepath.Join(localBase, "Vivaldi", "User Data", "Default"), 0o755))
	require.NoError(t, fsys.MkdirAll(outDir, 0o700))

	var out bytes.Buffer
	sess := newSession(fsys, strings.NewReader("y\n2\n\n4\n"), &out, winPaths(), hostProfile(), outDir, settings{}, zerolog.Nop())
	require.NoError(t, sess.run(context.Background()))
	assert.Contains(t, out.String(), "[-] No surface data found for compiled report.")

	infos, err := afero.ReadDir(fsys, outDir)
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestSession_ReportFailureDoesNotEndSession(t *testing.T) {
	base := afero.NewMemMapFs()
	seed(t, base, "Microsoft/Edge/User Data/Default/Cookies", 10)
	fsys := afero.NewReadOnlyFs(base)

	var out bytes.Buffer
	var results int
	sess := newSession(fsys, strings.NewReader("y\n2\n3\n4\n"), &out, winPaths(), hostProfile(), outDir, settings{}, zerolog.Nop())
	sess.results = func([]types.ScanEntry, types.AuditCategory, string) error { results++; return nil }
	require.NoError(t, sess.run(context.Background()))

	assert.Equal(t, 2, results)
	assert.Equal(t, 2, strings.Count(out.String(), "[-] Critical error writing report"))
	assert.Contains(t, out.String(), "Shutting down footprint session...")
}

func TestSession_InvalidMenuInputRePrompts(t *testing.T) {
	fsys := afero.NewMemMapFs()
	seed(t, fsys, "Google/Chrome/User Data/Local State", 1)

	var out bytes.Buffer
	sess := newSession(fsys, strings.NewReader("y\nfive\n4\n"), &out, winPaths(), hostProfile(), outDir, settings{}, zerolog.Nop())
	require.NoError(t, sess.run(context.Background()))
	assert.Contains(t, out.String(), "[-] Invalid command sequence.")
	assert.Equal(t, 2, strings.Count(out.String(), "Select target footprint to audit:"))
}

func TestSession_DeclineRescanAndAbort(t *testing.T) {
	fsys := afero.NewMemMapFs()
	seed(t, fsys, "Google/Chrome/User Data/Local State", 1)

	var out bytes.Buffer
	sess := newSession(fsys, strings.NewReader("n\nn\n"), &out, winPaths(), hostProfile(), outDir, settings{}, zerolog.Nop())
	require.NoError(t, sess.run(context.Background()))
	assert.Contains(t, out.String(), "Would you still like to proceed with the audit? (Y/N):")
	assert.Contains(t, out.String(), "Audit aborted")
}
