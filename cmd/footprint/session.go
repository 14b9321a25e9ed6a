package footprint

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/redactyl/footprint/internal/catalog"
	"github.com/redactyl/footprint/internal/discovery"
	"github.com/redactyl/footprint/internal/engine"
	"github.com/redactyl/footprint/internal/host"
	"github.com/redactyl/footprint/internal/report"
	"github.com/redactyl/footprint/internal/tui"
	"github.com/redactyl/footprint/internal/types"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// session is one interactive run: discovery once, then menu and audits
// until the operator exits.
type session struct {
	fs       afero.Fs
	in       *bufio.Reader
	out      io.Writer
	paths    catalog.Paths
	host     types.HostProfile
	outDir   string
	settings settings
	log      zerolog.Logger

	// menu and results are swapped for the bubbletea screens on a terminal.
	menu    func(header string) (types.AuditCategory, bool, error)
	results func(entries []types.ScanEntry, cat types.AuditCategory, summary string) error
}

func runSession(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	log, err := s.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	fsys := afero.NewOsFs()
	paths := host.BasePaths()
	outDir, err := host.OutputDir(fsys, s.OutputDir, paths.Home)
	if err != nil {
		return err
	}

	sess := newSession(fsys, cmd.InOrStdin(), cmd.OutOrStdout(), paths, host.Profile(time.Now()), outDir, s, log)
	if cmd.InOrStdin() == os.Stdin && isTerminal(os.Stdin) && isTerminal(os.Stdout) {
		sess.menu = func(header string) (types.AuditCategory, bool, error) {
			return tui.RunMenu(os.Stdin, os.Stdout, header)
		}
		sess.results = tui.RunResults
	}
	return sess.run(cmd.Context())
}

func newSession(fsys afero.Fs, in io.Reader, out io.Writer, paths catalog.Paths, hp types.HostProfile, outDir string, s settings, log zerolog.Logger) *session {
	sess := &session{
		fs:       fsys,
		in:       bufio.NewReader(in),
		out:      out,
		paths:    paths,
		host:     hp,
		outDir:   outDir,
		settings: s,
		log:      log,
	}
	sess.menu = func(header string) (types.AuditCategory, bool, error) {
		return tui.LineMenu(sess.in, sess.out, header)
	}
	sess.results = sess.lineResults
	return sess
}

func (s *session) run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	fmt.Fprintln(s.out, tui.Banner(s.host, s.outDir))
	fmt.Fprintln(s.out, "[*] Initializing environment discovery...")
	fmt.Fprintln(s.out)

	prompter := discovery.NewLinePrompter(s.in, s.out)
	ok, envs, err := s.settings.discovery(s.fs, s.paths, prompter, s.log).Discover()
	if err != nil {
		return fmt.Errorf("discovery: %w", err)
	}
	if !ok {
		fmt.Fprintln(s.out, "\n[-] Audit aborted. No environments to audit.")
		return nil
	}

	for {
		cat, ok, err := s.menu(tui.Banner(s.host, s.outDir))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(s.out, "\nShutting down footprint session...")
			return nil
		}
		entries, summary, err := s.audit(ctx, envs, cat)
		if err != nil {
			return err
		}
		if err := s.results(entries, cat, summary); err != nil {
			return err
		}
	}
}

// audit scans envs for cat and compiles the report. Report failures are
// shown to the operator and end up in the summary; they do not end the
// session.
func (s *session) audit(ctx context.Context, envs []types.Environment, cat types.AuditCategory) ([]types.ScanEntry, string, error) {
	fmt.Fprintf(s.out, "\n[*] Executing %s footprint audit...\n", cat)
	fmt.Fprintf(s.out, "[*] Target Host: %s | Output: %s\n\n", s.host.Hostname, s.outDir)

	cfg := s.settings.engineConfig(s.fs, envs, cat, s.log)
	cfg.Progress = func(env types.Environment) {
		fmt.Fprintf(s.out, "[+] Auditing environment: %s\n", env.Name)
	}
	cfg.Found = func(e types.ScanEntry) {
		fmt.Fprintf(s.out, "    -> Discovered: %s\n", e.Target)
	}
	res, err := engine.ScanWithStats(ctx, cfg)
	if err != nil {
		return nil, "", fmt.Errorf("scan error: %w", err)
	}

	path, err := report.Compile(s.fs, s.outDir, res.Entries, cat, s.host)
	var summary string
	switch {
	case errors.Is(err, report.ErrNoData):
		summary = "[-] No surface data found for compiled report."
	case err != nil:
		s.log.Error().Err(err).Str("dir", s.outDir).Msg("report not written")
		summary = fmt.Sprintf("[-] Critical error writing report: %v", err)
	default:
		summary = fmt.Sprintf("[+] Report compiled successfully: %s", path)
	}
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, summary)
	return res.Entries, summary, nil
}

func (s *session) lineResults(entries []types.ScanEntry, _ types.AuditCategory, _ string) error {
	tui.LineResults(s.out, entries, s.settings.NoColor)
	fmt.Fprint(s.out, "\nPress Enter to return to menu...")
	if _, err := s.in.ReadString('\n'); err != nil && err != io.EOF {
		return err
	}
	fmt.Fprintln(s.out)
	return nil
}
