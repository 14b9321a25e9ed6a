package footprint

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/redactyl/footprint/internal/catalog"
	"github.com/redactyl/footprint/internal/discovery"
	"github.com/redactyl/footprint/internal/engine"
	"github.com/redactyl/footprint/internal/host"
	"github.com/redactyl/footprint/internal/report"
	"github.com/redactyl/footprint/internal/types"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	flagCategory string
	flagFormat   string
	flagYes      bool
	flagNoReport bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Run one audit without the menu",
		Long: "Discovers environments, runs a single audit category and prints the entries. " +
			"Use --yes to accept the discovered set without prompting.",
		RunE: runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagCategory, "category", "c", "", "credentials|sessions|comprehensive (default comprehensive)")
	cmd.Flags().StringVarP(&flagFormat, "format", "f", "", "output format: table|text|json (default table)")
	cmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "accept the discovered environments without prompting")
	cmd.Flags().BoolVar(&flagNoReport, "no-report", false, "do not write the report file")
	_ = cmd.RegisterFlagCompletionFunc("category", fixedValues("credentials", "sessions", "comprehensive"))
	_ = cmd.RegisterFlagCompletionFunc("format", fixedValues("table", "text", "json"))
}

// scanRun carries everything one non-interactive scan needs.
type scanRun struct {
	fs       afero.Fs
	in       io.Reader
	out      io.Writer
	errOut   io.Writer
	paths    catalog.Paths
	host     types.HostProfile
	settings settings
	log      zerolog.Logger
	yes      bool
	noReport bool
	color    bool
}

func runScan(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	log, err := s.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	r := scanRun{
		fs:       afero.NewOsFs(),
		in:       cmd.InOrStdin(),
		out:      cmd.OutOrStdout(),
		errOut:   cmd.ErrOrStderr(),
		paths:    host.BasePaths(),
		host:     host.Profile(time.Now()),
		settings: s,
		log:      log,
		yes:      flagYes,
		noReport: flagNoReport,
		color:    !s.NoColor && cmd.OutOrStdout() == os.Stdout && isTerminal(os.Stdout),
	}
	return r.run(cmd.Context())
}

func (r scanRun) run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cat := types.Comprehensive
	if r.settings.Category != "" {
		c, err := types.ParseCategory(r.settings.Category)
		if err != nil {
			return err
		}
		cat = c
	}
	format := strings.ToLower(r.settings.Format)
	if format == "" {
		format = "table"
	}
	if format != "table" && format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q (want table|text|json)", r.settings.Format)
	}

	// The dialog goes to stderr so stdout stays machine-readable.
	var prompter discovery.Prompter = discovery.NewLinePrompter(r.in, r.errOut)
	if r.yes {
		prompter = discovery.AutoPrompter{Out: r.errOut}
	}
	ok, envs, err := r.settings.discovery(r.fs, r.paths, prompter, r.log).Discover()
	if err != nil {
		return fmt.Errorf("discovery: %w", err)
	}
	if !ok {
		envs = nil
		fmt.Fprintln(r.errOut, "[-] Audit aborted. No environments to audit.")
	}

	res, err := engine.ScanWithStats(ctx, r.settings.engineConfig(r.fs, envs, cat, r.log))
	if err != nil {
		return fmt.Errorf("scan error: %w", err)
	}

	if ok && !r.noReport {
		dir, err := host.OutputDir(r.fs, r.settings.OutputDir, r.paths.Home)
		if err != nil {
			return err
		}
		path, err := report.Compile(r.fs, dir, res.Entries, cat, r.host)
		switch {
		case errors.Is(err, report.ErrNoData):
			fmt.Fprintln(r.errOut, "[-] No surface data found for compiled report.")
		case err != nil:
			fmt.Fprintf(r.errOut, "[-] Critical error writing report: %v\n", err)
		default:
			fmt.Fprintf(r.errOut, "[+] Report compiled successfully: %s\n", path)
		}
	}

	opts := report.PrintOptions{
		NoColor:      !r.color,
		Duration:     res.Duration,
		Environments: res.Environments,
		DirsSearched: res.DirsSearched,
	}
	switch format {
	case "json":
		return report.WriteJSON(r.out, report.NewDocument(res.Entries, cat, r.host), r.color)
	case "text":
		report.PrintText(r.out, res.Entries, opts)
		return nil
	default:
		return report.PrintTable(r.out, res.Entries, opts)
	}
}
