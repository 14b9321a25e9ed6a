package footprint

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig         string
	flagOutputDir      string
	flagLogLevel       string
	flagNoColor        bool
	flagInclude        string
	flagExclude        string
	flagProfileExclude string

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the Footprint CLI.
var rootCmd = &cobra.Command{
	Use:   "footprint",
	Short: "Audit browser credential and session exposure on this host",
	Long: "Footprint finds locally installed browsers, checks which credential databases and " +
		"session artifacts exist under their profiles and whether they are readable, and writes " +
		"an exposure report. Artifact contents are never opened.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSession,
}

// Execute runs the Footprint CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ./.footprint.yml, then $XDG_CONFIG_HOME/footprint/config.yml)")
	rootCmd.PersistentFlags().StringVar(&flagOutputDir, "output-dir", "", "report directory (default ~/Desktop/Footprint/Output)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug|info|warn|error (default warn)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().StringVar(&flagInclude, "include", "", "comma-separated environment name globs to audit")
	rootCmd.PersistentFlags().StringVar(&flagExclude, "exclude", "", "comma-separated environment name globs to skip")
	rootCmd.PersistentFlags().StringVar(&flagProfileExclude, "profile-exclude", "", "comma-separated profile directory globs to skip")
}

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "footprint v%s\n", version)
		},
	})
}
