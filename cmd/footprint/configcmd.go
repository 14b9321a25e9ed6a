package footprint

import (
	"fmt"
	"os"

	"github.com/redactyl/footprint/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	cfgOutput    string
	cfgCategory  string
	cfgFormat    string
	cfgOutputDir string
	cfgNoColor   bool
	cfgForce     bool
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .footprint.yml with the selected defaults",
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&cfgOutput, "output", ".footprint.yml", "output file path")
	initCmd.Flags().StringVar(&cfgCategory, "category", "", "default audit category for scan")
	initCmd.Flags().StringVar(&cfgFormat, "format", "", "default output format for scan: table|text|json")
	initCmd.Flags().StringVar(&cfgOutputDir, "report-dir", "", "report directory")
	initCmd.Flags().BoolVar(&cfgNoColor, "no-color", false, "disable color output by default")
	initCmd.Flags().BoolVar(&cfgForce, "force", false, "overwrite an existing file")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the global config file location",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := config.GlobalPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}
	cfgCmd.AddCommand(pathCmd)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	b, err := renderConfig(config.FileConfig{
		OutputDir: strPtr(cfgOutputDir),
		Category:  strPtr(cfgCategory),
		Format:    strPtr(cfgFormat),
		NoColor:   boolPtr(cfgNoColor),
	})
	if err != nil {
		return err
	}
	if !cfgForce {
		if _, err := os.Stat(cfgOutput); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", cfgOutput)
		}
	}
	if err := os.WriteFile(cfgOutput, b, 0o644); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", cfgOutput)
	return nil
}

// renderConfig writes the set keys followed by the commented reference.
func renderConfig(fc config.FileConfig) ([]byte, error) {
	var out []byte
	b, err := yaml.Marshal(&fc)
	if err != nil {
		return nil, err
	}
	if s := string(b); s != "{}\n" {
		out = append(out, b...)
		out = append(out, '\n')
	}
	return append(out, config.Template...), nil
}
