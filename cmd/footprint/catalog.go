package footprint

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/redactyl/footprint/internal/catalog"
	"github.com/redactyl/footprint/internal/host"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List known environments and where they are expected on this host",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSettings()
			if err != nil {
				return err
			}
			return printCatalog(cmd.OutOrStdout(), afero.NewOsFs(), host.BasePaths(), s.Custom)
		},
	}
	rootCmd.AddCommand(cmd)
}

// printCatalog lists every built-in and custom entry with each template's
// resolved root. Built-ins are listed on every platform but only resolve
// where their base directories exist.
func printCatalog(w io.Writer, fsys afero.Fs, p catalog.Paths, custom []catalog.Entry) error {
	isCustom := map[string]bool{}
	for _, c := range custom {
		isCustom[c.Name] = true
	}
	table := tablewriter.NewWriter(w)
	table.Header("Environment", "Source", "Layout", "Template", "Root", "Present")
	for _, e := range catalog.Merge(catalog.Builtin, custom) {
		source := "builtin"
		if isCustom[e.Name] {
			source = "config"
		}
		for _, tmpl := range e.Roots {
			root, present := "-", "no"
			if r, ok := expandFor(e, tmpl, p, isCustom[e.Name]); ok {
				root = r
				if st, err := fsys.Stat(r); err == nil && st.IsDir() {
					present = "yes"
				}
			}
			if err := table.Append([]string{e.Name, source, e.Layout.Kind(), tmpl, root, present}); err != nil {
				return err
			}
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	if p.GOOS != catalog.Platform {
		fmt.Fprintln(w, "\nBuilt-in entries apply on Windows only; add custom environments in the config file.")
	}
	return nil
}

func expandFor(e catalog.Entry, tmpl string, p catalog.Paths, custom bool) (string, bool) {
	if !custom && p.GOOS != catalog.Platform {
		return "", false
	}
	return catalog.Expand(tmpl, p)
}
