package report

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/redactyl/footprint/internal/types"
)

type PrintOptions struct {
	NoColor      bool
	Duration     time.Duration
	Environments int
	DirsSearched int
}

// PrintTable renders entries as a bordered table followed by the summary.
func PrintTable(w io.Writer, entries []types.ScanEntry, opts PrintOptions) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No exposed artifacts found")
	} else {
		table := tablewriter.NewWriter(w)
		table.Header("Status", "Environment", "Target", "Size (KB)", "Modified", "Path")
		for _, e := range entries {
			status := string(e.Status)
			if !opts.NoColor {
				status = colorStatus(e.Status)
			}
			row := []string{status, e.Environment, e.Target, FormatSize(e.SizeKB), e.ModifiedString(), e.Path}
			if err := table.Append(row); err != nil {
				return err
			}
		}
		if err := table.Render(); err != nil {
			return err
		}
	}
	printSummary(w, entries, opts)
	return nil
}

// PrintText renders one report line per entry followed by the summary.
func PrintText(w io.Writer, entries []types.ScanEntry, opts PrintOptions) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No exposed artifacts found")
	}
	for _, e := range entries {
		line := Line(e)
		if !opts.NoColor {
			// Line always starts with "[STATUS]".
			line = "[" + colorStatus(e.Status) + "]" + line[len(e.Status)+2:]
		}
		fmt.Fprintln(w, line)
	}
	printSummary(w, entries, opts)
}

// Counts returns the number of exposed and locked entries.
func Counts(entries []types.ScanEntry) (exposed, locked int) {
	for _, e := range entries {
		if e.Status == types.Exposed {
			exposed++
		} else {
			locked++
		}
	}
	return exposed, locked
}

func printSummary(w io.Writer, entries []types.ScanEntry, opts PrintOptions) {
	if opts.Duration <= 0 && opts.Environments == 0 {
		return
	}
	exposed, locked := Counts(entries)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Artifacts: %d (exposed: %d, locked: %d)\n", len(entries), exposed, locked)
	if opts.Environments > 0 {
		fmt.Fprintf(w, "Environments scanned: %d (%d directories)\n", opts.Environments, opts.DirsSearched)
	}
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
	}
}

func colorStatus(s types.AccessStatus) string {
	switch s {
	case types.Exposed:
		return "\x1b[31m" + string(s) + "\x1b[0m" // red
	default:
		return "\x1b[32m" + string(s) + "\x1b[0m" // green
	}
}
