package tui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/redactyl/footprint/internal/types"
)

// LineMenu is the menu for input that is not a terminal. Invalid input is
// reported and the menu is shown again; EOF exits.
func LineMenu(in *bufio.Reader, out io.Writer, header string) (types.AuditCategory, bool, error) {
	for {
		if header != "" {
			fmt.Fprintln(out, header)
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, "Select target footprint to audit:")
		fmt.Fprintln(out)
		for _, it := range MenuItems {
			fmt.Fprintf(out, "  [%s] %s\n", it.Key, it.Label)
		}
		fmt.Fprintln(out)
		fmt.Fprint(out, "footprint> ")

		line, err := in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			if err == io.EOF {
				return 0, false, nil
			}
			return 0, false, err
		}
		choice := strings.TrimSpace(line)
		for _, it := range MenuItems {
			if it.Key == choice {
				return it.Category, it.Category != 0, nil
			}
		}
		fmt.Fprintln(out, "\n[-] Invalid command sequence.")
	}
}

// LineResults prints entries one per line with colored statuses.
func LineResults(out io.Writer, entries []types.ScanEntry, noColor bool) {
	for _, e := range entries {
		status := string(e.Status)
		if !noColor {
			status = StatusLabel(e.Status)
		}
		fmt.Fprintf(out, "    -> [%s] %s: %s\n", status, e.Environment, e.Path)
	}
}
