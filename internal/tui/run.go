package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/redactyl/footprint/internal/types"
)

// RunMenu shows the category menu inline and returns the operator's pick.
func RunMenu(in io.Reader, out io.Writer, header string) (types.AuditCategory, bool, error) {
	final, err := tea.NewProgram(NewMenuModel(header), tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return 0, false, fmt.Errorf("error running TUI: %w", err)
	}
	cat, ok := final.(MenuModel).Choice()
	return cat, ok, nil
}

// RunResults opens the results browser until the operator leaves it.
func RunResults(entries []types.ScanEntry, category types.AuditCategory, summary string) error {
	m := NewResultsModel(entries, category, summary)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
