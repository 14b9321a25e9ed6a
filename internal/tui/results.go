package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/redactyl/footprint/internal/report"
	"github.com/redactyl/footprint/internal/types"
)

type statusMsg string

// ResultsModel browses the entries of one scan.
type ResultsModel struct {
	table    table.Model
	entries  []types.ScanEntry
	category types.AuditCategory
	summary  string
	status   string
	width    int
	height   int
	quitting bool

	copy func(string) error
}

const resultsHelp = "q: back to menu | j/k: navigate | c: copy path"

// NewResultsModel shows entries with summary (typically where the report
// was written) above the table.
func NewResultsModel(entries []types.ScanEntry, category types.AuditCategory, summary string) ResultsModel {
	columns := []table.Column{
		{Title: "Status", Width: 8},
		{Title: "Environment", Width: 18},
		{Title: "Target", Width: 16},
		{Title: "Size (KB)", Width: 10},
		{Title: "Modified", Width: 16},
		{Title: "Path", Width: 50},
	}

	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			string(e.Status),
			e.Environment,
			e.Target,
			report.FormatSize(e.SizeKB),
			e.ModifiedString(),
			e.Path,
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("15")).
		Bold(true).
		Padding(0, 1).
		Align(lipgloss.Left)
	s.Selected = lipgloss.NewStyle().
		Foreground(lipgloss.Color("232")).
		Background(lipgloss.Color("208")).
		Bold(true).
		Padding(0, 1)
	s.Cell = lipgloss.NewStyle().
		Padding(0, 1)
	t.SetStyles(s)

	return ResultsModel{
		table:    t,
		entries:  entries,
		category: category,
		summary:  summary,
		status:   resultsHelp,
		copy:     clipboard.WriteAll,
	}
}

func (m ResultsModel) Init() tea.Cmd { return nil }

func (m ResultsModel) selected() *types.ScanEntry {
	if len(m.entries) == 0 {
		return nil
	}
	i := m.table.Cursor()
	if i < 0 || i >= len(m.entries) {
		return nil
	}
	return &m.entries[i]
}

// copyPathToClipboard copies the selected artifact path.
func (m ResultsModel) copyPathToClipboard() tea.Cmd {
	e := m.selected()
	if e == nil {
		return func() tea.Msg { return statusMsg("No artifact selected") }
	}
	if err := m.copy(e.Path); err != nil {
		return func() tea.Msg { return statusMsg(fmt.Sprintf("Clipboard error: %v", err)) }
	}
	return func() tea.Msg { return statusMsg(fmt.Sprintf("Copied: %s", e.Path)) }
}

func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "enter", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "c", "y":
			return m, m.copyPathToClipboard()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h := m.height - 6
		if h < 3 {
			h = 3
		}
		m.table.SetHeight(h)
		m.table.SetWidth(m.width)
	case statusMsg:
		m.status = string(msg)
		return m, nil
	}
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ResultsModel) View() string {
	if m.quitting {
		return ""
	}
	exposed, locked := report.Counts(m.entries)
	head := titleStyle.Render(fmt.Sprintf("%s audit", m.category)) +
		fmt.Sprintf("  Total: %d  |  %s %d  |  %s %d",
			len(m.entries), exposedStyle.Render("Exposed:"), exposed, lockedStyle.Render("Locked:"), locked)
	body := m.table.View()
	if len(m.entries) == 0 {
		body = emptyTextStyle.Render("[OK] No surface data found")
	}
	out := head + "\n"
	if m.summary != "" {
		out += subtleStyle.Render(m.summary) + "\n"
	}
	out += body + "\n" + statusStyle.Render(m.status)
	return out
}
