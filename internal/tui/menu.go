package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/redactyl/footprint/internal/types"
)

// MenuItem is one line of the top-level menu. A zero Category means exit.
type MenuItem struct {
	Key      string
	Label    string
	Category types.AuditCategory
}

// MenuItems is the top-level menu in display order.
var MenuItems = []MenuItem{
	{Key: "1", Label: "Audit Credential Databases", Category: types.Credentials},
	{Key: "2", Label: "Audit Session Artifacts", Category: types.Sessions},
	{Key: "3", Label: "Comprehensive Scan (All Surface Data)", Category: types.Comprehensive},
	{Key: "4", Label: "Exit"},
}

// MenuModel lets the operator pick an audit category.
type MenuModel struct {
	header string
	cursor int
	chosen *MenuItem
	width  int
}

// NewMenuModel renders header (usually the banner) above the choices.
func NewMenuModel(header string) MenuModel {
	return MenuModel{header: header}
}

func (m MenuModel) Init() tea.Cmd { return nil }

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "esc", "ctrl+c":
			return m.choose(len(MenuItems) - 1)
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(MenuItems)-1 {
				m.cursor++
			}
		case "enter":
			return m.choose(m.cursor)
		default:
			for i, it := range MenuItems {
				if it.Key == key {
					return m.choose(i)
				}
			}
		}
	}
	return m, nil
}

func (m MenuModel) choose(i int) (tea.Model, tea.Cmd) {
	it := MenuItems[i]
	m.cursor = i
	m.chosen = &it
	return m, tea.Quit
}

// Choice returns the selected category; ok is false when the operator chose
// to exit or quit without choosing.
func (m MenuModel) Choice() (types.AuditCategory, bool) {
	if m.chosen == nil || m.chosen.Category == 0 {
		return 0, false
	}
	return m.chosen.Category, true
}

func (m MenuModel) View() string {
	if m.chosen != nil {
		return ""
	}
	var b strings.Builder
	if m.header != "" {
		b.WriteString(m.header)
		b.WriteString("\n\n")
	}
	b.WriteString("Select target footprint to audit:\n\n")
	for i, it := range MenuItems {
		line := fmt.Sprintf("  [%s] %s", it.Key, it.Label)
		if i == m.cursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(keyStyle.Render("1-4") + " select  " + keyStyle.Render("j/k") + " move  " + keyStyle.Render("enter") + " confirm  " + keyStyle.Render("q") + " exit"))
	b.WriteString("\n")
	return b.String()
}
