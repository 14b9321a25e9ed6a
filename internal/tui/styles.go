// Package tui holds the interactive screens: the category menu, the results
// browser and their plain-line fallbacks for non-terminal input.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/redactyl/footprint/internal/types"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 1)

	bannerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)

	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("232")).
			Background(lipgloss.Color("208")).
			Bold(true)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("7"))

	emptyTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	exposedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	lockedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// Banner is printed above the menu and before every scan.
func Banner(host types.HostProfile, outputDir string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("FOOTPRINT"))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("  browser credential and session exposure audit"))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(fmt.Sprintf("  Target Host: %s | Output: %s", host.Hostname, outputDir)))
	return bannerStyle.Render(b.String())
}

// StatusLabel colors an access status for terminal output.
func StatusLabel(s types.AccessStatus) string {
	if s == types.Exposed {
		return exposedStyle.Render(string(s))
	}
	return lockedStyle.Render(string(s))
}
