package discovery

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/redactyl/footprint/internal/types"
)

// Prompter is the operator side of the dialog.
type Prompter interface {
	// Present shows the active set.
	Present(envs []types.Environment)
	// Notify shows an informational line.
	Notify(msg string)
	// Ask shows question and returns the trimmed answer. io.EOF means the
	// operator closed the input.
	Ask(question string) (string, error)
}

var (
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	foundStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// LinePrompter talks to the operator over plain line-oriented streams.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter reads answers from in and writes prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) Present(envs []types.Environment) {
	if len(envs) == 0 {
		_, _ = fmt.Fprintln(p.out, warnStyle.Render("    [-] No supported environments detected."))
		return
	}
	_, _ = fmt.Fprintln(p.out, infoStyle.Render("[*] Discovery complete. Found the following environments:"))
	_, _ = fmt.Fprintln(p.out)
	for _, e := range envs {
		_, _ = fmt.Fprintf(p.out, "    %s %s\n", foundStyle.Render("[+]"), e.Name)
	}
	_, _ = fmt.Fprintln(p.out)
}

func (p *LinePrompter) Notify(msg string) {
	_, _ = fmt.Fprintln(p.out, msg)
}

func (p *LinePrompter) Ask(question string) (string, error) {
	_, _ = fmt.Fprint(p.out, question+" ")
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// AutoPrompter confirms every question. It backs non-interactive runs.
type AutoPrompter struct {
	Out io.Writer
}

func (p AutoPrompter) Present(envs []types.Environment) {
	if p.Out == nil {
		return
	}
	for _, e := range envs {
		_, _ = fmt.Fprintf(p.Out, "[+] %s\n", e.Name)
	}
}

func (p AutoPrompter) Notify(msg string) {
	if p.Out != nil {
		_, _ = fmt.Fprintln(p.Out, msg)
	}
}

func (AutoPrompter) Ask(string) (string, error) { return "y", nil }
