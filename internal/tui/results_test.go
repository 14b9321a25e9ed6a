package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/redactyl/footprint/internal/types"
)

func entries() []types.ScanEntry {
	mod := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)
	return []types.ScanEntry{
		{Environment: "Google Chrome", Target: "Login Data", SizeKB: 4, Modified: mod, Status: types.Exposed, Path: "/a/Login Data"},
		{Environment: "Brave", Target: "Cookies", SizeKB: 1.5, Modified: mod, Status: types.Locked, Path: "/b/Cookies"},
	}
}

func run(m tea.Model, cmd tea.Cmd) tea.Model {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return m
		}
		if _, ok := msg.(tea.QuitMsg); ok {
			return m
		}
		m, cmd = m.Update(msg)
	}
	return m
}

func TestResults_CopyPath(t *testing.T) {
	m := NewResultsModel(entries(), types.Credentials, "")
	var copied string
	m.copy = func(s string) error { copied = s; return nil }

	next, cmd := m.Update(key("down"))
	next, cmd = next.Update(key("c"))
	next = run(next, cmd)

	if copied != "/b/Cookies" {
		t.Fatalf("expected second path copied, got %q", copied)
	}
	if got := next.(ResultsModel).status; got != "Copied: /b/Cookies" {
		t.Fatalf("unexpected status: %q", got)
	}
}

func TestResults_CopyError(t *testing.T) {
	m := NewResultsModel(entries(), types.Credentials, "")
	m.copy = func(string) error { return errors.New("no display") }
	next, cmd := m.Update(key("c"))
	next = run(next, cmd)
	if got := next.(ResultsModel).status; !strings.Contains(got, "Clipboard error: no display") {
		t.Fatalf("unexpected status: %q", got)
	}
}

func TestResults_CopyWithoutEntries(t *testing.T) {
	m := NewResultsModel(nil, types.Sessions, "")
	m.copy = func(string) error { t.Fatal("copy must not be called"); return nil }
	next, cmd := m.Update(key("c"))
	next = run(next, cmd)
	if got := next.(ResultsModel).status; got != "No artifact selected" {
		t.Fatalf("unexpected status: %q", got)
	}
}

func TestResults_Quit(t *testing.T) {
	next, cmd := NewResultsModel(entries(), types.Credentials, "").Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if next.View() != "" {
		t.Fatal("expected empty view after quit")
	}
}

func TestResults_View(t *testing.T) {
	m := NewResultsModel(entries(), types.Comprehensive, "Report: /out/x.txt")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 30})
	out := next.View()
	for _, want := range []string{"Comprehensive audit", "Total: 2", "Report: /out/x.txt", "Google Chrome", "LOCKED"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view; got: %q", want, out)
		}
	}

	empty := NewResultsModel(nil, types.Sessions, "").View()
	if !strings.Contains(empty, "No surface data found") {
		t.Fatalf("expected empty message; got: %q", empty)
	}
}

func TestLineResults(t *testing.T) {
	var buf bytes.Buffer
	LineResults(&buf, entries(), true)
	if !strings.Contains(buf.String(), "-> [EXPOSED] Google Chrome: /a/Login Data") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
