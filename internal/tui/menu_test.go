package tui

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/redactyl/footprint/internal/types"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m tea.Model, keys ...string) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(key(k))
	}
	return m, cmd
}

func TestMenu_NumberKeySelects(t *testing.T) {
	m, cmd := press(NewMenuModel(""), "2")
	if cmd == nil {
		t.Fatal("expected quit command after selection")
	}
	cat, ok := m.(MenuModel).Choice()
	if !ok || cat != types.Sessions {
		t.Fatalf("expected Sessions, got %v ok=%v", cat, ok)
	}
}

func TestMenu_NavigateAndEnter(t *testing.T) {
	m, _ := press(NewMenuModel(""), "down", "j", "down", "up", "enter")
	cat, ok := m.(MenuModel).Choice()
	if !ok || cat != types.Comprehensive {
		t.Fatalf("expected Comprehensive, got %v ok=%v", cat, ok)
	}
}

func TestMenu_CursorStaysInBounds(t *testing.T) {
	m, _ := press(NewMenuModel(""), "up", "k")
	if m.(MenuModel).cursor != 0 {
		t.Fatalf("cursor moved above first item: %d", m.(MenuModel).cursor)
	}
	m, _ = press(m, "j", "j", "j", "j", "j")
	if m.(MenuModel).cursor != len(MenuItems)-1 {
		t.Fatalf("cursor moved past last item: %d", m.(MenuModel).cursor)
	}
}

func TestMenu_ExitChoices(t *testing.T) {
	for _, k := range []string{"4", "q", "esc"} {
		m, cmd := press(NewMenuModel(""), k)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", k)
		}
		if _, ok := m.(MenuModel).Choice(); ok {
			t.Fatalf("%s: expected no category", k)
		}
	}
}

func TestMenu_UnknownKeyIgnored(t *testing.T) {
	m, cmd := press(NewMenuModel(""), "x")
	if cmd != nil {
		t.Fatal("unexpected command for unknown key")
	}
	if _, ok := m.(MenuModel).Choice(); ok {
		t.Fatal("unexpected choice")
	}
}

func TestMenu_View(t *testing.T) {
	out := NewMenuModel("HEADER").View()
	for _, want := range []string{"HEADER", "[1] Audit Credential Databases", "[4] Exit"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view; got: %q", want, out)
		}
	}
}

func TestLineMenu(t *testing.T) {
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader("9\n1\n"))
	cat, ok, err := LineMenu(in, &out, "")
	if err != nil || !ok || cat != types.Credentials {
		t.Fatalf("got %v %v %v", cat, ok, err)
	}
	if !strings.Contains(out.String(), "[-] Invalid command sequence.") {
		t.Fatalf("expected invalid input notice; got: %q", out.String())
	}

	cat, ok, err = LineMenu(bufio.NewReader(strings.NewReader("4\n")), &out, "")
	if err != nil || ok || cat != 0 {
		t.Fatalf("exit: got %v %v %v", cat, ok, err)
	}

	_, ok, err = LineMenu(bufio.NewReader(strings.NewReader("")), &out, "")
	if err != nil || ok {
		t.Fatalf("eof: got %v %v", ok, err)
	}

	cat, ok, err = LineMenu(bufio.NewReader(strings.NewReader("3")), &out, "")
	if err != nil || !ok || cat != types.Comprehensive {
		t.Fatalf("unterminated line: got %v %v %v", cat, ok, err)
	}
}

func TestBanner(t *testing.T) {
	out := Banner(types.HostProfile{Hostname: "WS-01"}, "/out")
	if !strings.Contains(out, "WS-01") || !strings.Contains(out, "/out") {
		t.Fatalf("unexpected banner: %q", out)
	}
}
