// Package discovery turns catalog candidates into the active environment set
// and runs the operator confirmation dialog around it.
package discovery

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/redactyl/footprint/internal/types"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Source yields candidate environments. Candidates need not exist.
type Source interface {
	Candidates(fsys afero.Fs) []types.Environment
}

const (
	questionConfirm = "Are these all the target environments? (Y/N):"
	questionProceed = "Would you still like to proceed with the audit? (Y/N):"
)

// Engine owns the active set for one run.
type Engine struct {
	Fs       afero.Fs
	Sources  []Source
	Deep     []Source
	Prompter Prompter
	Log      zerolog.Logger

	active []types.Environment
}

// Active resolves the initial sources and keeps the candidates whose root
// exists. It does not prompt.
func (e *Engine) Active() []types.Environment {
	return e.filter(e.Sources, nil)
}

// Rescan resolves the initial sources again, then adds deep candidates whose
// root is not already covered.
func (e *Engine) Rescan() []types.Environment {
	return e.filter(e.Sources, e.Deep)
}

// filter keeps the first existing candidate per name. Deep candidates are
// also dropped when their root already belongs to an environment.
func (e *Engine) filter(sources, deep []Source) []types.Environment {
	var out []types.Environment
	names := map[string]bool{}
	roots := map[string]bool{}
	add := func(c types.Environment, byRoot bool) {
		root := filepath.Clean(c.Root)
		if names[c.Name] || (byRoot && roots[root]) {
			return
		}
		if _, err := e.Fs.Stat(root); err != nil {
			e.Log.Debug().Str("environment", c.Name).Str("root", root).Msg("root not present")
			return
		}
		names[c.Name] = true
		roots[root] = true
		c.Root = root
		out = append(out, c)
	}
	for _, src := range sources {
		for _, c := range src.Candidates(e.Fs) {
			add(c, false)
		}
	}
	for _, src := range deep {
		for _, c := range src.Candidates(e.Fs) {
			add(c, true)
		}
	}
	return out
}

// Discover runs the dialog to completion. It returns the confirmed set, or
// false and no environments when the set is empty or the operator aborts.
// err is set only when the prompter fails.
func (e *Engine) Discover() (bool, []types.Environment, error) {
	state := StateScanning
	for !state.Terminal() {
		ev, err := e.step(state)
		if err != nil {
			return false, nil, err
		}
		next, err := Next(state, ev)
		if err != nil {
			return false, nil, err
		}
		e.Log.Debug().Stringer("from", state).Stringer("event", ev).Stringer("to", next).Msg("discovery transition")
		state = next
	}
	if state == StateAborted {
		return false, nil, nil
	}
	return true, e.active, nil
}

func (e *Engine) step(s State) (Event, error) {
	switch s {
	case StateScanning:
		e.active = e.Active()
		e.Prompter.Present(e.active)
		if len(e.active) == 0 {
			return EventEmpty, nil
		}
		return EventFound, nil
	case StateAwaitConfirm:
		return e.ask(questionConfirm)
	case StateRescanning:
		e.Prompter.Notify("[*] Initiating deep rescan. Please wait...")
		return e.rescan(), nil
	case StateAwaitProceed:
		ev, err := e.ask(questionProceed)
		if ev == EventNo {
			e.Prompter.Notify("Aborting initialization.")
		}
		return ev, err
	}
	return 0, fmt.Errorf("discovery: no action for state %s", s)
}

func (e *Engine) rescan() Event {
	before := map[string]bool{}
	for _, env := range e.active {
		before[env.Name] = true
	}
	e.active = e.Rescan()
	var added []types.Environment
	for _, env := range e.active {
		if !before[env.Name] {
			added = append(added, env)
		}
	}
	if len(added) == 0 {
		e.Prompter.Notify("[-] Deep scan complete. No additional environments discovered.")
	} else {
		e.Prompter.Notify(fmt.Sprintf("[+] Deep scan complete. %d additional environment(s) discovered:", len(added)))
		e.Prompter.Present(e.active)
	}
	if len(e.active) == 0 {
		return EventEmpty
	}
	return EventFound
}

func (e *Engine) ask(q string) (Event, error) {
	answer, err := e.Prompter.Ask(q)
	if errors.Is(err, io.EOF) {
		return EventEOF, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read answer: %w", err)
	}
	ev := ParseAnswer(answer)
	if ev == EventInvalid {
		e.Prompter.Notify("[-] Invalid input.")
	}
	return ev, nil
}
