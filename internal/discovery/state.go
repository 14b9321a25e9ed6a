package discovery

import (
	"fmt"
	"strings"
)

// State is a step of the confirmation dialog.
type State int

const (
	StateScanning State = iota
	StateAwaitConfirm
	StateRescanning
	StateAwaitProceed
	StateConfirmed
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateScanning:
		return "scanning"
	case StateAwaitConfirm:
		return "await-confirm"
	case StateRescanning:
		return "rescanning"
	case StateAwaitProceed:
		return "await-proceed"
	case StateConfirmed:
		return "confirmed"
	case StateAborted:
		return "aborted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal reports whether the dialog has ended.
func (s State) Terminal() bool {
	return s == StateConfirmed || s == StateAborted
}

// Event is the outcome of running a state.
type Event int

const (
	EventFound Event = iota
	EventEmpty
	EventYes
	EventNo
	EventInvalid
	EventEOF
)

func (e Event) String() string {
	switch e {
	case EventFound:
		return "found"
	case EventEmpty:
		return "empty"
	case EventYes:
		return "yes"
	case EventNo:
		return "no"
	case EventInvalid:
		return "invalid"
	case EventEOF:
		return "eof"
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

// transitions is the complete dialog. Pairs that are not listed are bugs.
var transitions = map[State]map[Event]State{
	StateScanning: {
		EventFound: StateAwaitConfirm,
		EventEmpty: StateAborted,
	},
	StateAwaitConfirm: {
		EventYes:     StateConfirmed,
		EventNo:      StateRescanning,
		EventInvalid: StateAwaitConfirm,
		EventEOF:     StateAborted,
	},
	StateRescanning: {
		EventFound: StateAwaitProceed,
		EventEmpty: StateAborted,
	},
	StateAwaitProceed: {
		EventYes:     StateConfirmed,
		EventNo:      StateAborted,
		EventInvalid: StateAwaitProceed,
		EventEOF:     StateAborted,
	},
}

// Next looks up the transition for (s, e).
func Next(s State, e Event) (State, error) {
	if next, ok := transitions[s][e]; ok {
		return next, nil
	}
	return s, fmt.Errorf("discovery: no transition from %s on %s", s, e)
}

// ParseAnswer maps operator input to a yes/no/invalid event.
func ParseAnswer(s string) Event {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return EventYes
	case "n", "no":
		return EventNo
	}
	return EventInvalid
}
