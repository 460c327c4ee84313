// ============================================================================
// Rechenwerk - Taschenrechner fürs Terminal
// ============================================================================
//
// Package:     calculator
// Description: Input events and the single state update function
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package calculator

import (
	"strings"

	rwerror "github.com/msto63/rechenwerk/pkg/core/error"
)

// EventKind identifies a key press
type EventKind int

const (
	EventDigit EventKind = iota + 1
	EventDot
	EventOperator
	EventEquals
	EventClear
	EventClearEntry
	EventBackspace
	EventNegate
)

// String returns the event kind name
func (k EventKind) String() string {
	switch k {
	case EventDigit:
		return "digit"
	case EventDot:
		return "dot"
	case EventOperator:
		return "operator"
	case EventEquals:
		return "equals"
	case EventClear:
		return "clear"
	case EventClearEntry:
		return "clear_entry"
	case EventBackspace:
		return "backspace"
	case EventNegate:
		return "negate"
	default:
		return "unknown"
	}
}

// Event is a single input to the state machine
type Event struct {
	Kind     EventKind
	Digit    rune
	Operator Operator
}

// Event constructors
func DigitEvent(d rune) Event { return Event{Kind: EventDigit, Digit: d} }
func DotEvent() Event { return Event{Kind: EventDot} }
func OperatorEvent(op Operator) Event { return Event{Kind: EventOperator, Operator: op} }
func EqualsEvent() Event { return Event{Kind: EventEquals} }
func ClearEvent() Event { return Event{Kind: EventClear} }
func ClearEntryEvent() Event { return Event{Kind: EventClearEntry} }
func BackspaceEvent() Event { return Event{Kind: EventBackspace} }
func NegateEvent() Event { return Event{Kind: EventNegate} }

// Dispatch applies one event to the state
func (s *State) Dispatch(ev Event) {
	switch ev.Kind {
	case EventDigit:
		s.InputDigit(ev.Digit)
	case EventDot:
		s.InputDot()
	case EventOperator:
		s.SetOperator(ev.Operator)
	case EventEquals:
		s.Equals()
	case EventClear:
		s.Clear()
	case EventClearEntry:
		s.ClearEntry()
	case EventBackspace:
		s.Backspace()
	case EventNegate:
		s.Negate()
	}
}

// Run dispatches the events in order and returns the final display
func (s *State) Run(events []Event) string {
	for _, ev := range events {
		s.Dispatch(ev)
	}
	return s.display
}

// keywords recognized as whole tokens, case-insensitive
var keywords = map[string]Event{
	"c":     ClearEvent(),
	"ac":    ClearEvent(),
	"ce":    ClearEntryEvent(),
	"bs":    BackspaceEvent(),
	"neg":   NegateEvent(),
	"±":     NegateEvent(),
	"+/-":   NegateEvent(),
	"=":     EqualsEvent(),
	"enter": EqualsEvent(),
}

// ParseTokens converts command line tokens into events. A token is either a
// keyword (C, CE, BS, NEG, ±, =) or a run of key characters such as "12.5"
// or "5+3=".
func ParseTokens(tokens []string) ([]Event, error) {
	var events []Event
	for _, tok := range tokens {
		evs, err := ParseToken(tok)
		if err != nil {
			return nil, err
		}
		events = append(events, evs...)
	}
	return events, nil
}

// ParseToken converts a single token into events
func ParseToken(tok string) ([]Event, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return nil, nil
	}
	if ev, ok := keywords[strings.ToLower(tok)]; ok {
		return []Event{ev}, nil
	}

	events := make([]Event, 0, len(tok))
	for _, r := range tok {
		switch {
		case r >= '0' && r <= '9':
			events = append(events, DigitEvent(r))
		case r == '.' || r == ',':
			events = append(events, DotEvent())
		case r == '=':
			events = append(events, EqualsEvent())
		default:
			op, ok := ParseOperator(string(r))
			if !ok {
				return nil, rwerror.Newf("unknown key %q in %q", r, tok).
					WithCode(rwerror.CodeInvalidInput).
					WithOperation("calculator.ParseToken").
					WithDetail("token", tok)
			}
			events = append(events, OperatorEvent(op))
		}
	}
	return events, nil
}
