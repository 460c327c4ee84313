// ============================================================================
// Rechenwerk - Taschenrechner fürs Terminal
// ============================================================================
//
// Package:     calculator
// Description: Input state machine of the calculator
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package calculator

import (
	"strings"
)

// Pending is an operator waiting for its right-hand operand
type Pending struct {
	Operator Operator
	Left     float64
}

// State is the calculator's input state. Expressions are evaluated strictly
// left to right: 2 + 3 × 4 = 20.
//
// State is not safe for concurrent use.
type State struct {
	display          string
	pending          *Pending
	resetOnNextDigit bool
	lastErr          error

	precision int
	tape      *Tape
}

// Option configures a State
type Option func(*State)

// WithPrecision sets the significant digits of displayed results
func WithPrecision(digits int) Option {
	return func(s *State) {
		if digits > 0 && digits <= 17 {
			s.precision = digits
		}
	}
}

// WithTapeSize sets how many completed operations are remembered
func WithTapeSize(size int) Option {
	return func(s *State) {
		s.tape = NewTape(size)
	}
}

// New creates a calculator showing "0"
func New(opts ...Option) *State {
	s := &State{
		display:   "0",
		precision: DefaultPrecision,
		tape:      NewTape(DefaultTapeSize),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Display returns the current display text
func (s *State) Display() string {
	return s.display
}

// Pending returns the pending operation, if any
func (s *State) Pending() (Pending, bool) {
	if s.pending == nil {
		return Pending{}, false
	}
	return *s.pending, true
}

// ResetOnNextDigit reports whether the next digit replaces the display
func (s *State) ResetOnNextDigit() bool {
	return s.resetOnNextDigit
}

// IsError reports whether the display shows the error marker
func (s *State) IsError() bool {
	return s.display == ErrorMarker
}

// LastError returns the error behind the error marker, nil while the
// display holds a number
func (s *State) LastError() error {
	if s.display != ErrorMarker {
		return nil
	}
	return s.lastErr
}

// Tape returns the completed operations, oldest first
func (s *State) Tape() []Entry {
	return s.tape.Entries()
}

// ClearTape forgets all completed operations
func (s *State) ClearTape() {
	s.tape.Reset()
}

// InputDigit appends a digit or starts a new number
func (s *State) InputDigit(d rune) {
	if d < '0' || d > '9' {
		return
	}

	switch {
	case s.resetOnNextDigit || s.display == "0":
		s.display = string(d)
		s.resetOnNextDigit = false
	case s.display == "-0":
		s.display = "-" + string(d)
	default:
		s.display += string(d)
	}
}

// InputDot starts the fractional part
func (s *State) InputDot() {
	if s.resetOnNextDigit {
		s.display = "0."
		s.resetOnNextDigit = false
		return
	}
	if !strings.Contains(s.display, ".") {
		s.display += "."
	}
}

// Clear resets everything except the tape
func (s *State) Clear() {
	s.display = "0"
	s.pending = nil
	s.resetOnNextDigit = false
}

// ClearEntry discards the number being typed; the pending operation stays
func (s *State) ClearEntry() {
	s.display = "0"
	s.resetOnNextDigit = true
}

// Backspace removes the last typed character
func (s *State) Backspace() {
	if s.resetOnNextDigit {
		s.display = "0"
		s.resetOnNextDigit = false
		return
	}

	runes := []rune(s.display)
	if len(runes) <= 1 {
		s.display = "0"
		return
	}
	s.display = string(runes[:len(runes)-1])
	if s.display == "-" {
		s.display = "0"
	}
}

// Negate toggles the sign. Zero and the error marker are left alone.
func (s *State) Negate() {
	if s.display == "0" || s.display == ErrorMarker {
		return
	}
	if strings.HasPrefix(s.display, "-") {
		s.display = s.display[1:]
	} else {
		s.display = "-" + s.display
	}
}

// SetOperator chains the pending operation when a new operand was typed,
// otherwise the displayed value becomes the left operand. Choosing another
// operator right after one therefore replaces it.
func (s *State) SetOperator(op Operator) {
	if !op.Valid() {
		return
	}

	if s.pending != nil && !s.resetOnNextDigit {
		right := s.current()
		result, ok := s.apply(right)
		if !ok {
			return
		}
		s.pending = &Pending{Operator: op, Left: result}
		s.display = s.format(result)
	} else {
		s.pending = &Pending{Operator: op, Left: s.current()}
	}

	s.resetOnNextDigit = true
}

// Equals completes the pending operation. Without one the current value is
// shown in normalized form.
func (s *State) Equals() {
	right := s.current()

	if s.pending != nil {
		result, ok := s.apply(right)
		if !ok {
			return
		}
		s.display = s.format(result)
	} else {
		s.display = s.format(right)
	}

	s.pending = nil
	s.resetOnNextDigit = true
}

// current parses the display; unparseable text becomes 0
func (s *State) current() float64 {
	v, ok := ParseDisplay(s.display)
	if !ok {
		s.display = "0"
	}
	return v
}

// apply evaluates the pending operation and records it on the tape.
// On failure the error marker is shown and the pending operation dropped.
func (s *State) apply(right float64) (float64, bool) {
	p := *s.pending
	result, err := p.Operator.Apply(p.Left, right)
	if err != nil {
		s.fail(err)
		return 0, false
	}

	s.tape.Append(Entry{Left: p.Left, Operator: p.Operator, Right: right, Result: result})
	return result, true
}

func (s *State) fail(err error) {
	s.lastErr = err
	s.display = ErrorMarker
	s.pending = nil
	s.resetOnNextDigit = true
}

func (s *State) format(v float64) string {
	return formatNumber(v, s.precision)
}
