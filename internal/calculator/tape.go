// ============================================================================
// Rechenwerk - Taschenrechner fürs Terminal
// ============================================================================
//
// Package:     calculator
// Description: In-memory list of completed operations
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package calculator

import "fmt"

// DefaultTapeSize is the number of entries kept when no size is configured
const DefaultTapeSize = 100

// Entry is one completed binary operation
type Entry struct {
	Left     float64
	Operator Operator
	Right    float64
	Result   float64
}

// String renders the entry as "5 + 3 = 8"
func (e Entry) String() string {
	return fmt.Sprintf("%s %s %s = %s",
		FormatNumber(e.Left), e.Operator.Symbol(), FormatNumber(e.Right), FormatNumber(e.Result))
}

// Tape keeps the most recent entries up to a limit.
// A limit of zero disables recording.
type Tape struct {
	entries []Entry
	limit   int
}

// NewTape creates a tape holding at most limit entries
func NewTape(limit int) *Tape {
	if limit < 0 {
		limit = 0
	}
	return &Tape{limit: limit}
}

// Append records an entry and drops the oldest one when full
func (t *Tape) Append(e Entry) {
	if t.limit == 0 {
		return
	}
	if len(t.entries) == t.limit {
		copy(t.entries, t.entries[1:])
		t.entries = t.entries[:len(t.entries)-1]
	}
	t.entries = append(t.entries, e)
}

// Entries returns a copy of the recorded entries, oldest first
func (t *Tape) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of recorded entries
func (t *Tape) Len() int {
	return len(t.entries)
}

// Reset removes all entries
func (t *Tape) Reset() {
	t.entries = nil
}
