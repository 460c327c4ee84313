// ============================================================================
// Rechenwerk - Taschenrechner fürs Terminal
// ============================================================================
//
// Package:     log
// Description: Log levels and parsing
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package log

import (
	"strings"

	rwerror "github.com/msto63/rechenwerk/pkg/core/error"
)

// Level is the importance of a log entry
type Level int

const (
	// LevelTrace logs every dispatched calculator event
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError

	// levelOff is above every level; used by Discard
	levelOff
)

var levelNames = [...]struct{ long, short string }{
	LevelTrace: {"trace", "TRC"},
	LevelDebug: {"debug", "DBG"},
	LevelInfo:  {"info", "INF"},
	LevelWarn:  {"warn", "WRN"},
	LevelError: {"error", "ERR"},
}

// String returns the lower case name written to JSON and logfmt output
func (l Level) String() string {
	if l < LevelTrace || l > LevelError {
		return "unknown"
	}
	return levelNames[l].long
}

// ShortString returns the three letter tag of the text format
func (l Level) ShortString() string {
	if l < LevelTrace || l > LevelError {
		return "???"
	}
	return levelNames[l].short
}

// ParseLevel accepts a level name or its short tag, case-insensitive.
// Unknown input yields LevelInfo and an INVALID_INPUT error.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "warning":
		return LevelWarn, nil
	case "err":
		return LevelError, nil
	}
	for l, n := range levelNames {
		if name == n.long || name == strings.ToLower(n.short) {
			return Level(l), nil
		}
	}
	return LevelInfo, rwerror.Newf("unknown log level %q", s).
		WithCode(rwerror.CodeInvalidInput).
		WithOperation("log.ParseLevel")
}
