// ============================================================================
// Rechenwerk - Taschenrechner fürs Terminal
// ============================================================================
//
// Package:     log
// Description: Log entries and field helpers
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package log

import "time"

// Fields are key-value pairs attached to an entry
type Fields map[string]interface{}

// String creates a single string field
func String(key, value string) Fields {
	return Fields{key: value}
}

// Float64 creates a single float field
func Float64(key string, value float64) Fields {
	return Fields{key: value}
}

// Entry is one log record as handed to a formatter
type Entry struct {
	Time          time.Time
	Level         Level
	Message       string
	Logger        string
	CorrelationID string
	Caller        string // file:line, empty when disabled
	Fields        Fields
	Err           error
}
