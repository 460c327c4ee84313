// ============================================================================
// Rechenwerk - Taschenrechner fürs Terminal
// ============================================================================
//
// Package:     log
// Description: Structured logger with context fields
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package log

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	rwerror "github.com/msto63/rechenwerk/pkg/core/error"
)

// Config configures a Logger
type Config struct {
	Level        Level
	Format       Format
	Output       io.Writer // nil discards
	Name         string
	EnableCaller bool
}

// Logger writes structured entries. The With* methods return copies that
// share the output; writes to it are serialized.
type Logger struct {
	level         Level
	format        Format
	out           *syncWriter
	name          string
	correlationID string
	fields        Fields
	caller        bool
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) write(p []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w.Write(p)
}

// NewWithConfig creates a logger
func NewWithConfig(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = io.Discard
	}
	return &Logger{
		level:  cfg.Level,
		format: cfg.Format,
		out:    &syncWriter{w: out},
		name:   cfg.Name,
		caller: cfg.EnableCaller,
	}
}

// Discard returns a logger that drops every entry
func Discard() *Logger {
	return NewWithConfig(Config{Level: levelOff})
}

// GetLevel returns the minimum level written
func (l *Logger) GetLevel() Level {
	return l.level
}

// IsLevelEnabled reports whether entries of level are written
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level >= l.level
}

// WithName returns a copy logging under another name
func (l *Logger) WithName(name string) *Logger {
	c := l.clone()
	c.name = name
	return c
}

// WithField returns a copy that adds key to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	c := l.clone()
	c.fields[key] = value
	return c
}

// WithCorrelationID returns a copy tagging every entry with id
func (l *Logger) WithCorrelationID(id string) *Logger {
	c := l.clone()
	c.correlationID = id
	return c
}

func (l *Logger) Trace(msg string, fields ...Fields) { l.log(LevelTrace, msg, nil, fields) }
func (l *Logger) Debug(msg string, fields ...Fields) { l.log(LevelDebug, msg, nil, fields) }
func (l *Logger) Info(msg string, fields ...Fields)  { l.log(LevelInfo, msg, nil, fields) }
func (l *Logger) Warn(msg string, fields ...Fields)  { l.log(LevelWarn, msg, nil, fields) }
func (l *Logger) Error(msg string, fields ...Fields) { l.log(LevelError, msg, nil, fields) }

// WarnWithErr logs msg with err attached at warn level
func (l *Logger) WarnWithErr(msg string, err error, fields ...Fields) {
	l.log(LevelWarn, msg, err, fields)
}

// ErrorWithErr logs msg with err attached at error level
func (l *Logger) ErrorWithErr(msg string, err error, fields ...Fields) {
	l.log(LevelError, msg, err, fields)
}

// LogError logs a structured error with its code and severity. Low severity
// goes to info, medium to warn and everything above to error.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	severity := rwerror.GetSeverity(err)
	fields := Fields{
		"error_code":     rwerror.GetCode(err).String(),
		"error_severity": severity.String(),
	}
	if field := rwerror.GetField(err); field != "" {
		fields["error_field"] = field
	}

	level := LevelError
	switch severity {
	case rwerror.SeverityLow:
		level = LevelInfo
	case rwerror.SeverityMedium:
		level = LevelWarn
	}
	l.log(level, err.Error(), err, []Fields{fields})
}

func (l *Logger) log(level Level, msg string, err error, fields []Fields) {
	if !l.IsLevelEnabled(level) {
		return
	}

	e := &Entry{
		Time:          time.Now(),
		Level:         level,
		Message:       msg,
		Logger:        l.name,
		CorrelationID: l.correlationID,
		Fields:        make(Fields, len(l.fields)),
		Err:           err,
	}
	for k, v := range l.fields {
		e.Fields[k] = v
	}
	for _, fs := range fields {
		for k, v := range fs {
			e.Fields[k] = v
		}
	}
	if l.caller {
		// skip log and the exported method
		if _, file, line, ok := runtime.Caller(2); ok {
			e.Caller = fmt.Sprintf("%s:%d", filepath.Base(file), line)
		}
	}

	l.out.write(l.format.encode(e))
}

func (l *Logger) clone() *Logger {
	c := *l
	c.fields = make(Fields, len(l.fields))
	for k, v := range l.fields {
		c.fields[k] = v
	}
	return &c
}
