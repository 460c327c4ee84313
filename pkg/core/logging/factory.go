// ============================================================================
// Rechenwerk - Taschenrechner fürs Terminal
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating application loggers
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	rwerror "github.com/msto63/rechenwerk/pkg/core/error"
	rwlog "github.com/msto63/rechenwerk/pkg/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: json, text or logfmt (default: json)
	Format string

	// Output writer. nil discards all entries; the TUI owns stdout.
	Output io.Writer

	// Additional outputs
	AdditionalOutputs []io.Writer

	// SessionID is attached as correlation id; empty generates a new one
	SessionID string
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "info",
		Format:      "json",
	}
}

// NewLogger creates a new logger tagged with a session id
func NewLogger(cfg LoggerConfig) *rwlog.Logger {
	var outputs []io.Writer
	if cfg.Output != nil {
		outputs = append(outputs, cfg.Output)
	}
	outputs = append(outputs, cfg.AdditionalOutputs...)

	var output io.Writer
	switch len(outputs) {
	case 0:
		output = io.Discard
	case 1:
		output = outputs[0]
	default:
		output = io.MultiWriter(outputs...)
	}

	format, err := rwlog.ParseFormat(cfg.Format)
	if err != nil {
		format = rwlog.FormatJSON
	}

	sessionID := cfg.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	return rwlog.NewWithConfig(rwlog.Config{
		Level:        parseLevel(cfg.Level),
		Format:       format,
		Output:       output,
		Name:         cfg.ServiceName,
		EnableCaller: true,
	}).WithCorrelationID(sessionID)
}

// OpenLogFile opens path for appending, creating parent directories
func OpenLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, rwerror.Wrap(err, "failed to create log directory").
			WithCode(rwerror.CodeConfigError).
			WithOperation("logging.OpenLogFile").
			WithDetail("path", path)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, rwerror.Wrap(err, "failed to open log file").
			WithCode(rwerror.CodeConfigError).
			WithOperation("logging.OpenLogFile").
			WithDetail("path", path)
	}
	return f, nil
}

// parseLevel converts a string level to rwlog.Level, falling back to info
func parseLevel(level string) rwlog.Level {
	parsed, err := rwlog.ParseLevel(level)
	if err != nil {
		return rwlog.LevelInfo
	}
	return parsed
}
