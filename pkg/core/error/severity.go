// ============================================================================
// Rechenwerk - Taschenrechner fürs Terminal
// ============================================================================
//
// Package:     error
// Description: Severity levels for structured errors
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow is a user mistake the UI can recover from (bad input)
	SeverityLow Severity = iota

	// SeverityMedium affects a single operation
	SeverityMedium

	// SeverityHigh prevents a component from working
	SeverityHigh

	// SeverityCritical makes the application unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeEnvironmentError:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig, CodeInternal:
		return SeverityHigh
	case CodeInvalidInput, CodeInvalidType, CodeValueOutOfRange,
		CodeDivisionByZero, CodeOverflow, CodeMissingConfig:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
