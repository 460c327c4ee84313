// ============================================================================
// Rechenwerk - Taschenrechner fürs Terminal
// ============================================================================
//
// Package:     error
// Description: Error codes and their severity mapping
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Validation
	CodeInvalidType     Code = "INVALID_TYPE"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"

	// Arithmetic
	CodeDivisionByZero Code = "DIVISION_BY_ZERO"
	CodeOverflow       Code = "OVERFLOW"

	// Configuration and environment
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeMissingConfig    Code = "MISSING_CONFIG"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidInput, CodeInvalidType, CodeValueOutOfRange:
		return "validation"
	case CodeDivisionByZero, CodeOverflow:
		return "arithmetic"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError:
		return "configuration"
	default:
		return "generic"
	}
}
