// ============================================================================
// Rechenwerk - Taschenrechner fürs Terminal
// ============================================================================
//
// Package:     error
// Description: Constructors for the common validation and arithmetic errors
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package error

import "fmt"

// InvalidType creates an error for an argument of the wrong type,
// e.g. InvalidType("mathx.Add", "x", "abc", "a number")
func InvalidType(operation, field string, value interface{}, expected string) *Error {
	return New(fmt.Sprintf("%s must be %s", field, expected)).
		WithCode(CodeInvalidType).
		WithOperation(operation).
		WithDetail("field", field).
		WithDetail("value", value).
		WithDetail("expected", expected)
}

// OutOfRange creates an error for an argument of the right type but an
// unacceptable value, e.g. OutOfRange("mathx.LoanPayment", "years", 0.0, "> 0")
func OutOfRange(operation, field string, value interface{}, constraint string) *Error {
	return New(fmt.Sprintf("%s must be %s", field, constraint)).
		WithCode(CodeValueOutOfRange).
		WithOperation(operation).
		WithDetail("field", field).
		WithDetail("value", value).
		WithDetail("constraint", constraint)
}

// DivisionByZero creates the error returned when a divisor is zero
func DivisionByZero(operation string) *Error {
	return New("cannot divide by zero").
		WithCode(CodeDivisionByZero).
		WithOperation(operation)
}
