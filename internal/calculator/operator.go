// ============================================================================
// Rechenwerk - Taschenrechner fürs Terminal
// ============================================================================
//
// Package:     calculator
// Description: Binary operators and their application
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package calculator

import (
	"math"

	rwerror "github.com/msto63/rechenwerk/pkg/core/error"
	"github.com/msto63/rechenwerk/pkg/mathx"
)

// Operator is one of the four binary operators of the key pad
type Operator int

const (
	OpNone Operator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

// Sentinel errors; compare with errors.Is
var (
	ErrDivisionByZero = rwerror.DivisionByZero("calculator.Apply")
	ErrOverflow       = rwerror.New("result is not a finite number").
				WithCode(rwerror.CodeOverflow).
				WithOperation("calculator.Apply")
)

// Symbol returns the key pad label of the operator
func (o Operator) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return ""
	}
}

// String returns the operator name
func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	default:
		return "none"
	}
}

// Valid reports whether o is one of the four operators
func (o Operator) Valid() bool {
	return o >= OpAdd && o <= OpDivide
}

// ParseOperator maps a typed character or key pad label to an operator
func ParseOperator(s string) (Operator, bool) {
	switch s {
	case "+":
		return OpAdd, true
	case "-", "−":
		return OpSubtract, true
	case "*", "x", "×":
		return OpMultiply, true
	case "/", ":", "÷":
		return OpDivide, true
	default:
		return OpNone, false
	}
}

// Apply evaluates left <op> right.
// Subtraction adds the negated operand and division multiplies with the
// reciprocal, so every operation goes through mathx.Add or mathx.Multiply.
func (o Operator) Apply(left, right float64) (float64, error) {
	var result float64

	switch o {
	case OpAdd:
		result = mathx.Add(left, right)
	case OpSubtract:
		result = mathx.Add(left, -right)
	case OpMultiply:
		result = mathx.Multiply(left, right)
	case OpDivide:
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		result = mathx.Multiply(left, 1/right)
	default:
		return 0, rwerror.Newf("unknown operator %d", int(o)).
			WithCode(rwerror.CodeInvalidInput).
			WithOperation("calculator.Apply")
	}

	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, ErrOverflow
	}
	return result, nil
}
