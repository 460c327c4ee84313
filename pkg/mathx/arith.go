// ============================================================================
// Rechenwerk - Taschenrechner fürs Terminal
// ============================================================================
//
// Package:     mathx
// Description: Addition and multiplication on typed and dynamic values
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package mathx

import (
	rwerror "github.com/msto63/rechenwerk/pkg/core/error"
)

// Add returns x + y
func Add(x, y float64) float64 {
	return x + y
}

// Multiply returns x × y
func Multiply(x, y float64) float64 {
	return x * y
}

// Mul is kept for callers of the old API.
//
// Deprecated: use Multiply.
func Mul(x, y float64) float64 {
	return Multiply(x, y)
}

// AddValues adds two values of unknown type. Both must be integers or
// floating point numbers.
func AddValues(x, y interface{}) (float64, error) {
	a, err := toNumber("mathx.AddValues", x, "x")
	if err != nil {
		return 0, err
	}
	b, err := toNumber("mathx.AddValues", y, "y")
	if err != nil {
		return 0, err
	}
	return Add(a, b), nil
}

// MultiplyValues multiplies two values of unknown type
func MultiplyValues(x, y interface{}) (float64, error) {
	a, err := toNumber("mathx.MultiplyValues", x, "x")
	if err != nil {
		return 0, err
	}
	b, err := toNumber("mathx.MultiplyValues", y, "y")
	if err != nil {
		return 0, err
	}
	return Multiply(a, b), nil
}

// ToNumber converts an integer or floating point value to float64. Strings,
// booleans, nil and composite values are rejected with CodeInvalidType; name
// is used in the error message.
func ToNumber(value interface{}, name string) (float64, error) {
	return toNumber("mathx.ToNumber", value, name)
}

func toNumber(operation string, value interface{}, name string) (float64, error) {
	switch v := value.(type) {
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	default:
		return 0, rwerror.InvalidType(operation, name, value, "int or float")
	}
}
