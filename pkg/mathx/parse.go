// ============================================================================
// Rechenwerk - Taschenrechner fürs Terminal
// ============================================================================
//
// Package:     mathx
// Description: Parsing of numeric text fields
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package mathx

import (
	"math"
	"strconv"
	"strings"

	rwerror "github.com/msto63/rechenwerk/pkg/core/error"
)

// ParseAmount parses a decimal number entered into the named field.
// The error reads "<field> must be a number".
func ParseAmount(field, text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, rwerror.InvalidType("mathx.ParseAmount", field, text, "a number")
	}
	return v, nil
}

// ParseCount parses a whole number entered into the named field.
// The error reads "<field> must be an integer".
func ParseCount(field, text string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, rwerror.InvalidType("mathx.ParseCount", field, text, "an integer")
	}
	return v, nil
}
