// ============================================================================
// Rechenwerk - Taschenrechner fürs Terminal
// ============================================================================
//
// Package:     calculator
// Description: Conversion between display text and numbers
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package calculator

import (
	"strconv"
	"strings"
)

const (
	// ErrorMarker is shown after a failed operation
	ErrorMarker = "Error"

	// DefaultPrecision is the number of significant digits shown
	DefaultPrecision = 12
)

// FormatNumber renders v with up to twelve significant digits. Trailing zeros
// and a dangling decimal point are removed unless the exponent form is used.
// Negative zero renders as "0".
func FormatNumber(v float64) string {
	return formatNumber(v, DefaultPrecision)
}

func formatNumber(v float64, precision int) string {
	if v == 0 {
		return "0"
	}

	s := strconv.FormatFloat(v, 'g', precision, 64)
	if strings.ContainsAny(s, "eE") {
		return s
	}
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// ParseDisplay converts display text to a number. Trailing decimal points are
// ignored; text that is not a number yields ok == false.
func ParseDisplay(text string) (value float64, ok bool) {
	text = strings.TrimRight(text, ".")
	if text == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
