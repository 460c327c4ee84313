// ============================================================================
// Rechenwerk - Taschenrechner fürs Terminal
// ============================================================================
//
// Package:     mathx
// Description: Money formatting
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package mathx

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var moneyPrinter = message.NewPrinter(language.English)

// FormatMoney renders v with thousands separators and two decimals, e.g. 1,073.64
func FormatMoney(v float64) string {
	return moneyPrinter.Sprint(number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
