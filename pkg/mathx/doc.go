// ============================================================================
// Rechenwerk - Taschenrechner fürs Terminal
// ============================================================================
//
// Package:     mathx
// Description: Arithmetic helpers and loan/interest formulas
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

// Package mathx provides the arithmetic and financial helpers behind the
// calculator.
//
// Overview
//
// All functions work on float64. The typed helpers (Add, Multiply) cannot
// fail; the dynamic ones (AddValues, MultiplyValues, ToNumber) accept values
// of unknown type and reject anything that is not an integer or floating point
// number.
//
// The finance formulas validate their arguments before computing:
//
//	payment, err := mathx.LoanPayment(200000, 0.05, 30, mathx.DefaultPeriodsPerYear)
//	// payment ≈ 1073.64
//
// Errors are *rwerror.Error values. A value of the wrong kind carries
// CodeInvalidType, a number outside the allowed range carries
// CodeValueOutOfRange; both name the offending argument in the "field" detail:
//
//	if rwerror.HasCode(err, rwerror.CodeValueOutOfRange) {
//		fmt.Println(rwerror.GetField(err), "is out of range")
//	}
//
// Rates are decimals (0.05 for 5%). Periods per year must be at least one.
package mathx
