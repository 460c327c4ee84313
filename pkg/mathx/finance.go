// ============================================================================
// Rechenwerk - Taschenrechner fürs Terminal
// ============================================================================
//
// Package:     mathx
// Description: Compound interest and loan amortization
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package mathx

import (
	"math"

	rwerror "github.com/msto63/rechenwerk/pkg/core/error"
)

// DefaultPeriodsPerYear is monthly compounding / monthly payments
const DefaultPeriodsPerYear = 12

// LoanSummary holds the figures shown for an amortized loan
type LoanSummary struct {
	Payment       float64
	TotalInterest float64
	TotalPaid     float64
}

// CompoundAmount returns the accumulated amount with compound interest.
// Formula: A = P × (1 + r/n)^(n×t)
// Where: P = principal, r = annual rate, n = periods per year, t = years
func CompoundAmount(principal, annualRate, years float64, periodsPerYear int) (float64, error) {
	const op = "mathx.CompoundAmount"

	if err := requireFinite(op, "principal", principal); err != nil {
		return 0, err
	}
	if err := requireFinite(op, "annual_rate", annualRate); err != nil {
		return 0, err
	}
	if err := requireFinite(op, "years", years); err != nil {
		return 0, err
	}
	if principal < 0 {
		return 0, rwerror.OutOfRange(op, "principal", principal, "non-negative")
	}
	if annualRate < 0 {
		return 0, rwerror.OutOfRange(op, "annual_rate", annualRate, "non-negative")
	}
	if years < 0 {
		return 0, rwerror.OutOfRange(op, "years", years, "non-negative")
	}
	if periodsPerYear < 1 {
		return 0, rwerror.OutOfRange(op, "periods_per_year", periodsPerYear, ">= 1")
	}

	n := float64(periodsPerYear)
	return principal * math.Pow(1+annualRate/n, n*years), nil
}

// LoanPayment returns the fixed periodic payment of an amortized loan.
// Formula: M = P × i / (1 − (1 + i)^(−N))
// Where: i = annual rate / payments per year, N = years × payments per year
// A zero rate yields P / N.
func LoanPayment(principal, annualRate, years float64, paymentsPerYear int) (float64, error) {
	if err := validateLoan("mathx.LoanPayment", principal, annualRate, years, paymentsPerYear); err != nil {
		return 0, err
	}
	return loanPayment(principal, annualRate, years, paymentsPerYear), nil
}

// TotalInterest returns the interest paid over the life of the loan
func TotalInterest(principal, annualRate, years float64, paymentsPerYear int) (float64, error) {
	if err := validateLoan("mathx.TotalInterest", principal, annualRate, years, paymentsPerYear); err != nil {
		return 0, err
	}
	payment := loanPayment(principal, annualRate, years, paymentsPerYear)
	return payment*float64(paymentsPerYear)*years - principal, nil
}

// SummarizeLoan computes payment, total interest and total amount paid
func SummarizeLoan(principal, annualRate, years float64, paymentsPerYear int) (LoanSummary, error) {
	if err := validateLoan("mathx.SummarizeLoan", principal, annualRate, years, paymentsPerYear); err != nil {
		return LoanSummary{}, err
	}

	payment := loanPayment(principal, annualRate, years, paymentsPerYear)
	totalPaid := payment * float64(paymentsPerYear) * years

	return LoanSummary{
		Payment:       payment,
		TotalInterest: totalPaid - principal,
		TotalPaid:     totalPaid,
	}, nil
}

// loanPayment assumes validated arguments
func loanPayment(principal, annualRate, years float64, paymentsPerYear int) float64 {
	periods := float64(paymentsPerYear) * years
	if annualRate == 0 {
		return principal / periods
	}

	i := annualRate / float64(paymentsPerYear)
	denom := 1 - math.Pow(1+i, -periods)
	// tiny rates can round the denominator to zero
	if denom == 0 {
		return principal / periods
	}
	return principal * i / denom
}

func validateLoan(op string, principal, annualRate, years float64, paymentsPerYear int) error {
	if err := requireFinite(op, "principal", principal); err != nil {
		return err
	}
	if err := requireFinite(op, "annual_rate", annualRate); err != nil {
		return err
	}
	if err := requireFinite(op, "years", years); err != nil {
		return err
	}
	if principal < 0 {
		return rwerror.OutOfRange(op, "principal", principal, "non-negative")
	}
	if annualRate < 0 {
		return rwerror.OutOfRange(op, "annual_rate", annualRate, "non-negative")
	}
	if years <= 0 {
		return rwerror.OutOfRange(op, "years", years, "> 0")
	}
	if paymentsPerYear < 1 {
		return rwerror.OutOfRange(op, "payments_per_year", paymentsPerYear, ">= 1")
	}
	return nil
}

func requireFinite(op, field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return rwerror.InvalidType(op, field, v, "a finite number")
	}
	return nil
}
