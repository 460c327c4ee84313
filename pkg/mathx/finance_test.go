package mathx

import (
	"math"
	"testing"

	rwerror "github.com/msto63/rechenwerk/pkg/core/error"
)

func approxEqual(a, b, rel, abs float64) bool {
	return math.Abs(a-b) <= math.Max(rel*math.Max(math.Abs(a), math.Abs(b)), abs)
}

func TestCompoundAmount(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		years     float64
		n         int
		want      float64
	}{
		{"annual compounding", 1000, 0.05, 1, 1, 1050},
		{"zero rate", 1000, 0, 5, 12, 1000},
		{"zero years", 1000, 0.05, 0, 12, 1000},
		{"zero principal", 0, 0.05, 10, 12, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CompoundAmount(tt.principal, tt.rate, tt.years, tt.n)
			if err != nil {
				t.Fatalf("CompoundAmount() error = %v", err)
			}
			if !approxEqual(got, tt.want, 1e-12, 1e-12) {
				t.Errorf("CompoundAmount() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompoundAmount_GrowsAbovePrincipal(t *testing.T) {
	got, err := CompoundAmount(1500, 0.043, 6, 4)
	if err != nil {
		t.Fatalf("CompoundAmount() error = %v", err)
	}
	if got <= 1500 {
		t.Errorf("CompoundAmount() = %v, want > 1500", got)
	}
}

func TestCompoundAmount_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		years     float64
		n         int
		code      rwerror.Code
		field     string
	}{
		{"negative principal", -1, 0.05, 1, 12, rwerror.CodeValueOutOfRange, "principal"},
		{"negative rate", 1000, -0.01, 1, 12, rwerror.CodeValueOutOfRange, "annual_rate"},
		{"negative years", 1000, 0.05, -1, 12, rwerror.CodeValueOutOfRange, "years"},
		{"zero periods", 1000, 0.05, 1, 0, rwerror.CodeValueOutOfRange, "periods_per_year"},
		{"nan principal", math.NaN(), 0.05, 1, 12, rwerror.CodeInvalidType, "principal"},
		{"infinite years", 1000, 0.05, math.Inf(1), 12, rwerror.CodeInvalidType, "years"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CompoundAmount(tt.principal, tt.rate, tt.years, tt.n)
			if err == nil {
				t.Fatal("CompoundAmount() should fail")
			}
			if !rwerror.HasCode(err, tt.code) {
				t.Errorf("CompoundAmount() code = %v, want %v", rwerror.GetCode(err), tt.code)
			}
			if f := rwerror.GetField(err); f != tt.field {
				t.Errorf("CompoundAmount() field = %q, want %q", f, tt.field)
			}
		})
	}
}

func TestLoanPayment(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		years     float64
		ppy       int
		want      float64
	}{
		{"classic mortgage", 200000, 0.05, 30, 12, 1073.64},
		{"zero rate", 1200, 0, 1, 12, 100},
		{"zero principal", 0, 0.05, 10, 12, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoanPayment(tt.principal, tt.rate, tt.years, tt.ppy)
			if err != nil {
				t.Fatalf("LoanPayment() error = %v", err)
			}
			if !approxEqual(got, tt.want, 1e-4, 1e-4) {
				t.Errorf("LoanPayment() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoanPayment_TinyRateFallsBack(t *testing.T) {
	got, err := LoanPayment(1200, 1e-300, 1, 12)
	if err != nil {
		t.Fatalf("LoanPayment() error = %v", err)
	}
	if !approxEqual(got, 100, 1e-9, 1e-9) {
		t.Errorf("LoanPayment() = %v, want 100", got)
	}
}

func TestLoanPayment_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		years     float64
		ppy       int
		field     string
		msg       string
	}{
		{"negative principal", -1, 0.05, 1, 12, "principal", "principal must be non-negative"},
		{"negative rate", 1000, -0.01, 1, 12, "annual_rate", "annual_rate must be non-negative"},
		{"zero years", 1000, 0.05, 0, 12, "years", "years must be > 0"},
		{"negative years", 1000, 0.05, -1, 12, "years", "years must be > 0"},
		{"zero payments", 1000, 0.05, 1, 0, "payments_per_year", "payments_per_year must be >= 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoanPayment(tt.principal, tt.rate, tt.years, tt.ppy)
			if !rwerror.HasCode(err, rwerror.CodeValueOutOfRange) {
				t.Fatalf("LoanPayment() error = %v, want VALUE_OUT_OF_RANGE", err)
			}
			if f := rwerror.GetField(err); f != tt.field {
				t.Errorf("LoanPayment() field = %q, want %q", f, tt.field)
			}
			if err.Error() != tt.msg {
				t.Errorf("LoanPayment() message = %q, want %q", err.Error(), tt.msg)
			}
		})
	}
}

func TestTotalInterest(t *testing.T) {
	got, err := TotalInterest(1200, 0, 1, 12)
	if err != nil {
		t.Fatalf("TotalInterest() error = %v", err)
	}
	if !approxEqual(got, 0, 1e-12, 1e-12) {
		t.Errorf("TotalInterest(zero rate) = %v, want 0", got)
	}

	got, err = TotalInterest(100000, 0.05, 30, 12)
	if err != nil {
		t.Fatalf("TotalInterest() error = %v", err)
	}
	if got <= 0 {
		t.Errorf("TotalInterest() = %v, want > 0", got)
	}

	if _, err := TotalInterest(1000, 0.05, 0, 12); !rwerror.HasCode(err, rwerror.CodeValueOutOfRange) {
		t.Errorf("TotalInterest(years=0) error = %v, want VALUE_OUT_OF_RANGE", err)
	}
}

func TestSummarizeLoan(t *testing.T) {
	s, err := SummarizeLoan(200000, 0.05, 30, DefaultPeriodsPerYear)
	if err != nil {
		t.Fatalf("SummarizeLoan() error = %v", err)
	}

	if !approxEqual(s.Payment, 1073.64, 1e-4, 1e-4) {
		t.Errorf("Payment = %v, want 1073.64", s.Payment)
	}
	if !approxEqual(s.TotalPaid, s.Payment*360, 1e-12, 1e-9) {
		t.Errorf("TotalPaid = %v, want %v", s.TotalPaid, s.Payment*360)
	}
	if !approxEqual(s.TotalInterest, s.TotalPaid-200000, 1e-12, 1e-9) {
		t.Errorf("TotalInterest = %v, want %v", s.TotalInterest, s.TotalPaid-200000)
	}

	ti, _ := TotalInterest(200000, 0.05, 30, DefaultPeriodsPerYear)
	if !approxEqual(s.TotalInterest, ti, 1e-12, 1e-9) {
		t.Errorf("TotalInterest = %v, TotalInterest() = %v", s.TotalInterest, ti)
	}
}
