package game

import (
	"math"
	"testing"
)

func TestLoanMonthlyPayment(t *testing.T) {
	tests := []struct {
		amount float64
		rate   float64
		years  int
		want   float64
	}{
		{amount: 80000, rate: 0.05, years: 20, want: 527.96},
		{amount: 20000, rate: 0.05, years: 5, want: 377.42},
		{amount: 200000, rate: 0.045, years: 30, want: 1013.37},
	}
	for _, tc := range tests {
		l := NewLoan("Test", tc.amount, tc.rate, tc.years)
		if math.Abs(l.MonthlyPayment-tc.want) > 0.01 {
			t.Fatalf("amount=%.0f rate=%.3f years=%d got=%.2f want=%.2f",
				tc.amount, tc.rate, tc.years, l.MonthlyPayment, tc.want)
		}
	}
}

func TestAutoLoanFirstPayment(t *testing.T) {
	l := NewLoan("Auto", 20000, 0.06, 5)
	if math.Abs(l.MonthlyPayment-386.66) > 0.01 {
		t.Fatalf("payment got %.2f want 386.66", l.MonthlyPayment)
	}
	if err := l.MakePayment(l.MonthlyPayment); err != nil {
		t.Fatalf("pay: %v", err)
	}
	pay := l.History[0]
	if math.Abs(pay.Interest-100) > 0.01 {
		t.Fatalf("interest got %.2f want 100.00", pay.Interest)
	}
	if math.Abs(pay.Principal-286.66) > 0.01 {
		t.Fatalf("principal got %.2f want 286.66", pay.Principal)
	}
	if math.Abs(l.CurrentBalance-19713.34) > 0.01 {
		t.Fatalf("balance got %.2f want 19713.34", l.CurrentBalance)
	}
}

func TestLoanAmortizationIdentity(t *testing.T) {
	l := NewLoan("Mortgage", 160000, 0.045, 30)
	totalPaid, totalInterest := 0.0, 0.0
	for i := 0; i < 30*12 && !l.PaidOff(); i++ {
		due := math.Min(l.MonthlyPayment, l.CurrentBalance*(1+l.InterestRate/12))
		_ = l.MakePayment(due)
		last := l.History[len(l.History)-1]
		totalPaid += last.Amount
		totalInterest += last.Interest
	}
	if !l.PaidOff() {
		t.Fatalf("not paid off, balance %.4f", l.CurrentBalance)
	}
	// Total paid equals principal plus all interest charged.
	if math.Abs(totalPaid-(160000+totalInterest)) > 1 {
		t.Fatalf("paid %.2f, principal+interest %.2f", totalPaid, 160000+totalInterest)
	}
}

func TestLoanZeroRateIsStraightLine(t *testing.T) {
	l := NewLoan("Test", 12000, 0, 10)
	if got, want := l.MonthlyPayment, 100.0; math.Abs(got-want) > 1e-9 {
		t.Fatalf("got %.4f want %.4f", got, want)
	}
}

func TestLoanPaymentSplitsInterestFirst(t *testing.T) {
	l := NewLoan("Auto", 10000, 0.06, 5)
	if err := l.MakePayment(250); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// First month interest on 10000 at 6%/yr is exactly 50.
	pay := l.History[0]
	if math.Abs(pay.Interest-50) > 1e-9 {
		t.Fatalf("interest got %.4f want 50", pay.Interest)
	}
	if math.Abs(pay.Principal-200) > 1e-9 {
		t.Fatalf("principal got %.4f want 200", pay.Principal)
	}
	if math.Abs(l.CurrentBalance-9800) > 1e-9 {
		t.Fatalf("balance got %.4f want 9800", l.CurrentBalance)
	}
}

func TestLoanPaymentBelowInterestReducesNothing(t *testing.T) {
	l := NewLoan("Auto", 10000, 0.06, 5)
	if err := l.MakePayment(20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.CurrentBalance != 10000 {
		t.Fatalf("balance moved to %.4f", l.CurrentBalance)
	}
	if got := l.History[0].Principal; got != 0 {
		t.Fatalf("principal got %.4f want 0", got)
	}
}

func TestLoanOverpaymentSnapsToZero(t *testing.T) {
	l := NewLoan("Auto", 100, 0.06, 1)
	if err := l.MakePayment(10000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !l.PaidOff() {
		t.Fatalf("expected paid off, balance %.6f", l.CurrentBalance)
	}
}

func TestLoanRejectsNonPositivePayment(t *testing.T) {
	l := NewLoan("Auto", 1000, 0.05, 1)
	for _, amount := range []float64{0, -50} {
		if err := l.MakePayment(amount); err != ErrInvalidPayment {
			t.Fatalf("amount=%.0f got err=%v", amount, err)
		}
	}
}

func TestLoanRunsToTerm(t *testing.T) {
	l := NewLoan("Student", 10000, 0.05, 10)
	for i := 0; i < 10*12; i++ {
		if l.PaidOff() {
			break
		}
		due := math.Min(l.MonthlyPayment, l.CurrentBalance*(1+l.InterestRate/12))
		_ = l.MakePayment(due)
	}
	if !l.PaidOff() {
		t.Fatalf("loan not paid off at term, balance %.4f", l.CurrentBalance)
	}
}
