package game

import "math"

// LoanPayment records how one payment split between interest and principal.
type LoanPayment struct {
	Amount    float64 `json:"amount"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
}

// Loan is an amortizing loan with a level monthly payment fixed at
// origination.
type Loan struct {
	Type           string        `json:"type"`
	OriginalAmount float64       `json:"original_amount"`
	CurrentBalance float64       `json:"current_balance"`
	InterestRate   float64       `json:"interest_rate"`
	TermYears      int           `json:"term_years"`
	MonthlyPayment float64       `json:"monthly_payment"`
	History        []LoanPayment `json:"history,omitempty"`
}

func NewLoan(loanType string, amount, annualRate float64, termYears int) *Loan {
	l := &Loan{
		Type:           loanType,
		OriginalAmount: amount,
		CurrentBalance: amount,
		InterestRate:   annualRate,
		TermYears:      termYears,
	}
	l.MonthlyPayment = l.calculatePayment()
	return l
}

// calculatePayment applies the standard amortization formula
// P = A*r*(1+r)^n / ((1+r)^n - 1) with the monthly rate r, degenerating
// to straight-line A/n at zero interest.
func (l *Loan) calculatePayment() float64 {
	r := l.InterestRate / 12
	n := float64(l.TermYears * 12)
	if r == 0 {
		return l.OriginalAmount / n
	}
	factor := math.Pow(1+r, n)
	return (l.OriginalAmount * r * factor) / (factor - 1)
}

// MakePayment applies a payment, interest first. A payment that does not
// cover the period's interest reduces no principal. The principal portion
// never exceeds the remaining balance, and near-zero residue snaps to
// exactly zero.
func (l *Loan) MakePayment(amount float64) error {
	if amount <= 0 {
		return ErrInvalidPayment
	}
	interest := l.CurrentBalance * (l.InterestRate / 12)
	var principal float64
	if amount <= interest {
		interest = amount
		principal = 0
	} else {
		principal = math.Min(amount-interest, l.CurrentBalance)
	}
	l.CurrentBalance -= principal
	if l.CurrentBalance < balanceEpsilon {
		l.CurrentBalance = 0
	}
	l.History = append(l.History, LoanPayment{Amount: amount, Interest: interest, Principal: principal})
	return nil
}

// PaidOff reports whether the loan balance has reached zero.
func (l *Loan) PaidOff() bool {
	return l.CurrentBalance == 0
}
