package game

import (
	"errors"
	"math"
)

const (
	// Credit card limits assigned on approval, tiered by credit score.
	CreditLimitSubprime = 2000.0
	CreditLimitStandard = 5000.0
	CreditScoreCardTier = 680

	// Minimum credit card payment: the larger of $25 or 5% of balance.
	CreditMinPaymentFloor = 25.0
	CreditMinPaymentRate  = 0.05

	// Share of monthly income auto-deposited when a bank account exists.
	AutoDepositRate = 0.8

	SavingsInterestRate = 0.01

	// Loan balances below this snap to zero after a payment.
	balanceEpsilon = 0.01
)

var (
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrInsufficientBalance = errors.New("insufficient account balance")
	ErrCreditLimitExceeded = errors.New("charge would exceed credit limit")
	ErrInvalidPayment      = errors.New("payment must be positive")
	ErrNoBankAccount       = errors.New("no bank account")
	ErrHasBankAccount      = errors.New("bank account already open")
	ErrNoCreditCard        = errors.New("no credit card")
	ErrHasCreditCard       = errors.New("credit card already issued")
	ErrHasDebitCard        = errors.New("debit card already issued")
	ErrTooYoungForCredit   = errors.New("must be 18 or older for a credit card")
	ErrLoanNotFound        = errors.New("loan not found")
	ErrNoSuchInsurance     = errors.New("no active policy of that type")
	ErrUnknownChoice       = errors.New("unknown choice")
	ErrNoPendingEvent      = errors.New("no pending life event")
	ErrWrongPendingEvent   = errors.New("pending life event is of a different kind")
	ErrDownPaymentShort    = errors.New("cannot cover the down payment")
	ErrGameOver            = errors.New("game is over")
)

// MinPaymentDue returns the minimum credit card payment for a balance.
func MinPaymentDue(balance float64) float64 {
	return math.Max(CreditMinPaymentFloor, balance*CreditMinPaymentRate)
}

// CreditLimitForScore returns the approved limit for a new credit card.
func CreditLimitForScore(score int) float64 {
	if score < CreditScoreCardTier {
		return CreditLimitSubprime
	}
	return CreditLimitStandard
}

// AutoLoanRate tiers an auto loan's annual rate by credit score.
func AutoLoanRate(score int) float64 {
	switch {
	case score >= 700:
		return 0.03
	case score >= 650:
		return 0.05
	default:
		return 0.08
	}
}

// MortgageRate tiers a 30-year mortgage's annual rate by credit score.
func MortgageRate(score int) float64 {
	switch {
	case score >= 750:
		return 0.035
	case score >= 700:
		return 0.04
	case score >= 650:
		return 0.045
	default:
		return 0.055
	}
}
