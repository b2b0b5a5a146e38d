package game

import "math"

// Insurance is a monthly-premium policy with a deductible and a coverage
// cap. Filing a claim computes the payout; the caller moves the money.
type Insurance struct {
	Type           string  `json:"type"`
	Premium        float64 `json:"premium"`
	CoverageAmount float64 `json:"coverage_amount"`
	Deductible     float64 `json:"deductible"`
	Active         bool    `json:"active"`
}

func NewInsurance(insuranceType string, premium, coverage, deductible float64) *Insurance {
	return &Insurance{
		Type:           insuranceType,
		Premium:        premium,
		CoverageAmount: coverage,
		Deductible:     deductible,
		Active:         true,
	}
}

// FileClaim returns the payout for a loss: the loss net of the deductible,
// capped at the coverage amount, never negative. Inactive policies pay
// nothing.
func (i *Insurance) FileClaim(loss float64) float64 {
	if !i.Active {
		return 0
	}
	return math.Max(0, math.Min(loss-i.Deductible, i.CoverageAmount))
}

// InsuranceOption is a purchasable policy from the catalog.
type InsuranceOption struct {
	Type           string  `json:"type"`
	Premium        float64 `json:"premium"`
	CoverageAmount float64 `json:"coverage_amount"`
	Deductible     float64 `json:"deductible"`
}

// InsuranceCatalog lists the policies available for purchase.
func InsuranceCatalog() []InsuranceOption {
	return []InsuranceOption{
		{Type: "Car", Premium: 50, CoverageAmount: 10000, Deductible: 500},
		{Type: "Home", Premium: 60, CoverageAmount: 200000, Deductible: 1000},
		{Type: "Health", Premium: 80, CoverageAmount: 50000, Deductible: 1000},
	}
}
