package game

// Investment grows its principal in place, compounding every month at
// one twelfth of the expected annual return. This is deliberately a
// different compounding model than Loan, which charges a monthly rate
// against the outstanding balance.
type Investment struct {
	Type                 string  `json:"type"`
	Amount               float64 `json:"amount"`
	ExpectedAnnualReturn float64 `json:"expected_annual_return"`
}

func NewInvestment(investmentType string, amount, expectedAnnualReturn float64) *Investment {
	return &Investment{
		Type:                 investmentType,
		Amount:               amount,
		ExpectedAnnualReturn: expectedAnnualReturn,
	}
}

// ApplyMonthlyReturn compounds one month of growth and returns the gain.
func (i *Investment) ApplyMonthlyReturn() float64 {
	gain := i.Amount * (i.ExpectedAnnualReturn / 12)
	i.Amount += gain
	return gain
}

// InvestmentOption is a purchasable investment from the catalog.
type InvestmentOption struct {
	Type                 string  `json:"type"`
	ExpectedAnnualReturn float64 `json:"expected_annual_return"`
	Risk                 string  `json:"risk"`
}

// InvestmentCatalog lists the investment vehicles available for purchase.
func InvestmentCatalog() []InvestmentOption {
	return []InvestmentOption{
		{Type: "Stock", ExpectedAnnualReturn: 0.07, Risk: "high"},
		{Type: "Bond", ExpectedAnnualReturn: 0.03, Risk: "low"},
		{Type: "Retirement", ExpectedAnnualReturn: 0.05, Risk: "medium"},
	}
}
