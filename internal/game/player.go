package game

import "strings"

// Education tiers in progression order.
const (
	EducationHighSchool        = "High School"
	EducationHighSchoolGrad    = "High School Graduate"
	EducationTradeSchool       = "Trade School"
	EducationCollegeInProgress = "College (In Progress)"
	EducationCollegeGrad       = "College Graduate"
)

// FamilyMember is a spouse or child in the player's household.
type FamilyMember struct {
	Relation string `json:"relation"`
	Name     string `json:"name,omitempty"`
	Age      int    `json:"age"`
}

// RecurringBill is a monthly obligation with a preferred funding source.
// Source "bank_or_credit" tries the bank account, then the credit card,
// before falling back to cash.
type RecurringBill struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Source string  `json:"source,omitempty"`
}

// UtilityBill is a monthly utility obligation, always funded bank first.
type UtilityBill struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Player is the aggregate root of the simulation. It owns every financial
// instrument by value; nothing holds a back-reference to it.
type Player struct {
	Name           string          `json:"name"`
	Age            int             `json:"age"`
	Education      string          `json:"education"`
	Job            string          `json:"job,omitempty"`
	Salary         float64         `json:"salary"`
	Cash           float64         `json:"cash"`
	BankAccount    *BankAccount    `json:"bank_account,omitempty"`
	SavingsAccount *BankAccount    `json:"savings_account,omitempty"`
	DebitCard      *Card           `json:"debit_card,omitempty"`
	CreditCard     *Card           `json:"credit_card,omitempty"`
	CreditScore    int             `json:"credit_score"`
	Loans          []*Loan         `json:"loans,omitempty"`
	Assets         []*Asset        `json:"assets,omitempty"`
	Family         []FamilyMember  `json:"family,omitempty"`
	Inventory      []string        `json:"inventory,omitempty"`
	RecurringBills []RecurringBill `json:"recurring_bills,omitempty"`
	UtilityBills   []UtilityBill   `json:"utility_bills,omitempty"`
	Insurance      []*Insurance    `json:"insurance,omitempty"`
	Investments    []*Investment   `json:"investments,omitempty"`
}

// NewPlayer creates a sixteen-year-old at the start of their financial
// life. Starting cash, credit score, and the default utility bills come
// from configuration.
func NewPlayer(name string, startingCash float64, startingScore int, utilities []UtilityBill) *Player {
	return &Player{
		Name:         name,
		Age:          16,
		Education:    EducationHighSchool,
		Cash:         startingCash,
		CreditScore:  startingScore,
		UtilityBills: utilities,
	}
}

// HasAsset reports whether the player owns any asset of the given type.
func (p *Player) HasAsset(assetType string) bool {
	for _, a := range p.Assets {
		if a.Type == assetType {
			return true
		}
	}
	return false
}

// Employed reports whether the player currently holds a job.
func (p *Player) Employed() bool {
	return p.Job != ""
}

// PurchaseInsurance activates a policy and registers its premium as a
// recurring bill funded bank-or-credit first.
func (p *Player) PurchaseInsurance(opt InsuranceOption) *Insurance {
	policy := NewInsurance(opt.Type, opt.Premium, opt.CoverageAmount, opt.Deductible)
	p.Insurance = append(p.Insurance, policy)
	p.RecurringBills = append(p.RecurringBills, RecurringBill{
		Name:   opt.Type + " Insurance Premium",
		Amount: opt.Premium,
		Source: "bank_or_credit",
	})
	return policy
}

// Invest moves cash into a new investment. The full amount must be
// available in cash.
func (p *Player) Invest(investmentType string, amount, expectedAnnualReturn float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > p.Cash {
		return ErrInsufficientFunds
	}
	p.Cash -= amount
	p.Investments = append(p.Investments, NewInvestment(investmentType, amount, expectedAnnualReturn))
	return nil
}

// FileInsuranceClaim pays out the first active policy of the given type
// into cash and returns the payout.
func (p *Player) FileInsuranceClaim(insuranceType string, loss float64) (float64, error) {
	for _, policy := range p.Insurance {
		if strings.EqualFold(policy.Type, insuranceType) && policy.Active {
			payout := policy.FileClaim(loss)
			p.Cash += payout
			return payout, nil
		}
	}
	return 0, ErrNoSuchInsurance
}
