package game

import "strings"

// Player-initiated operations, called by the presentation layer between
// ticks. Unlike the monthly waterfalls these validate strictly: a bad
// amount is a caller bug, not a gameplay outcome.

// OpenBankAccount opens the player's primary account, funding the initial
// deposit from cash.
func (s *Sim) OpenBankAccount(accountType AccountType, initialDeposit float64) error {
	p := s.Player
	if p.BankAccount != nil {
		return ErrHasBankAccount
	}
	if initialDeposit <= 0 {
		return ErrInvalidAmount
	}
	if initialDeposit > p.Cash {
		return ErrInsufficientFunds
	}
	account := NewBankAccount(accountType)
	p.Cash -= initialDeposit
	if err := account.Deposit(initialDeposit); err != nil {
		p.Cash += initialDeposit
		return err
	}
	p.BankAccount = account
	return nil
}

// OpenSavingsAccount opens a secondary savings account alongside the
// primary one.
func (s *Sim) OpenSavingsAccount(initialDeposit float64) error {
	p := s.Player
	if p.SavingsAccount != nil {
		return ErrHasBankAccount
	}
	if initialDeposit <= 0 {
		return ErrInvalidAmount
	}
	if initialDeposit > p.Cash {
		return ErrInsufficientFunds
	}
	account := NewBankAccount(Savings)
	p.Cash -= initialDeposit
	if err := account.Deposit(initialDeposit); err != nil {
		p.Cash += initialDeposit
		return err
	}
	p.SavingsAccount = account
	return nil
}

// Deposit moves cash into the primary bank account.
func (s *Sim) Deposit(amount float64) error {
	p := s.Player
	if p.BankAccount == nil {
		return ErrNoBankAccount
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > p.Cash {
		return ErrInsufficientFunds
	}
	if err := p.BankAccount.Deposit(amount); err != nil {
		return err
	}
	p.Cash -= amount
	return nil
}

// Withdraw moves money from the primary bank account into cash.
func (s *Sim) Withdraw(amount float64) error {
	p := s.Player
	if p.BankAccount == nil {
		return ErrNoBankAccount
	}
	if err := p.BankAccount.Withdraw(amount); err != nil {
		return err
	}
	p.Cash += amount
	return nil
}

// IssueDebitCard issues a debit card against the primary account.
func (s *Sim) IssueDebitCard() error {
	p := s.Player
	if p.BankAccount == nil {
		return ErrNoBankAccount
	}
	if p.DebitCard != nil {
		return ErrHasDebitCard
	}
	p.DebitCard = NewCard(Debit, 0)
	return nil
}

// ApplyForCreditCard approves a credit card for adults, with the limit
// tiered by credit score.
func (s *Sim) ApplyForCreditCard() error {
	p := s.Player
	if p.CreditCard != nil {
		return ErrHasCreditCard
	}
	if p.Age < 18 {
		return ErrTooYoungForCredit
	}
	p.CreditCard = NewCard(Credit, CreditLimitForScore(p.CreditScore))
	return nil
}

// PayCreditCard pays down the credit card from cash. The payment must
// cover at least the minimum due and at most the outstanding balance.
func (s *Sim) PayCreditCard(amount float64) error {
	p := s.Player
	if p.CreditCard == nil {
		return ErrNoCreditCard
	}
	if p.CreditCard.Balance <= 0 {
		return ErrInvalidPayment
	}
	if amount < MinPaymentDue(p.CreditCard.Balance) || amount > p.CreditCard.Balance {
		return ErrInvalidPayment
	}
	if amount > p.Cash {
		return ErrInsufficientFunds
	}
	if err := p.CreditCard.Pay(amount); err != nil {
		return err
	}
	p.Cash -= amount
	return nil
}

// MakeExtraLoanPayment applies an extra principal payment from cash to
// the loan at the given index.
func (s *Sim) MakeExtraLoanPayment(index int, amount float64) error {
	p := s.Player
	if index < 0 || index >= len(p.Loans) {
		return ErrLoanNotFound
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > p.Cash {
		return ErrInsufficientFunds
	}
	if err := p.Loans[index].MakePayment(amount); err != nil {
		return err
	}
	p.Cash -= amount
	return nil
}

// Invest buys into a catalog investment with cash.
func (s *Sim) Invest(investmentType string, amount float64) error {
	for _, opt := range InvestmentCatalog() {
		if strings.EqualFold(opt.Type, investmentType) {
			return s.Player.Invest(opt.Type, amount, opt.ExpectedAnnualReturn)
		}
	}
	return ErrUnknownChoice
}

// PurchaseInsurance buys a catalog policy, registering its premium as a
// recurring bill.
func (s *Sim) PurchaseInsurance(insuranceType string) error {
	for _, policy := range s.Player.Insurance {
		if strings.EqualFold(policy.Type, insuranceType) && policy.Active {
			return ErrUnknownChoice
		}
	}
	for _, opt := range InsuranceCatalog() {
		if strings.EqualFold(opt.Type, insuranceType) {
			s.Player.PurchaseInsurance(opt)
			return nil
		}
	}
	return ErrUnknownChoice
}

// FileInsuranceClaim claims a loss against an active policy; the payout
// lands in cash.
func (s *Sim) FileInsuranceClaim(insuranceType string, loss float64) (float64, error) {
	if loss <= 0 {
		return 0, ErrInvalidAmount
	}
	return s.Player.FileInsuranceClaim(insuranceType, loss)
}

// RepairAsset restores an asset's condition for a cost paid from cash.
func (s *Sim) RepairAsset(index int, cost float64) error {
	p := s.Player
	if index < 0 || index >= len(p.Assets) {
		return ErrUnknownChoice
	}
	if cost <= 0 {
		return ErrInvalidAmount
	}
	if cost > p.Cash {
		return ErrInsufficientFunds
	}
	p.Cash -= p.Assets[index].Repair(cost)
	return nil
}

// MeetMentor records the in-world mentor interaction.
func (s *Sim) MeetMentor() {
	s.MetMentor = true
}
