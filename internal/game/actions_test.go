package game

import "testing"

func TestOpenBankAccountFundsFromCash(t *testing.T) {
	s := newTestSim(t, 1)
	s.Player.Cash = 100

	if err := s.OpenBankAccount(Checking, 50); err != nil {
		t.Fatalf("open: %v", err)
	}
	if s.Player.Cash != 50 {
		t.Fatalf("cash got %.2f want 50", s.Player.Cash)
	}
	if s.Player.BankAccount.Balance != 50 {
		t.Fatalf("balance got %.2f want 50", s.Player.BankAccount.Balance)
	}
	if err := s.OpenBankAccount(Checking, 10); err != ErrHasBankAccount {
		t.Fatalf("second open got %v", err)
	}
}

func TestOpenBankAccountValidation(t *testing.T) {
	s := newTestSim(t, 1)
	s.Player.Cash = 100
	if err := s.OpenBankAccount(Checking, 0); err != ErrInvalidAmount {
		t.Fatalf("zero deposit got %v", err)
	}
	if err := s.OpenBankAccount(Checking, 200); err != ErrInsufficientFunds {
		t.Fatalf("deposit over cash got %v", err)
	}
	if s.Player.BankAccount != nil {
		t.Fatal("account created despite failure")
	}
}

func TestOpenSavingsRequiresSeparateAccount(t *testing.T) {
	s := newTestSim(t, 1)
	s.Player.Cash = 500
	if err := s.OpenSavingsAccount(200); err != nil {
		t.Fatalf("open savings: %v", err)
	}
	if s.Player.SavingsAccount.Type != Savings {
		t.Fatalf("type got %s", s.Player.SavingsAccount.Type)
	}
	if err := s.OpenSavingsAccount(100); err != ErrHasBankAccount {
		t.Fatalf("second open got %v", err)
	}
}

func TestDepositWithdrawMoveCash(t *testing.T) {
	s := newTestSim(t, 1)
	if err := s.Deposit(10); err != ErrNoBankAccount {
		t.Fatalf("deposit without account got %v", err)
	}
	s.Player.Cash = 300
	_ = s.OpenBankAccount(Checking, 100)

	if err := s.Deposit(100); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if err := s.Withdraw(150); err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if s.Player.Cash != 250 {
		t.Fatalf("cash got %.2f want 250", s.Player.Cash)
	}
	if s.Player.BankAccount.Balance != 50 {
		t.Fatalf("balance got %.2f want 50", s.Player.BankAccount.Balance)
	}
	if err := s.Withdraw(1000); err != ErrInsufficientBalance {
		t.Fatalf("overdraw got %v", err)
	}
}

func TestDebitCardRequiresAccount(t *testing.T) {
	s := newTestSim(t, 1)
	if err := s.IssueDebitCard(); err != ErrNoBankAccount {
		t.Fatalf("got %v", err)
	}
	s.Player.Cash = 100
	_ = s.OpenBankAccount(Checking, 50)
	if err := s.IssueDebitCard(); err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := s.IssueDebitCard(); err != ErrHasDebitCard {
		t.Fatalf("second issue got %v", err)
	}
}

func TestCreditCardAgeGateAndTieredLimit(t *testing.T) {
	s := newTestSim(t, 1)
	if err := s.ApplyForCreditCard(); err != ErrTooYoungForCredit {
		t.Fatalf("minor application got %v", err)
	}

	s.Player.Age = 18
	s.Player.CreditScore = 650
	if err := s.ApplyForCreditCard(); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if s.Player.CreditCard.Limit != CreditLimitSubprime {
		t.Fatalf("limit got %.0f want %.0f", s.Player.CreditCard.Limit, CreditLimitSubprime)
	}

	s.Player.CreditCard = nil
	s.Player.CreditScore = 700
	if err := s.ApplyForCreditCard(); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if s.Player.CreditCard.Limit != CreditLimitStandard {
		t.Fatalf("limit got %.0f want %.0f", s.Player.CreditCard.Limit, CreditLimitStandard)
	}
}

func TestPayCreditCardEnforcesMinimum(t *testing.T) {
	s := newTestSim(t, 1)
	s.Player.Age = 18
	s.Player.Cash = 2000
	_ = s.ApplyForCreditCard()
	_ = s.Player.CreditCard.Charge(1000)

	if err := s.PayCreditCard(30); err != ErrInvalidPayment {
		t.Fatalf("below minimum got %v", err)
	}
	if err := s.PayCreditCard(1500); err != ErrInvalidPayment {
		t.Fatalf("above balance got %v", err)
	}
	if err := s.PayCreditCard(500); err != nil {
		t.Fatalf("pay: %v", err)
	}
	if s.Player.Cash != 1500 {
		t.Fatalf("cash got %.2f want 1500", s.Player.Cash)
	}
	if s.Player.CreditCard.Balance != 500 {
		t.Fatalf("balance got %.2f want 500", s.Player.CreditCard.Balance)
	}
}

func TestMakeExtraLoanPayment(t *testing.T) {
	s := newTestSim(t, 1)
	s.Player.Cash = 1000
	s.Player.Loans = append(s.Player.Loans, NewLoan("Auto", 5000, 0.05, 5))

	if err := s.MakeExtraLoanPayment(2, 100); err != ErrLoanNotFound {
		t.Fatalf("bad index got %v", err)
	}
	if err := s.MakeExtraLoanPayment(0, 5000); err != ErrInsufficientFunds {
		t.Fatalf("over cash got %v", err)
	}
	if err := s.MakeExtraLoanPayment(0, 500); err != nil {
		t.Fatalf("pay: %v", err)
	}
	if s.Player.Cash != 500 {
		t.Fatalf("cash got %.2f want 500", s.Player.Cash)
	}
}

func TestInvestUsesCatalog(t *testing.T) {
	s := newTestSim(t, 1)
	s.Player.Cash = 1000
	if err := s.Invest("crypto", 100); err != ErrUnknownChoice {
		t.Fatalf("unknown type got %v", err)
	}
	if err := s.Invest("stock", 400); err != nil {
		t.Fatalf("invest: %v", err)
	}
	if s.Player.Cash != 600 {
		t.Fatalf("cash got %.2f want 600", s.Player.Cash)
	}
	inv := s.Player.Investments[0]
	if inv.Type != "Stock" || inv.ExpectedAnnualReturn != 0.07 {
		t.Fatalf("investment %+v", inv)
	}
}

func TestPurchaseInsuranceAddsRecurringPremium(t *testing.T) {
	s := newTestSim(t, 1)
	if err := s.PurchaseInsurance("car"); err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if err := s.PurchaseInsurance("car"); err != ErrUnknownChoice {
		t.Fatalf("duplicate purchase got %v", err)
	}
	found := false
	for _, bill := range s.Player.RecurringBills {
		if bill.Amount == 50 && bill.Source == "bank_or_credit" {
			found = true
		}
	}
	if !found {
		t.Fatalf("premium bill missing: %+v", s.Player.RecurringBills)
	}
}

func TestFileInsuranceClaimPaysCash(t *testing.T) {
	s := newTestSim(t, 1)
	_ = s.PurchaseInsurance("car")
	cash := s.Player.Cash

	payout, err := s.FileInsuranceClaim("car", 2000)
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if payout != 1500 {
		t.Fatalf("payout got %.2f want 1500", payout)
	}
	if s.Player.Cash != cash+1500 {
		t.Fatalf("cash got %.2f", s.Player.Cash)
	}
	if _, err := s.FileInsuranceClaim("home", 2000); err != ErrNoSuchInsurance {
		t.Fatalf("missing policy got %v", err)
	}
}

func TestRepairAssetChargesCash(t *testing.T) {
	s := newTestSim(t, 1)
	s.Player.Cash = 1000
	car := NewAsset(AssetCar, "Car", 8000)
	car.Condition = ConditionPoor
	s.Player.Assets = append(s.Player.Assets, car)

	if err := s.RepairAsset(0, 300); err != nil {
		t.Fatalf("repair: %v", err)
	}
	if s.Player.Cash != 700 {
		t.Fatalf("cash got %.2f want 700", s.Player.Cash)
	}
	if car.Condition != ConditionGood {
		t.Fatalf("condition got %s", car.Condition)
	}
}

func TestMeetMentorCompletesQuest(t *testing.T) {
	s := newTestSim(t, 1)
	s.MeetMentor()
	if !s.MetMentor {
		t.Fatal("mentor flag not set")
	}
	completed := s.Quests().CheckAll(s)
	found := false
	for _, q := range completed {
		if q.ID == "meet_mentor" {
			found = true
		}
	}
	if !found {
		t.Fatal("mentor quest did not complete")
	}
}
