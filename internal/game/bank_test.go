package game

import (
	"math"
	"testing"
)

func TestBankDepositWithdraw(t *testing.T) {
	a := NewBankAccount(Checking)
	if err := a.Deposit(100); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if err := a.Withdraw(40); err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if a.Balance != 60 {
		t.Fatalf("balance got %.2f want 60", a.Balance)
	}
	if len(a.History) != 2 {
		t.Fatalf("history entries got %d want 2", len(a.History))
	}
}

func TestBankRejectsBadAmounts(t *testing.T) {
	a := NewBankAccount(Checking)
	if err := a.Deposit(0); err != ErrInvalidAmount {
		t.Fatalf("deposit 0 got %v", err)
	}
	if err := a.Deposit(-5); err != ErrInvalidAmount {
		t.Fatalf("deposit -5 got %v", err)
	}
	if err := a.Withdraw(10); err != ErrInsufficientBalance {
		t.Fatalf("overdraw got %v", err)
	}
}

func TestSavingsInterest(t *testing.T) {
	a := NewBankAccount(Savings)
	if err := a.Deposit(1000); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	interest := a.ApplyInterest()
	if math.Abs(interest-10) > 1e-9 {
		t.Fatalf("interest got %.4f want 10", interest)
	}
	if math.Abs(a.Balance-1010) > 1e-9 {
		t.Fatalf("balance got %.4f want 1010", a.Balance)
	}
}

func TestCheckingEarnsNoInterest(t *testing.T) {
	a := NewBankAccount(Checking)
	_ = a.Deposit(1000)
	if interest := a.ApplyInterest(); interest != 0 {
		t.Fatalf("checking earned %.4f", interest)
	}
}
