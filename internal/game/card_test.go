package game

import "testing"

func TestCreditCardLimit(t *testing.T) {
	c := NewCard(Credit, 2000)
	if err := c.Charge(1900); err != nil {
		t.Fatalf("charge within limit: %v", err)
	}
	if err := c.Charge(200); err != ErrCreditLimitExceeded {
		t.Fatalf("charge past limit got %v", err)
	}
	if c.Balance != 1900 {
		t.Fatalf("balance got %.2f want 1900", c.Balance)
	}
}

func TestCreditCardPay(t *testing.T) {
	c := NewCard(Credit, 5000)
	_ = c.Charge(300)
	if err := c.Pay(500); err != ErrInsufficientBalance {
		t.Fatalf("overpay got %v", err)
	}
	if err := c.Pay(300); err != nil {
		t.Fatalf("pay: %v", err)
	}
	if c.Balance != 0 {
		t.Fatalf("balance got %.2f want 0", c.Balance)
	}
}

func TestDebitCardCarriesNoBalance(t *testing.T) {
	c := NewCard(Debit, 0)
	if err := c.Charge(100); err != nil {
		t.Fatalf("debit charge: %v", err)
	}
	if c.Balance != 0 {
		t.Fatalf("debit balance got %.2f", c.Balance)
	}
	if c.CanCharge(100) {
		t.Fatal("debit card reported credit capacity")
	}
}

func TestMinPaymentDue(t *testing.T) {
	tests := []struct {
		balance float64
		want    float64
	}{
		{balance: 100, want: 25},
		{balance: 500, want: 25},
		{balance: 1000, want: 50},
		{balance: 4000, want: 200},
	}
	for _, tc := range tests {
		if got := MinPaymentDue(tc.balance); got != tc.want {
			t.Fatalf("balance=%.0f got=%.2f want=%.2f", tc.balance, got, tc.want)
		}
	}
}

func TestCreditLimitForScore(t *testing.T) {
	if got := CreditLimitForScore(650); got != CreditLimitSubprime {
		t.Fatalf("score 650 got %.0f", got)
	}
	if got := CreditLimitForScore(680); got != CreditLimitStandard {
		t.Fatalf("score 680 got %.0f", got)
	}
}
