package game

// CardType distinguishes debit from revolving credit.
type CardType string

const (
	Debit  CardType = "Debit"
	Credit CardType = "Credit"
)

// Card is a payment card. Debit cards never track a balance here; they
// draw on the bank account directly. Credit cards revolve up to Limit.
type Card struct {
	Type    CardType      `json:"type"`
	Limit   float64       `json:"limit"`
	Balance float64       `json:"balance"`
	History []Transaction `json:"history,omitempty"`
}

func NewCard(cardType CardType, limit float64) *Card {
	return &Card{Type: cardType, Limit: limit}
}

// Charge puts an amount on the card. For credit cards the charge fails if
// it would push the balance past the limit. Debit charges are accepted
// as-is; the caller moves the money through the bank account.
func (c *Card) Charge(amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if c.Type != Credit {
		return nil
	}
	if c.Balance+amount > c.Limit {
		return ErrCreditLimitExceeded
	}
	c.Balance += amount
	c.History = append(c.History, Transaction{Type: "charge", Amount: amount})
	return nil
}

// CanCharge reports whether a credit charge of amount would be accepted.
func (c *Card) CanCharge(amount float64) bool {
	return c.Type == Credit && amount > 0 && c.Balance+amount <= c.Limit
}

// Pay reduces the outstanding credit balance.
func (c *Card) Pay(amount float64) error {
	if c.Type != Credit {
		return ErrNoCreditCard
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > c.Balance {
		return ErrInsufficientBalance
	}
	c.Balance -= amount
	c.History = append(c.History, Transaction{Type: "payment", Amount: amount})
	return nil
}
