package game

// AccountType distinguishes checking from interest-bearing savings.
type AccountType string

const (
	Checking AccountType = "Checking"
	Savings  AccountType = "Savings"
)

// Transaction is one entry in an account or card history.
type Transaction struct {
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
}

// BankAccount holds deposited money and, for savings, earns yearly interest.
type BankAccount struct {
	Type         AccountType   `json:"type"`
	Balance      float64       `json:"balance"`
	InterestRate float64       `json:"interest_rate"`
	History      []Transaction `json:"history,omitempty"`
}

func NewBankAccount(accountType AccountType) *BankAccount {
	rate := 0.0
	if accountType == Savings {
		rate = SavingsInterestRate
	}
	return &BankAccount{Type: accountType, InterestRate: rate}
}

func (a *BankAccount) Deposit(amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	a.Balance += amount
	a.History = append(a.History, Transaction{Type: "deposit", Amount: amount})
	return nil
}

func (a *BankAccount) Withdraw(amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > a.Balance {
		return ErrInsufficientBalance
	}
	a.Balance -= amount
	a.History = append(a.History, Transaction{Type: "withdrawal", Amount: amount})
	return nil
}

// ApplyInterest credits yearly interest on the current balance. Only
// savings accounts with a positive balance earn anything; the returned
// value is the interest credited.
func (a *BankAccount) ApplyInterest() float64 {
	if a.Type != Savings || a.Balance <= 0 {
		return 0
	}
	interest := a.Balance * a.InterestRate
	a.Balance += interest
	a.History = append(a.History, Transaction{Type: "interest", Amount: interest})
	return interest
}
