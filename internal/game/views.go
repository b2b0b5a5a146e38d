package game

// BaseYear anchors the year counter to a calendar year for display.
const BaseYear = 2023

type AccountView struct {
	Type    AccountType `json:"type"`
	Balance float64     `json:"balance"`
}

type CardView struct {
	Type    CardType `json:"type"`
	Balance float64  `json:"balance"`
	Limit   float64  `json:"limit"`
}

type LoanView struct {
	Type           string  `json:"type"`
	CurrentBalance float64 `json:"current_balance"`
	MonthlyPayment float64 `json:"monthly_payment"`
	InterestRate   float64 `json:"interest_rate"`
}

type AssetView struct {
	Type         string    `json:"type"`
	Name         string    `json:"name"`
	CurrentValue float64   `json:"current_value"`
	Condition    Condition `json:"condition"`
	Age          int       `json:"age"`
}

type InvestmentView struct {
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
}

type InsuranceView struct {
	Type           string  `json:"type"`
	Premium        float64 `json:"premium"`
	CoverageAmount float64 `json:"coverage_amount"`
	Deductible     float64 `json:"deductible"`
	Active         bool    `json:"active"`
}

type QuestView struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	RewardCash  float64 `json:"reward_cash"`
	Completed   bool    `json:"completed"`
}

// StatusView is the full valuation and state summary the presentation
// layer renders between ticks.
type StatusView struct {
	PlayerName    string           `json:"player_name"`
	Age           int              `json:"age"`
	Month         int              `json:"month"`
	Year          int              `json:"year"`
	Education     string           `json:"education"`
	Job           string           `json:"job,omitempty"`
	Salary        float64          `json:"salary"`
	Cash          float64          `json:"cash"`
	CreditScore   int              `json:"credit_score"`
	BankAccount   *AccountView     `json:"bank_account,omitempty"`
	Savings       *AccountView     `json:"savings_account,omitempty"`
	CreditCard    *CardView        `json:"credit_card,omitempty"`
	HasDebitCard  bool             `json:"has_debit_card"`
	Loans         []LoanView       `json:"loans,omitempty"`
	Assets        []AssetView      `json:"assets,omitempty"`
	Investments   []InvestmentView `json:"investments,omitempty"`
	Insurance     []InsuranceView  `json:"insurance,omitempty"`
	FamilySize    int              `json:"family_size"`
	NetWorth      float64          `json:"net_worth"`
	GameOver      bool             `json:"game_over"`
	Notifications []string         `json:"notifications,omitempty"`
	PendingEvent  *LifeEvent       `json:"pending_event,omitempty"`
}

// Status summarizes the simulation for display.
func (s *Sim) Status() StatusView {
	p := s.Player
	out := StatusView{
		PlayerName:    p.Name,
		Age:           p.Age,
		Month:         s.Month,
		Year:          BaseYear + s.Year,
		Education:     p.Education,
		Job:           p.Job,
		Salary:        p.Salary,
		Cash:          p.Cash,
		CreditScore:   p.CreditScore,
		HasDebitCard:  p.DebitCard != nil,
		FamilySize:    len(p.Family),
		NetWorth:      s.NetWorth(),
		GameOver:      s.GameOver,
		Notifications: s.Notifications,
		PendingEvent:  s.pending,
	}
	if p.BankAccount != nil {
		out.BankAccount = &AccountView{Type: p.BankAccount.Type, Balance: p.BankAccount.Balance}
	}
	if p.SavingsAccount != nil {
		out.Savings = &AccountView{Type: p.SavingsAccount.Type, Balance: p.SavingsAccount.Balance}
	}
	if p.CreditCard != nil {
		out.CreditCard = &CardView{Type: p.CreditCard.Type, Balance: p.CreditCard.Balance, Limit: p.CreditCard.Limit}
	}
	for _, l := range p.Loans {
		out.Loans = append(out.Loans, LoanView{
			Type:           l.Type,
			CurrentBalance: l.CurrentBalance,
			MonthlyPayment: l.MonthlyPayment,
			InterestRate:   l.InterestRate,
		})
	}
	for _, a := range p.Assets {
		out.Assets = append(out.Assets, AssetView{
			Type:         a.Type,
			Name:         a.Name,
			CurrentValue: a.CurrentValue,
			Condition:    a.Condition,
			Age:          a.Age,
		})
	}
	for _, inv := range p.Investments {
		out.Investments = append(out.Investments, InvestmentView{Type: inv.Type, Amount: inv.Amount})
	}
	for _, ins := range p.Insurance {
		out.Insurance = append(out.Insurance, InsuranceView{
			Type:           ins.Type,
			Premium:        ins.Premium,
			CoverageAmount: ins.CoverageAmount,
			Deductible:     ins.Deductible,
			Active:         ins.Active,
		})
	}
	return out
}

// QuestViews summarizes the quest log for display, hiding quests flagged
// hidden until they complete.
func (s *Sim) QuestViews() []QuestView {
	var out []QuestView
	for _, q := range s.quests.quests {
		if q.HiddenUntilComplete && !q.Completed {
			continue
		}
		out = append(out, QuestView{
			ID:          q.ID,
			Title:       q.Title,
			Description: q.Description,
			RewardCash:  q.RewardCash,
			Completed:   q.Completed,
		})
	}
	return out
}
