package game

import (
	"log/slog"
	"math"
	mathrand "math/rand"
	"time"
)

// Config carries the simulation tunables. Zero values are replaced by
// DefaultConfig at construction, so a partially filled Config is fine.
type Config struct {
	RetirementAge           int
	BaseLivingExpenses      float64
	HomeownerExpenses       float64
	CarExpenses             float64
	FamilyExpensesPerMember float64
	InflationRate           float64
	StartingCash            float64
	StartingCreditScore     int
	UtilityBills            []UtilityBill
	RandomEventChance       float64
}

// DefaultConfig returns the stock tunables.
func DefaultConfig() Config {
	return Config{
		RetirementAge:           65,
		BaseLivingExpenses:      1000,
		HomeownerExpenses:       500,
		CarExpenses:             200,
		FamilyExpensesPerMember: 500,
		InflationRate:           0.02,
		StartingCash:            100,
		StartingCreditScore:     650,
		UtilityBills: []UtilityBill{
			{Name: "Electricity", Amount: 60},
			{Name: "Water", Amount: 30},
			{Name: "Internet", Amount: 50},
		},
		RandomEventChance: 0.3,
	}
}

const maxNotifications = 5

// Sim is the monthly simulation clock and the single entry point for all
// state mutation. It is synchronous and single-threaded: the driving loop
// calls AdvanceMonth once per tick and every mutation is visible to the
// next step of the same tick.
type Sim struct {
	cfg    Config
	log    *slog.Logger
	rng    *mathrand.Rand
	sink   EventSink
	events []Event
	quests *QuestLog

	Player        *Player
	Month         int
	Year          int // years since game start
	GameOver      bool
	MetMentor     bool
	Notifications []string

	pending  *LifeEvent
	declined map[LifeEventKind]bool
}

// New creates a simulation for a fresh player. The logger defaults to
// slog.Default, the generator to a time-seeded one; pass a seeded rng for
// reproducible runs. The sink may be nil when nobody listens.
func New(playerName string, cfg Config, logger *slog.Logger, rng *mathrand.Rand, sink EventSink) *Sim {
	if logger == nil {
		logger = slog.Default()
	}
	if rng == nil {
		rng = mathrand.New(mathrand.NewSource(time.Now().UnixNano()))
	}
	cfg = withDefaults(cfg)
	utilities := make([]UtilityBill, len(cfg.UtilityBills))
	copy(utilities, cfg.UtilityBills)
	return &Sim{
		cfg:      cfg,
		log:      logger,
		rng:      rng,
		sink:     sink,
		events:   DefaultEvents(),
		quests:   NewQuestLog(DefaultQuests()),
		Player:   NewPlayer(playerName, cfg.StartingCash, cfg.StartingCreditScore, utilities),
		Month:    1,
		declined: make(map[LifeEventKind]bool),
	}
}

func withDefaults(cfg Config) Config {
	def := DefaultConfig()
	if cfg.RetirementAge == 0 {
		cfg.RetirementAge = def.RetirementAge
	}
	if cfg.BaseLivingExpenses == 0 {
		cfg.BaseLivingExpenses = def.BaseLivingExpenses
	}
	if cfg.HomeownerExpenses == 0 {
		cfg.HomeownerExpenses = def.HomeownerExpenses
	}
	if cfg.CarExpenses == 0 {
		cfg.CarExpenses = def.CarExpenses
	}
	if cfg.FamilyExpensesPerMember == 0 {
		cfg.FamilyExpensesPerMember = def.FamilyExpensesPerMember
	}
	if cfg.InflationRate == 0 {
		cfg.InflationRate = def.InflationRate
	}
	if cfg.StartingCash == 0 {
		cfg.StartingCash = def.StartingCash
	}
	if cfg.StartingCreditScore == 0 {
		cfg.StartingCreditScore = def.StartingCreditScore
	}
	if cfg.UtilityBills == nil {
		cfg.UtilityBills = def.UtilityBills
	}
	if cfg.RandomEventChance == 0 {
		cfg.RandomEventChance = def.RandomEventChance
	}
	return cfg
}

// Config returns the effective tunables.
func (s *Sim) Config() Config { return s.cfg }

// Quests exposes the quest log for presentation.
func (s *Sim) Quests() *QuestLog { return s.quests }

// NetWorth values the player right now.
func (s *Sim) NetWorth() float64 { return NetWorth(s.Player) }

// Chance rolls the injected generator against probability p. Drivers use
// it for the monthly random event roll so runs stay reproducible.
func (s *Sim) Chance(p float64) bool { return s.rng.Float64() < p }

// AdvanceMonth runs one simulated month: the calendar advances (with
// yearly interest and asset aging on rollover), investments compound,
// then the monthly payment waterfall settles. Game over is declared once
// the player reaches retirement age.
func (s *Sim) AdvanceMonth() error {
	if s.GameOver {
		return ErrGameOver
	}
	s.Month++
	if s.Month > 12 {
		s.Month = 1
		s.Year++
		s.Player.Age++
		if s.Player.BankAccount != nil {
			s.Player.BankAccount.ApplyInterest()
		}
		if s.Player.SavingsAccount != nil {
			s.Player.SavingsAccount.ApplyInterest()
		}
		for _, a := range s.Player.Assets {
			a.AgeOneYear(s.rng)
		}
	}
	for _, inv := range s.Player.Investments {
		inv.ApplyMonthlyReturn()
	}
	s.processMonthlyFinances()
	if s.Player.Age >= s.cfg.RetirementAge {
		s.GameOver = true
		s.log.Info("retirement reached", "age", s.Player.Age, "net_worth", s.NetWorth())
	}
	return nil
}

// processMonthlyFinances settles the month in fixed order: income, loans,
// credit card minimum, living expenses, recurring bills, utilities, then
// quest checks. Insufficiency is a business outcome, not an error: each
// missed obligation costs credit score and the next line item still runs.
func (s *Sim) processMonthlyFinances() {
	p := s.Player

	// Income, with unconditional 80% auto-deposit into the bank account.
	if p.Employed() {
		monthlyIncome := p.Salary / 12
		p.Cash += monthlyIncome
		if p.BankAccount != nil {
			auto := monthlyIncome * AutoDepositRate
			if err := p.BankAccount.Deposit(auto); err == nil {
				p.Cash -= auto
			}
		}
	}

	// Loans: cash, then bank, then credit. One miss costs 30 points.
	for _, loan := range p.Loans {
		if loan.PaidOff() {
			continue
		}
		due := loan.MonthlyPayment
		if s.fundCashBankCredit(due) {
			_ = loan.MakePayment(due)
		} else {
			p.CreditScore -= 30
			s.log.Warn("missed loan payment", "loan", loan.Type, "due", due)
		}
	}

	// Credit card minimum: cash then bank, all-or-nothing.
	if p.CreditCard != nil && p.CreditCard.Balance > 0 {
		minDue := MinPaymentDue(p.CreditCard.Balance)
		switch {
		case p.Cash >= minDue:
			p.Cash -= minDue
			_ = p.CreditCard.Pay(minDue)
		case p.BankAccount != nil && p.BankAccount.Balance >= minDue:
			_ = p.BankAccount.Withdraw(minDue)
			_ = p.CreditCard.Pay(minDue)
		default:
			p.CreditScore -= 50
			s.log.Warn("missed credit card payment", "due", minDue)
		}
	}

	// Living expenses, inflated against the absolute year counter.
	living := s.LivingExpenses()
	if !s.fundCashBankCredit(living) {
		p.CreditScore -= 20
		s.log.Warn("could not cover living expenses", "due", living)
	}

	// Recurring bills honor their preferred source before falling back to
	// cash. Unpaid bills are forgone, not carried as arrears.
	for _, bill := range p.RecurringBills {
		paid := false
		if bill.Source == "bank_or_credit" {
			if p.BankAccount != nil && p.BankAccount.Balance >= bill.Amount {
				_ = p.BankAccount.Withdraw(bill.Amount)
				paid = true
			} else if p.CreditCard != nil && p.CreditCard.CanCharge(bill.Amount) {
				_ = p.CreditCard.Charge(bill.Amount)
				paid = true
			}
		}
		if !paid && p.Cash >= bill.Amount {
			p.Cash -= bill.Amount
			paid = true
		}
		if !paid {
			p.CreditScore -= 10
			s.log.Warn("missed bill", "bill", bill.Name, "due", bill.Amount)
		}
	}

	// Utilities always try bank, then credit, then cash.
	for _, util := range p.UtilityBills {
		paid := false
		if p.BankAccount != nil && p.BankAccount.Balance >= util.Amount {
			_ = p.BankAccount.Withdraw(util.Amount)
			paid = true
		} else if p.CreditCard != nil && p.CreditCard.CanCharge(util.Amount) {
			_ = p.CreditCard.Charge(util.Amount)
			paid = true
		}
		if !paid && p.Cash >= util.Amount {
			p.Cash -= util.Amount
			paid = true
		}
		if !paid {
			p.CreditScore -= 5
			s.log.Warn("missed utility", "utility", util.Name, "due", util.Amount)
		}
	}

	for _, q := range s.quests.CheckAll(s) {
		s.pushNotification("Quest Completed: " + q.Title)
	}
}

// LivingExpenses computes this month's cost of living: the configured base
// plus homeowner, car, and per-family-member surcharges, compounded by
// inflation against the current year counter.
func (s *Sim) LivingExpenses() float64 {
	p := s.Player
	living := s.cfg.BaseLivingExpenses
	if p.HasAsset(AssetHouse) {
		living += s.cfg.HomeownerExpenses
	}
	if p.HasAsset(AssetCar) {
		living += s.cfg.CarExpenses
	}
	if n := len(p.Family); n > 0 {
		living += s.cfg.FamilyExpensesPerMember * float64(n)
	}
	return living * math.Pow(1+s.cfg.InflationRate, float64(s.Year))
}

// fundCashBankCredit is the three-tier payment waterfall: liquid cash
// first, then the bank account, then the credit card. Returns false when
// no source can fund the full amount; nothing partial is ever taken.
func (s *Sim) fundCashBankCredit(amount float64) bool {
	p := s.Player
	switch {
	case p.Cash >= amount:
		p.Cash -= amount
	case p.BankAccount != nil && p.BankAccount.Balance >= amount:
		_ = p.BankAccount.Withdraw(amount)
	case p.CreditCard != nil && p.CreditCard.CanCharge(amount):
		_ = p.CreditCard.Charge(amount)
	default:
		return false
	}
	return true
}

// fundCashBank is the down-payment waterfall: cash, then bank, no credit.
func (s *Sim) fundCashBank(amount float64) bool {
	p := s.Player
	switch {
	case p.Cash >= amount:
		p.Cash -= amount
	case p.BankAccount != nil && p.BankAccount.Balance >= amount:
		_ = p.BankAccount.Withdraw(amount)
	default:
		return false
	}
	return true
}

func (s *Sim) pushNotification(msg string) {
	s.Notifications = append(s.Notifications, msg)
	if len(s.Notifications) > maxNotifications {
		s.Notifications = s.Notifications[len(s.Notifications)-maxNotifications:]
	}
}

// DrainNotifications hands the queued notifications to the presentation
// layer and clears the queue.
func (s *Sim) DrainNotifications() []string {
	out := s.Notifications
	s.Notifications = nil
	return out
}

// TriggerRandomEvent resolves one random event: a uniform pick between
// the non-empty categories, a uniform pick within, then the realized
// delta. Gains land in cash; costs run the three-tier waterfall, and an
// unfundable cost is waived for 15 credit score points. The resolved
// event is published exactly once, after the effect is applied. Returns
// nil when the table is empty or the realized delta is zero.
func (s *Sim) TriggerRandomEvent() *RandomEvent {
	var positive, negative []Event
	for _, ev := range s.events {
		if ev.Category == EventPositive {
			positive = append(positive, ev)
		} else {
			negative = append(negative, ev)
		}
	}
	var pools [][]Event
	for _, pool := range [][]Event{positive, negative} {
		if len(pool) > 0 {
			pools = append(pools, pool)
		}
	}
	if len(pools) == 0 {
		return nil
	}
	pool := pools[s.rng.Intn(len(pools))]
	ev := pool[s.rng.Intn(len(pool))]
	delta := ev.Effect(s.Player, s.rng)

	if delta > 0 {
		s.Player.Cash += delta
	} else if delta < 0 {
		if !s.fundCashBankCredit(-delta) {
			s.Player.CreditScore -= 15
			s.log.Warn("random event cost waived", "event", ev.ID, "cost", -delta)
		}
	}

	rec := RandomEvent{
		ID:          ev.ID,
		Name:        ev.Name,
		Description: ev.Description,
		Category:    ev.Category,
		Delta:       delta,
		Player:      *s.Player,
	}
	if s.sink != nil {
		s.sink.Publish(rec)
	}
	if delta == 0 {
		return nil
	}
	return &rec
}

// SetEvents replaces the random event table.
func (s *Sim) SetEvents(events []Event) { s.events = events }
