package game

import "fmt"

// LifeEventKind names an age-gated one-shot decision point.
type LifeEventKind string

const (
	LifeGraduation    LifeEventKind = "graduation"
	LifeJobOffer      LifeEventKind = "job_offer"
	LifeCarPurchase   LifeEventKind = "car_purchase"
	LifeHousePurchase LifeEventKind = "house_purchase"
	LifeFamily        LifeEventKind = "family"
)

// GraduationChoice selects the path after high school.
type GraduationChoice string

const (
	ChooseCollege     GraduationChoice = "college"
	ChooseTradeSchool GraduationChoice = "trade_school"
	ChooseWork        GraduationChoice = "work"
)

// PaymentMethod selects how a purchase is funded.
type PaymentMethod string

const (
	PayCash    PaymentMethod = "cash"
	PayBank    PaymentMethod = "bank"
	PayFinance PaymentMethod = "loan"
)

// PurchaseOption is one car or house on offer.
type PurchaseOption struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// LifeEvent is a pending decision surfaced to the presentation layer.
// Exactly one of JobOffers or Options is populated depending on the kind.
type LifeEvent struct {
	Kind        LifeEventKind    `json:"kind"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	JobOffers   []JobOffer       `json:"job_offers,omitempty"`
	Options     []PurchaseOption `json:"options,omitempty"`
}

const (
	collegeAnnualTuition = 20000
	collegeLoanAmount    = 80000
	tradeSchoolTuition   = 10000
	studentLoanRate      = 0.05
	houseDownPaymentRate = 0.2
)

// CarOptions lists the cars on offer at the purchase opportunity.
func CarOptions() []PurchaseOption {
	return []PurchaseOption{
		{Name: "Used Economy Car", Value: 5000},
		{Name: "New Economy Car", Value: 18000},
		{Name: "Used Luxury Car", Value: 15000},
		{Name: "New Luxury Car", Value: 35000},
	}
}

// HouseOptions lists the houses on offer at the purchase opportunity.
func HouseOptions() []PurchaseOption {
	return []PurchaseOption{
		{Name: "Small Starter Home", Value: 150000},
		{Name: "Mid-size Family Home", Value: 250000},
		{Name: "Large Luxury Home", Value: 500000},
		{Name: "Urban Condo", Value: 200000},
	}
}

// PendingLifeEvent returns the unresolved decision, if any.
func (s *Sim) PendingLifeEvent() *LifeEvent { return s.pending }

// CheckLifeStage evaluates the age/state-gated triggers once per month,
// after the tick. The first matching guard stashes a pending decision for
// the presentation layer; an already pending decision is returned as-is
// so re-checking never rolls twice.
func (s *Sim) CheckLifeStage() *LifeEvent {
	if s.pending != nil {
		return s.pending
	}
	p := s.Player
	switch {
	case p.Age == 18 && p.Education == EducationHighSchool:
		s.pending = &LifeEvent{
			Kind:        LifeGraduation,
			Title:       "High School Graduation",
			Description: "You've graduated from high school. Time to decide what comes next.",
		}
	case p.Age == 22 && p.Education == EducationCollegeInProgress:
		// Graduation itself is not a decision: apply it and surface the
		// job offers that come with the degree.
		p.Education = EducationCollegeGrad
		p.CreditScore += 20
		s.pending = &LifeEvent{
			Kind:        LifeJobOffer,
			Title:       "College Graduation",
			Description: "You've graduated from college. Better jobs are now open to you.",
			JobOffers:   JobOffersFor(p.Education),
		}
	case p.Age == 22 && !p.Employed() && p.Education != EducationCollegeInProgress:
		offers := JobOffersFor(p.Education)
		if len(offers) == 0 {
			return nil
		}
		s.pending = &LifeEvent{
			Kind:        LifeJobOffer,
			Title:       "Job Opportunity",
			Description: "The following positions are available to you.",
			JobOffers:   offers,
		}
	case p.Age == 20 && !p.HasAsset(AssetCar) && !s.declined[LifeCarPurchase]:
		s.pending = &LifeEvent{
			Kind:        LifeCarPurchase,
			Title:       "Car Purchase Opportunity",
			Description: "Having your own car could be beneficial.",
			Options:     CarOptions(),
		}
	case p.Age == 30 && !p.HasAsset(AssetHouse) && p.Employed() && !s.declined[LifeHousePurchase]:
		s.pending = &LifeEvent{
			Kind:        LifeHousePurchase,
			Title:       "House Purchase Opportunity",
			Description: "Buying a house could be a good investment.",
			Options:     HouseOptions(),
		}
	case p.Age >= 28 && len(p.Family) == 0 && p.Employed() && !s.declined[LifeFamily] && s.Chance(0.1):
		s.pending = &LifeEvent{
			Kind:        LifeFamily,
			Title:       "Family Planning",
			Description: "Starting a family will raise your monthly expenses.",
		}
	}
	return s.pending
}

func (s *Sim) requirePending(kind LifeEventKind) error {
	if s.pending == nil {
		return ErrNoPendingEvent
	}
	if s.pending.Kind != kind {
		return ErrWrongPendingEvent
	}
	return nil
}

// ResolveGraduation settles the high school graduation decision. Tuition
// is paid from cash, then the bank account; failing both, a student loan
// originates. Choosing work chains straight into a job offer.
func (s *Sim) ResolveGraduation(choice GraduationChoice) error {
	if err := s.requirePending(LifeGraduation); err != nil {
		return err
	}
	p := s.Player
	switch choice {
	case ChooseCollege:
		if !s.fundCashBank(collegeAnnualTuition) {
			loan := NewLoan("Student", collegeLoanAmount, studentLoanRate, 20)
			p.Loans = append(p.Loans, loan)
		}
		p.Education = EducationCollegeInProgress
		s.pending = nil
	case ChooseTradeSchool:
		if !s.fundCashBank(tradeSchoolTuition) {
			loan := NewLoan("Student", tradeSchoolTuition, studentLoanRate, 10)
			p.Loans = append(p.Loans, loan)
		}
		p.Education = EducationTradeSchool
		s.pending = nil
	case ChooseWork:
		p.Education = EducationHighSchoolGrad
		s.pending = &LifeEvent{
			Kind:        LifeJobOffer,
			Title:       "Job Opportunity",
			Description: "The following positions are available to you.",
			JobOffers:   JobOffersFor(p.Education),
		}
	default:
		return ErrUnknownChoice
	}
	return nil
}

// ResolveJobOffer accepts one of the pending offers.
func (s *Sim) ResolveJobOffer(index int) error {
	if err := s.requirePending(LifeJobOffer); err != nil {
		return err
	}
	if index < 0 || index >= len(s.pending.JobOffers) {
		return ErrUnknownChoice
	}
	offer := s.pending.JobOffers[index]
	s.Player.Job = offer.Title
	s.Player.Salary = offer.Salary
	s.pending = nil
	return nil
}

// ResolveCarPurchase buys the selected car with the selected funding. An
// auto loan runs five years with the rate tiered by credit score.
func (s *Sim) ResolveCarPurchase(optionIndex int, method PaymentMethod) error {
	if err := s.requirePending(LifeCarPurchase); err != nil {
		return err
	}
	opts := s.pending.Options
	if optionIndex < 0 || optionIndex >= len(opts) {
		return ErrUnknownChoice
	}
	p := s.Player
	car := opts[optionIndex]
	switch method {
	case PayCash:
		if p.Cash < car.Value {
			return ErrInsufficientFunds
		}
		p.Cash -= car.Value
	case PayBank:
		if p.BankAccount == nil {
			return ErrNoBankAccount
		}
		if err := p.BankAccount.Withdraw(car.Value); err != nil {
			return err
		}
	case PayFinance:
		loan := NewLoan("Auto", car.Value, AutoLoanRate(p.CreditScore), 5)
		p.Loans = append(p.Loans, loan)
	default:
		return ErrUnknownChoice
	}
	p.Assets = append(p.Assets, NewAsset(AssetCar, car.Name, car.Value))
	s.pending = nil
	return nil
}

// DeclineCarPurchase closes the car opportunity for good.
func (s *Sim) DeclineCarPurchase() error {
	if err := s.requirePending(LifeCarPurchase); err != nil {
		return err
	}
	s.declined[LifeCarPurchase] = true
	s.pending = nil
	return nil
}

// ResolveHousePurchase buys the selected house: a 20% down payment from
// cash or the bank account, and a 30-year mortgage for the remainder with
// the rate tiered by credit score.
func (s *Sim) ResolveHousePurchase(optionIndex int, method PaymentMethod) error {
	if err := s.requirePending(LifeHousePurchase); err != nil {
		return err
	}
	opts := s.pending.Options
	if optionIndex < 0 || optionIndex >= len(opts) {
		return ErrUnknownChoice
	}
	p := s.Player
	house := opts[optionIndex]
	down := house.Value * houseDownPaymentRate
	switch method {
	case PayCash:
		if p.Cash < down {
			return ErrDownPaymentShort
		}
		p.Cash -= down
	case PayBank:
		if p.BankAccount == nil || p.BankAccount.Balance < down {
			return ErrDownPaymentShort
		}
		_ = p.BankAccount.Withdraw(down)
	default:
		return ErrUnknownChoice
	}
	loan := NewLoan("Mortgage", house.Value-down, MortgageRate(p.CreditScore), 30)
	p.Loans = append(p.Loans, loan)
	p.Assets = append(p.Assets, NewAsset(AssetHouse, house.Name, house.Value))
	s.pending = nil
	return nil
}

// DeclineHousePurchase closes the house opportunity for good.
func (s *Sim) DeclineHousePurchase() error {
	if err := s.requirePending(LifeHousePurchase); err != nil {
		return err
	}
	s.declined[LifeHousePurchase] = true
	s.pending = nil
	return nil
}

// ResolveFamily settles the family decision. A spouse close in age joins;
// 70% of the time they bring an income of 0.5-1.5x the player's salary.
// Accepting children adds one to three newborns.
func (s *Sim) ResolveFamily(accept, wantChildren bool) error {
	if err := s.requirePending(LifeFamily); err != nil {
		return err
	}
	s.pending = nil
	if !accept {
		s.declined[LifeFamily] = true
		return nil
	}
	p := s.Player
	spouseAge := p.Age - (s.rng.Intn(7) - 3)
	p.Family = append(p.Family, FamilyMember{Relation: "Spouse", Age: spouseAge})
	if s.rng.Float64() < 0.7 {
		spouseIncome := float64(int(p.Salary * (0.5 + s.rng.Float64())))
		p.Salary += spouseIncome
	}
	if wantChildren {
		n := 1 + s.rng.Intn(3)
		for i := 0; i < n; i++ {
			p.Family = append(p.Family, FamilyMember{
				Relation: "Child",
				Name:     fmt.Sprintf("Child %d", i+1),
				Age:      0,
			})
		}
	}
	return nil
}
