package game

import mathrand "math/rand"

// EventCategory splits the random event table into good and bad news.
type EventCategory string

const (
	EventPositive EventCategory = "positive"
	EventNegative EventCategory = "negative"
)

// EffectFunc realizes an event's cash delta against the current state.
// Positive deltas are gains, negative are costs.
type EffectFunc func(p *Player, rng *mathrand.Rand) float64

// Event is one entry in the random event table.
type Event struct {
	ID          string
	Name        string
	Description string
	Category    EventCategory
	Effect      EffectFunc
}

// RandomEvent is the published record of a resolved event: the descriptor,
// the realized delta, and a snapshot of the player after the effect was
// applied.
type RandomEvent struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Category    EventCategory `json:"category"`
	Delta       float64       `json:"delta"`
	Player      Player        `json:"player"`
}

// EventSink receives resolved random events after their effect has been
// applied. Publication happens exactly once per event.
type EventSink interface {
	Publish(ev RandomEvent)
}

// SinkFunc adapts a function to the EventSink interface.
type SinkFunc func(ev RandomEvent)

func (f SinkFunc) Publish(ev RandomEvent) { f(ev) }

// FanoutSink republishes to every registered sink in order.
type FanoutSink []EventSink

func (s FanoutSink) Publish(ev RandomEvent) {
	for _, sink := range s {
		sink.Publish(ev)
	}
}

func randBetween(rng *mathrand.Rand, lo, hi int) float64 {
	return float64(lo + rng.Intn(hi-lo+1))
}

func taxRefundEffect(_ *Player, rng *mathrand.Rand) float64 {
	return randBetween(rng, 100, 1000)
}

func birthdayGiftEffect(_ *Player, rng *mathrand.Rand) float64 {
	return randBetween(rng, 20, 200)
}

func foundMoneyEffect(_ *Player, rng *mathrand.Rand) float64 {
	return randBetween(rng, 5, 50)
}

func workBonusEffect(p *Player, rng *mathrand.Rand) float64 {
	if p.Salary == 0 {
		return 0
	}
	frac := 0.01 + rng.Float64()*0.09
	return float64(int(p.Salary * frac))
}

func carRepairEffect(p *Player, rng *mathrand.Rand) float64 {
	if !p.HasAsset(AssetCar) {
		return 0
	}
	return -randBetween(rng, 100, 2000)
}

func medicalBillEffect(_ *Player, rng *mathrand.Rand) float64 {
	return -randBetween(rng, 50, 5000)
}

func lostWalletEffect(p *Player, _ *mathrand.Rand) float64 {
	loss := p.Cash
	if loss > 50 {
		loss = 50
	}
	return -loss
}

func phoneRepairEffect(_ *Player, rng *mathrand.Rand) float64 {
	return -randBetween(rng, 50, 300)
}

// DefaultEvents builds the stock random event table.
func DefaultEvents() []Event {
	return []Event{
		{ID: "tax_refund", Name: "Tax Refund", Description: "You received a tax refund!", Category: EventPositive, Effect: taxRefundEffect},
		{ID: "birthday_gift", Name: "Birthday Gift", Description: "You received money as a birthday gift!", Category: EventPositive, Effect: birthdayGiftEffect},
		{ID: "found_money", Name: "Found Money", Description: "You found money on the ground!", Category: EventPositive, Effect: foundMoneyEffect},
		{ID: "work_bonus", Name: "Bonus", Description: "You received a bonus at work!", Category: EventPositive, Effect: workBonusEffect},
		{ID: "car_repair", Name: "Car Repair", Description: "Your car needs repairs.", Category: EventNegative, Effect: carRepairEffect},
		{ID: "medical_bill", Name: "Medical Bill", Description: "Unexpected medical expenses.", Category: EventNegative, Effect: medicalBillEffect},
		{ID: "lost_wallet", Name: "Lost Wallet", Description: "You lost your wallet!", Category: EventNegative, Effect: lostWalletEffect},
		{ID: "phone_repair", Name: "Phone Repair", Description: "Phone screen cracked.", Category: EventNegative, Effect: phoneRepairEffect},
	}
}
