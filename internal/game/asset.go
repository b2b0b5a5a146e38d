package game

import mathrand "math/rand"

// Condition degrades with age and never improves on its own.
type Condition string

const (
	ConditionGood Condition = "Good"
	ConditionFair Condition = "Fair"
	ConditionPoor Condition = "Poor"
)

const (
	AssetCar   = "Car"
	AssetHouse = "House"

	carDepreciationRate  = 0.15
	houseSwingLow        = -0.05
	houseSwingHigh       = 0.10
	conditionFairAtYears = 10
	conditionPoorAtYears = 15
)

// Asset is something the player owns outright: a car, a house.
type Asset struct {
	Type          string    `json:"type"`
	Name          string    `json:"name"`
	PurchaseValue float64   `json:"purchase_value"`
	CurrentValue  float64   `json:"current_value"`
	Condition     Condition `json:"condition"`
	Age           int       `json:"age"`
}

func NewAsset(assetType, name string, value float64) *Asset {
	return &Asset{
		Type:          assetType,
		Name:          name,
		PurchaseValue: value,
		CurrentValue:  value,
		Condition:     ConditionGood,
	}
}

// AgeOneYear advances the asset a year: condition degrades past the age
// thresholds (one step, never back), cars shed a flat 15%, and houses move
// by a uniform draw in [-5%, +10%] from the injected generator.
func (a *Asset) AgeOneYear(rng *mathrand.Rand) {
	a.Age++
	if a.Age > conditionPoorAtYears && a.Condition == ConditionFair {
		a.Condition = ConditionPoor
	} else if a.Age > conditionFairAtYears && a.Condition == ConditionGood {
		a.Condition = ConditionFair
	}
	switch a.Type {
	case AssetCar:
		a.CurrentValue *= 1 - carDepreciationRate
	case AssetHouse:
		swing := houseSwingLow + rng.Float64()*(houseSwingHigh-houseSwingLow)
		a.CurrentValue *= 1 + swing
	}
}

// Repair restores the asset to good condition for the quoted cost, which
// the caller is responsible for charging.
func (a *Asset) Repair(cost float64) float64 {
	a.Condition = ConditionGood
	return cost
}
