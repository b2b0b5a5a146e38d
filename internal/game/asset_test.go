package game

import (
	"math"
	mathrand "math/rand"
	"testing"
)

func TestCarDepreciatesFlat(t *testing.T) {
	rng := mathrand.New(mathrand.NewSource(1))
	car := NewAsset(AssetCar, "Used Economy Car", 10000)
	car.AgeOneYear(rng)
	if math.Abs(car.CurrentValue-8500) > 1e-9 {
		t.Fatalf("value got %.2f want 8500", car.CurrentValue)
	}
}

func TestHouseValueStaysInSwingBand(t *testing.T) {
	rng := mathrand.New(mathrand.NewSource(7))
	house := NewAsset(AssetHouse, "Small Starter Home", 150000)
	prev := house.CurrentValue
	for i := 0; i < 50; i++ {
		house.AgeOneYear(rng)
		ratio := house.CurrentValue / prev
		if ratio < 0.95-1e-9 || ratio > 1.10+1e-9 {
			t.Fatalf("year %d ratio %.4f outside [0.95, 1.10]", i, ratio)
		}
		prev = house.CurrentValue
	}
}

func TestConditionDegradesOneStepPerThreshold(t *testing.T) {
	rng := mathrand.New(mathrand.NewSource(3))
	a := NewAsset(AssetCar, "Car", 20000)
	for i := 0; i < 10; i++ {
		a.AgeOneYear(rng)
	}
	if a.Condition != ConditionGood {
		t.Fatalf("at 10 years condition %s", a.Condition)
	}
	a.AgeOneYear(rng)
	if a.Condition != ConditionFair {
		t.Fatalf("at 11 years condition %s", a.Condition)
	}
	for i := 0; i < 5; i++ {
		a.AgeOneYear(rng)
	}
	if a.Condition != ConditionPoor {
		t.Fatalf("at 16 years condition %s", a.Condition)
	}
}

func TestRepairRestoresCondition(t *testing.T) {
	a := NewAsset(AssetCar, "Car", 20000)
	a.Condition = ConditionPoor
	a.Repair(500)
	if a.Condition != ConditionGood {
		t.Fatalf("condition got %s", a.Condition)
	}
}
