package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadGameConfigDefaults(t *testing.T) {
	cfg, err := LoadGameConfig("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RetirementAge != 65 || cfg.BaseLivingExpenses != 1000 {
		t.Fatalf("defaults %+v", cfg)
	}
	if len(cfg.UtilityBills) != 3 {
		t.Fatalf("utility bills %d", len(cfg.UtilityBills))
	}
}

func TestLoadGameConfigFileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.toml")
	content := `
[game]
retirement_age = 60
base_living_expenses = 1500.0
random_event_chance = 0.5

[[game.utility_bills]]
name = "Electricity"
amount = 80.0
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RetirementAge != 60 || cfg.BaseLivingExpenses != 1500 || cfg.RandomEventChance != 0.5 {
		t.Fatalf("overrides lost: %+v", cfg)
	}
	// Unset keys keep their defaults.
	if cfg.InflationRate != 0.02 {
		t.Fatalf("inflation got %.4f", cfg.InflationRate)
	}
	if len(cfg.UtilityBills) != 1 || cfg.UtilityBills[0].Amount != 80 {
		t.Fatalf("utility bills %+v", cfg.UtilityBills)
	}
}

func TestLoadGameConfigEnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.toml")
	if err := os.WriteFile(path, []byte("[game]\nretirement_age = 60\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("SMARTZ_RETIREMENT_AGE", "55")

	cfg, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RetirementAge != 55 {
		t.Fatalf("got %d want 55", cfg.RetirementAge)
	}
}

func TestLoadGameConfigRejectsBadValues(t *testing.T) {
	t.Setenv("SMARTZ_RETIREMENT_AGE", "10")
	if _, err := LoadGameConfig(""); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("got %v", err)
	}
}

func TestLoadGameConfigRejectsBadChance(t *testing.T) {
	t.Setenv("SMARTZ_RANDOM_EVENT_CHANCE", "1.5")
	if _, err := LoadGameConfig(""); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("got %v", err)
	}
}

func TestLoadGameConfigMissingFile(t *testing.T) {
	if _, err := LoadGameConfig(filepath.Join(t.TempDir(), "nope.toml")); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("got %v", err)
	}
}

func TestLoadGameConfigMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.toml")
	if err := os.WriteFile(path, []byte("not = [valid"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadGameConfig(path); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("got %v", err)
	}
}

func TestLoadServerFromEnvAddr(t *testing.T) {
	t.Setenv("PORT", "9000")
	cfg, err := LoadServerFromEnv()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9000" {
		t.Fatalf("addr got %q", cfg.Addr)
	}
}

func TestLoadServerFromEnvDefault(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SMARTZ_API_ADDR", "")
	cfg, err := LoadServerFromEnv()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("addr got %q", cfg.Addr)
	}
}
