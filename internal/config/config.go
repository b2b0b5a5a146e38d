package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/sfwrprogclass/MoneySmarts/internal/game"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// ServerConfig configures the API daemon. DatabaseURL is optional: when
// unset, saves go to the file store under SaveDir.
type ServerConfig struct {
	Addr        string
	DatabaseURL string
	SaveDir     string
	GameFile    string
}

// CLIConfig configures the interactive client.
type CLIConfig struct {
	SaveDir  string
	GameFile string
}

// LoadServerFromEnv builds the daemon configuration from the environment.
func LoadServerFromEnv() (ServerConfig, error) {
	addr := os.Getenv("PORT")
	if addr != "" {
		if !strings.HasPrefix(addr, ":") {
			addr = ":" + addr
		}
	} else {
		addr = envDefault("SMARTZ_API_ADDR", ":8080")
	}
	cfg := ServerConfig{
		Addr:        addr,
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		SaveDir:     strings.TrimSpace(os.Getenv("SMARTZ_SAVE_DIR")),
		GameFile:    strings.TrimSpace(os.Getenv("SMARTZ_CONFIG")),
	}
	return cfg, nil
}

// LoadCLIFromEnv builds the client configuration from the environment.
func LoadCLIFromEnv() CLIConfig {
	return CLIConfig{
		SaveDir:  strings.TrimSpace(os.Getenv("SMARTZ_SAVE_DIR")),
		GameFile: strings.TrimSpace(os.Getenv("SMARTZ_CONFIG")),
	}
}

// gameFile is the TOML shape of the game tunables.
type gameFile struct {
	Game struct {
		RetirementAge           int     `toml:"retirement_age"`
		BaseLivingExpenses      float64 `toml:"base_living_expenses"`
		HomeownerExpenses       float64 `toml:"homeowner_expenses"`
		CarExpenses             float64 `toml:"car_expenses"`
		FamilyExpensesPerMember float64 `toml:"family_expenses_per_member"`
		InflationRate           float64 `toml:"inflation_rate"`
		StartingCash            float64 `toml:"starting_cash"`
		StartingCreditScore     int     `toml:"starting_credit_score"`
		RandomEventChance       float64 `toml:"random_event_chance"`
		UtilityBills            []struct {
			Name   string  `toml:"name"`
			Amount float64 `toml:"amount"`
		} `toml:"utility_bills"`
	} `toml:"game"`
}

// LoadGameConfig builds the simulation tunables: defaults, overridden by
// an optional TOML file, overridden by the environment. A missing file
// path means defaults; a present but unreadable or malformed file is an
// error.
func LoadGameConfig(path string) (game.Config, error) {
	cfg := game.DefaultConfig()
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return cfg, fmt.Errorf("%w: open %s: %v", ErrInvalidConfig, path, err)
		}
		defer file.Close()

		var gf gameFile
		if err := toml.NewDecoder(file).Decode(&gf); err != nil {
			return cfg, fmt.Errorf("%w: decode %s: %v", ErrInvalidConfig, path, err)
		}
		applyFile(&cfg, gf)
	}
	applyEnv(&cfg)
	if cfg.RetirementAge <= 16 {
		return cfg, fmt.Errorf("%w: retirement_age must be above starting age", ErrInvalidConfig)
	}
	if cfg.InflationRate < 0 || cfg.RandomEventChance < 0 || cfg.RandomEventChance > 1 {
		return cfg, fmt.Errorf("%w: rates out of range", ErrInvalidConfig)
	}
	return cfg, nil
}

func applyFile(cfg *game.Config, gf gameFile) {
	g := gf.Game
	if g.RetirementAge != 0 {
		cfg.RetirementAge = g.RetirementAge
	}
	if g.BaseLivingExpenses != 0 {
		cfg.BaseLivingExpenses = g.BaseLivingExpenses
	}
	if g.HomeownerExpenses != 0 {
		cfg.HomeownerExpenses = g.HomeownerExpenses
	}
	if g.CarExpenses != 0 {
		cfg.CarExpenses = g.CarExpenses
	}
	if g.FamilyExpensesPerMember != 0 {
		cfg.FamilyExpensesPerMember = g.FamilyExpensesPerMember
	}
	if g.InflationRate != 0 {
		cfg.InflationRate = g.InflationRate
	}
	if g.StartingCash != 0 {
		cfg.StartingCash = g.StartingCash
	}
	if g.StartingCreditScore != 0 {
		cfg.StartingCreditScore = g.StartingCreditScore
	}
	if g.RandomEventChance != 0 {
		cfg.RandomEventChance = g.RandomEventChance
	}
	if len(g.UtilityBills) > 0 {
		bills := make([]game.UtilityBill, 0, len(g.UtilityBills))
		for _, b := range g.UtilityBills {
			bills = append(bills, game.UtilityBill{Name: b.Name, Amount: b.Amount})
		}
		cfg.UtilityBills = bills
	}
}

func applyEnv(cfg *game.Config) {
	cfg.RetirementAge = envIntDefault("SMARTZ_RETIREMENT_AGE", cfg.RetirementAge)
	cfg.BaseLivingExpenses = envFloatDefault("SMARTZ_BASE_LIVING_EXPENSES", cfg.BaseLivingExpenses)
	cfg.HomeownerExpenses = envFloatDefault("SMARTZ_HOMEOWNER_EXPENSES", cfg.HomeownerExpenses)
	cfg.CarExpenses = envFloatDefault("SMARTZ_CAR_EXPENSES", cfg.CarExpenses)
	cfg.FamilyExpensesPerMember = envFloatDefault("SMARTZ_FAMILY_EXPENSES_PER_MEMBER", cfg.FamilyExpensesPerMember)
	cfg.InflationRate = envFloatDefault("SMARTZ_INFLATION_RATE", cfg.InflationRate)
	cfg.StartingCash = envFloatDefault("SMARTZ_STARTING_CASH", cfg.StartingCash)
	cfg.StartingCreditScore = envIntDefault("SMARTZ_STARTING_CREDIT_SCORE", cfg.StartingCreditScore)
	cfg.RandomEventChance = envFloatDefault("SMARTZ_RANDOM_EVENT_CHANCE", cfg.RandomEventChance)
}

func envDefault(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func envFloatDefault(key string, fallback float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func envIntDefault(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
