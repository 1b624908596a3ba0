package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI      UIConfig
	Share   ShareConfig
	Budget  BudgetConfig
	Profile ProfileConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Currency       string
	CurrencySymbol string `mapstructure:"currency_symbol"`
	DateFormat     string `mapstructure:"date_format"`
	Timezone       string
	Theme          string
}

// ShareConfig holds the link base for shared lists.
type ShareConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// BudgetConfig holds the monthly plan figures that are not derived from
// category spend.
type BudgetConfig struct {
	Total          float64
	LastMonthSpent float64 `mapstructure:"last_month_spent"`
	SavingsGoal    float64 `mapstructure:"savings_goal"`
	CurrentSavings float64 `mapstructure:"current_savings"`
}

// ProfileConfig is the account shown on the profile screen.
type ProfileConfig struct {
	FirstName   string `mapstructure:"first_name"`
	LastName    string `mapstructure:"last_name"`
	Email       string
	Phone       string
	Address     string
	CardBalance float64 `mapstructure:"card_balance"`
}

// Path returns the config file location. BASKET_CONFIG wins over the default.
func Path() string {
	if p := os.Getenv("BASKET_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "basket", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix BASKET_.
// A .env file in the working directory is loaded first and never overrides
// variables already set.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	// default values
	v.SetDefault("ui.currency", "EUR")
	v.SetDefault("ui.currency_symbol", "€")
	v.SetDefault("ui.date_format", "Jan 2, 2006")
	v.SetDefault("ui.timezone", "Europe/Paris")
	v.SetDefault("ui.theme", "light")
	v.SetDefault("share.base_url", "https://shopisbeta-bolt.netlify.app")
	v.SetDefault("budget.total", 500.0)
	v.SetDefault("budget.last_month_spent", 280.0)
	v.SetDefault("budget.savings_goal", 150.0)
	v.SetDefault("budget.current_savings", 95.0)
	v.SetDefault("profile.first_name", "John")
	v.SetDefault("profile.last_name", "Doe")
	v.SetDefault("profile.email", "john.doe@example.com")
	v.SetDefault("profile.phone", "+1 (555) 123-4567")
	v.SetDefault("profile.address", "123 Main St, New York, NY 10001")
	v.SetDefault("profile.card_balance", 250.0)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("BASKET_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "basket"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("BASKET")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// SaveProfile writes the editable profile fields into the config file at
// path (or Path when empty), keeping whatever else the file already holds.
// Defaults and BASKET_* env values are not written. The card balance is
// session state and never saved.
func SaveProfile(path string, p ProfileConfig) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(path)
	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config: %w", err)
	}

	v.Set("profile.first_name", p.FirstName)
	v.Set("profile.last_name", p.LastName)
	v.Set("profile.email", p.Email)
	v.Set("profile.phone", p.Phone)
	v.Set("profile.address", p.Address)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
