package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	// SeedFile optionally points at a YAML snapshot to seed the data
	// context from instead of the built-in demo dataset.
	SeedFile string
	// BaseCurrency is the currency reporting converts expense totals into.
	BaseCurrency string
	IsProduction bool
	LogLevel     string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("SEED_FILE", "")
	viper.SetDefault("BASE_CURRENCY", "USD")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")

	viper.AutomaticEnv()

	cfg := &Config{
		SeedFile:     viper.GetString("SEED_FILE"),
		BaseCurrency: viper.GetString("BASE_CURRENCY"),
		IsProduction: viper.GetBool("IS_PRODUCTION"),
		LogLevel:     viper.GetString("LOG_LEVEL"),
	}

	return cfg, nil
}
