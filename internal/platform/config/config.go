package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// ReportingCurrency is the currency every stored amount is expressed in.
	// SecondaryCurrency is the one foreign currency accounts may hold natively.
	ReportingCurrency string
	SecondaryCurrency string

	// CorrectionWindowDays bounds how long after creation an entry can be
	// corrected without an explicit override.
	CorrectionWindowDays int

	// RateLimit is the limiter formatted rate, e.g. "100-M" for 100 req/min.
	RateLimit string

	// CORSAllowedOrigins is the list of origins allowed to call the API.
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Environment variables win over .env values.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("REPORTING_CURRENCY", "ARS")
	viper.SetDefault("SECONDARY_CURRENCY", "USD")
	viper.SetDefault("CORRECTION_WINDOW_DAYS", 30)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.ReportingCurrency = viper.GetString("REPORTING_CURRENCY")
	cfg.SecondaryCurrency = viper.GetString("SECONDARY_CURRENCY")

	cfg.CorrectionWindowDays = viper.GetInt("CORRECTION_WINDOW_DAYS")
	if cfg.CorrectionWindowDays <= 0 {
		log.Printf("Warning: Invalid CORRECTION_WINDOW_DAYS (%d). Defaulting to 30.\n", cfg.CorrectionWindowDays)
		cfg.CorrectionWindowDays = 30
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = viper.GetStringSlice("CORS_ALLOWED_ORIGINS")

	return cfg, nil
}
