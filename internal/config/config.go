package config

import (
	"fmt"
	"os"

	"golang.org/x/text/currency"
)

const (
	ServiceName    = "lojinha"
	ServiceVersion = "0.1.0"
)

type Config struct {
	DatabaseURL string
	// Currency used when pricing new catalog entries. Single-currency store.
	Currency currency.Unit
}

func Load() (*Config, error) {
	config := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Currency:    currency.BRL,
	}

	if config.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if code := os.Getenv("STORE_CURRENCY"); code != "" {
		unit, err := currency.ParseISO(code)
		if err != nil {
			return nil, fmt.Errorf("STORE_CURRENCY[%s] is not valid: %w", code, err)
		}
		config.Currency = unit
	}

	return config, nil
}
