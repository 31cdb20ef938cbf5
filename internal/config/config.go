// Package config loads runtime configuration from the environment.
package config

import (
	"os"
	"strconv"
)

// Config holds everything cmd/server needs to wire the app.
type Config struct {
	// Port the HTTP server listens on.
	Port string

	// OpeningBalance seeds the session wallet.
	OpeningBalance float64

	// UPIVPA is the virtual payment address used in generated payment
	// links. The stock value is a demo placeholder, not a real payee.
	UPIVPA string

	// UPICurrency is the ISO 4217 code placed in payment links.
	UPICurrency string
}

// Load reads configuration from environment variables, falling back to
// defaults that match the original product: a wallet seeded with 100000
// and INR payment links.
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		OpeningBalance: getEnvFloat("OPENING_BALANCE", 100000),
		UPIVPA:         getEnv("UPI_VPA", "demo@upi"),
		UPICurrency:    getEnv("UPI_CURRENCY", "INR"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}
