package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "OPENING_BALANCE", "UPI_VPA", "UPI_CURRENCY"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.OpeningBalance != 100000 {
		t.Errorf("OpeningBalance = %v, want 100000", cfg.OpeningBalance)
	}
	if cfg.UPIVPA != "demo@upi" {
		t.Errorf("UPIVPA = %q, want demo@upi", cfg.UPIVPA)
	}
	if cfg.UPICurrency != "INR" {
		t.Errorf("UPICurrency = %q, want INR", cfg.UPICurrency)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("OPENING_BALANCE", "2500.50")
	t.Setenv("UPI_CURRENCY", "EUR")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.OpeningBalance != 2500.50 {
		t.Errorf("OpeningBalance = %v, want 2500.50", cfg.OpeningBalance)
	}
	if cfg.UPICurrency != "EUR" {
		t.Errorf("UPICurrency = %q, want EUR", cfg.UPICurrency)
	}
}

func TestLoadIgnoresBadFloat(t *testing.T) {
	t.Setenv("OPENING_BALANCE", "not-a-number")

	if cfg := Load(); cfg.OpeningBalance != 100000 {
		t.Errorf("OpeningBalance = %v, want the 100000 fallback", cfg.OpeningBalance)
	}
}
