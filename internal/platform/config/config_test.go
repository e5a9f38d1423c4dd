package config

import (
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Addr:               ":8080",
		DatabaseURL:        "postgres://localhost/liquidador",
		JWTSecret:          "secret",
		TokenTTL:           time.Hour,
		Environment:        "development",
		MaxBodyBytes:       1 << 20,
		RateLimitPerMinute: 120,
		HolidayYearFrom:    2024,
		HolidayYearTo:      2040,
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestValidateRequiresDatabaseURL(t *testing.T) {
	cfg := validConfig()
	cfg.DatabaseURL = " "
	if err := cfg.Validate(); err == nil {
		t.Fatal("missing DATABASE_URL accepted")
	}
}

func TestValidateProductionRequiresSecret(t *testing.T) {
	cfg := validConfig()
	cfg.Environment = "production"
	cfg.JWTSecret = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("production without JWT secret accepted")
	}
}

func TestValidateProductionSeedNeedsPassword(t *testing.T) {
	cfg := validConfig()
	cfg.Environment = "production"
	cfg.RunSeed = true
	cfg.SeedAdminPassword = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("production seed without admin password accepted")
	}
}

func TestValidateHolidayYearOrder(t *testing.T) {
	cfg := validConfig()
	cfg.HolidayYearFrom = 2030
	cfg.HolidayYearTo = 2024
	if err := cfg.Validate(); err == nil {
		t.Fatal("inverted holiday year range accepted")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9999")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "10")
	t.Setenv("RUN_SEED", "false")
	t.Setenv("TOKEN_TTL", "30m")

	cfg := Load()
	if cfg.Addr != ":9999" {
		t.Fatalf("addr = %q", cfg.Addr)
	}
	if cfg.RateLimitPerMinute != 10 {
		t.Fatalf("rate limit = %d", cfg.RateLimitPerMinute)
	}
	if cfg.RunSeed {
		t.Fatal("RUN_SEED=false ignored")
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Fatalf("token ttl = %s", cfg.TokenTTL)
	}
}
