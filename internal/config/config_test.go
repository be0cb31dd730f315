package config

import (
	"errors"
	"testing"
	"time"

	"github.com/sejanpass/sejanpass-go/internal/generator"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "JWT_SECRET", "JWT_EXPIRY", "MIN_LENGTH", "MAX_LENGTH", "DEFAULT_LENGTH", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.Policy != generator.DefaultPolicy() {
		t.Errorf("Policy = %+v, want %+v", cfg.Policy, generator.DefaultPolicy())
	}
	if cfg.DefaultLength != generator.DefaultLength {
		t.Errorf("DefaultLength = %d, want %d", cfg.DefaultLength, generator.DefaultLength)
	}
	if cfg.JWTExpiry != time.Hour {
		t.Errorf("JWTExpiry = %v, want %v", cfg.JWTExpiry, time.Hour)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("MIN_LENGTH", "6")
	t.Setenv("MAX_LENGTH", "26")
	t.Setenv("DEFAULT_LENGTH", "20")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("JWT_EXPIRY", "15m")

	cfg := FromEnv()

	if cfg.Policy.MinLength != 6 || cfg.Policy.MaxLength != 26 {
		t.Errorf("Policy = %+v, want [6, 26]", cfg.Policy)
	}
	if cfg.DefaultLength != 20 {
		t.Errorf("DefaultLength = %d, want 20", cfg.DefaultLength)
	}
	if cfg.RateLimitRPS != 2.5 {
		t.Errorf("RateLimitRPS = %v, want 2.5", cfg.RateLimitRPS)
	}
	if cfg.JWTExpiry != 15*time.Minute {
		t.Errorf("JWTExpiry = %v, want 15m", cfg.JWTExpiry)
	}
}

func TestFromEnvIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("MAX_LENGTH", "fifty")

	cfg := FromEnv()

	if cfg.Policy.MaxLength != generator.DefaultMaxLength {
		t.Errorf("MaxLength = %d, want fallback %d", cfg.Policy.MaxLength, generator.DefaultMaxLength)
	}
}

func TestValidate(t *testing.T) {
	base := Config{
		Env:           "production",
		JWTSecret:     "a-real-secret",
		Policy:        generator.DefaultPolicy(),
		DefaultLength: 26,
	}

	if err := base.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}

	insecure := base
	insecure.JWTSecret = devJWTSecret
	if err := insecure.Validate(); err != ErrInsecureSecret {
		t.Errorf("Validate() error = %v, want %v", err, ErrInsecureSecret)
	}

	badPolicy := base
	badPolicy.Policy = generator.Policy{MinLength: 10, MaxLength: 5}
	if err := badPolicy.Validate(); !errors.Is(err, generator.ErrInvalidPolicy) {
		t.Errorf("Validate() error = %v, want %v", err, generator.ErrInvalidPolicy)
	}

	badDefault := base
	badDefault.DefaultLength = 60
	if err := badDefault.Validate(); !errors.Is(err, generator.ErrLengthOutOfRange) {
		t.Errorf("Validate() error = %v, want %v", err, generator.ErrLengthOutOfRange)
	}
}
