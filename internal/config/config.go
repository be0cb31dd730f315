package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/sejanpass/sejanpass-go/internal/generator"
)

const devJWTSecret = "dev-secret-change-in-production"

var ErrInsecureSecret = errors.New("JWT_SECRET must be set in production environment")

type Config struct {
	Port            string
	Env             string
	DatabaseDSN     string
	JWTSecret       string
	JWTExpiry       time.Duration
	AdminSecretHash string

	Policy        generator.Policy
	DefaultLength int

	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads configuration from the environment and exits if it is unusable.
func Load() Config {
	cfg := FromEnv()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	return cfg
}

// FromEnv reads configuration from the environment without validating it.
func FromEnv() Config {
	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		DatabaseDSN:     getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/sejanpass?parseTime=true"),
		JWTSecret:       getEnv("JWT_SECRET", devJWTSecret),
		JWTExpiry:       getEnvDuration("JWT_EXPIRY", time.Hour),
		AdminSecretHash: getEnv("ADMIN_SECRET_HASH", ""),
		Policy: generator.Policy{
			MinLength: getEnvInt("MIN_LENGTH", generator.DefaultMinLength),
			MaxLength: getEnvInt("MAX_LENGTH", generator.DefaultMaxLength),
		},
		DefaultLength:  getEnvInt("DEFAULT_LENGTH", generator.DefaultLength),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
	}
}

// Validate reports settings the server cannot start with.
func (c Config) Validate() error {
	if c.Env == "production" && c.JWTSecret == devJWTSecret {
		return ErrInsecureSecret
	}
	if err := c.Policy.Validate(generator.Config{Length: c.DefaultLength, Classes: generator.AllClasses}); err != nil {
		return err
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("ignoring invalid integer setting", "key", key, "value", v)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("ignoring invalid number setting", "key", key, "value", v)
		return fallback
	}
	return f
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("ignoring invalid duration setting", "key", key, "value", v)
		return fallback
	}
	return d
}
