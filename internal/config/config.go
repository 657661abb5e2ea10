package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DBDriver    string `env:"DB_DRIVER" envDefault:"sqlite"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"cuotas.db"`

	// RedisAddr enables persisted display preferences. Empty disables them.
	RedisAddr string `env:"REDIS_ADDR"`

	// JWTSecret signs owner tokens. PasscodeHash is a bcrypt hash of the
	// owner passcode; leaving it empty disables authentication.
	JWTSecret    string `env:"JWT_SECRET"`
	PasscodeHash string `env:"PASSCODE_HASH"`

	// GTQRate converts USD prices into the local display currency.
	GTQRate float64 `env:"GTQ_RATE" envDefault:"8"`

	StaticDir    string `env:"STATIC_DIR"`
	CacheVersion string `env:"CACHE_VERSION" envDefault:"suscripciones-v2"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"20"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"40"`
}

// AuthEnabled reports whether /api routes require an owner token.
func (c *Config) AuthEnabled() bool {
	return c.PasscodeHash != ""
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	c.DBDriver = strings.ToLower(strings.TrimSpace(c.DBDriver))
	switch c.DBDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.GTQRate <= 0 {
		return fmt.Errorf("GTQ_RATE must be positive, got %v", c.GTQRate)
	}
	if c.AuthEnabled() && c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required when PASSCODE_HASH is set")
	}
	return nil
}
