package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/crypto/bcrypt"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port        string   `env:"PORT" envDefault:"8080"`
	DatabaseURL string   `env:"DATABASE_URL,required"`
	JWTSecret   string   `env:"JWT_SECRET,required"`
	JWTIssuer   string   `env:"JWT_ISSUER" envDefault:"account-be"`
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`

	// Zero keeps issued tokens free of an expiry claim.
	JWTTTLMinutes int `env:"JWT_TTL_MINUTES" envDefault:"0"`

	BcryptCost int `env:"BCRYPT_COST"`
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	cfg.BcryptCost = bcrypt.DefaultCost
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// JWTTTL converts the configured minutes into a duration.
func (c Config) JWTTTL() time.Duration {
	if c.JWTTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(c.JWTTTLMinutes) * time.Minute
}
