package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Seed     SeedConfig
}

type ServerConfig struct {
	Port        int
	MetricsPort int
	// Demo serves from in-memory repositories seeded with the sample
	// catalog, no database required.
	Demo bool
}

type DatabaseConfig struct {
	URL      string
	MaxConns int
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type SeedConfig struct {
	Domain        string
	AdminEmail    string
	AdminPassword string
}

func Load() (*Config, error) {
	godotenv.Load()

	domain := getEnv("DOMAIN", "cpdemo.ca")
	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnvAsInt("PORT", 9090),
			MetricsPort: getEnvAsInt("METRICS_PORT", 9091),
			Demo:        getEnv("DEMO_MODE", "") == "true",
		},
		Database: DatabaseConfig{
			URL:      getEnv("DATABASE_URL", ""),
			MaxConns: getEnvAsInt("DATABASE_MAX_CONNS", 16),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			TokenTTL:  time.Minute * time.Duration(getEnvAsInt("TOKEN_TTL_MINUTES", 60*24)),
		},
		Seed: SeedConfig{
			Domain:        domain,
			AdminEmail:    getEnv("SUPERADMIN_EMAIL", "admin@"+domain),
			AdminPassword: getEnv("SUPERADMIN_PASSWORD", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" && !c.Server.Demo {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Database.URL == "" && !c.Server.Demo {
		return fmt.Errorf("DATABASE_URL is required")
	}
	return nil
}

func getEnv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
