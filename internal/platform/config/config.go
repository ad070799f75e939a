// Package config loads the application configuration from environment
// variables, following 12-factor principles. It is read once at startup
// and treated as immutable afterwards.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// HTTP
	Port int `env:"PORT" envDefault:"8080"`

	// Database (PostgreSQL)
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     int    `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER,required,notEmpty"`
	DBPassword string `env:"DB_PASSWORD,required,notEmpty"`
	DBName     string `env:"DB_NAME,required,notEmpty"`

	// RunMigrations enables schema automigration and role seeding on boot.
	RunMigrations bool `env:"RUN_MIGRATIONS" envDefault:"false"`

	// Cache (Redis); empty address disables caching
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:""`
	RedisPassword string        `env:"REDIS_PASSWORD" envDefault:""`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	// Tokens
	JWTSecret string        `env:"JWT_SECRET,required,notEmpty"`
	JWTIssuer string        `env:"JWT_ISSUER" envDefault:"recipe_backend"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"360h"`

	// Blob storage
	StorageRoot   string `env:"STORAGE_ROOT" envDefault:"./data/images"`
	StorageBucket string `env:"STORAGE_BUCKET" envDefault:"recipe-backend"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// DSN builds the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}
