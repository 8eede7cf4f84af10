package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Dashboard data sources
const (
	SourceMemory   = "memory"
	SourcePostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	BotToken        string `env:"BOT_TOKEN"`
	DashboardSource string `env:"DASHBOARD_SOURCE" envDefault:"memory"`
	MigrationsURL   string `env:"MIGRATIONS_URL" envDefault:"file://migrations"`
	WordsAPI        WordsAPIConfig
	Database        DatabaseConfig
}

// WordsAPIConfig holds the upstream word API settings
type WordsAPIConfig struct {
	URL     string        `env:"WORDS_API_URL" envDefault:"https://api.api-ninjas.com/v1/randomword"`
	Key     string        `env:"WORDS_API_KEY"`
	Timeout time.Duration `env:"WORDS_API_TIMEOUT" envDefault:"5s"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	Name     string `env:"DB_NAME" envDefault:"wordgen"`
	User     string `env:"DB_USER" envDefault:"wordgen"`
	Password string `env:"DB_PASSWORD"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// Validate fields
	switch cfg.DashboardSource {
	case SourceMemory, SourcePostgres:
	default:
		return nil, fmt.Errorf("DASHBOARD_SOURCE must be %q or %q, got %q", SourceMemory, SourcePostgres, cfg.DashboardSource)
	}
	if cfg.WordsAPI.Timeout <= 0 {
		return nil, fmt.Errorf("WORDS_API_TIMEOUT must be positive")
	}
	if cfg.DashboardSource == SourcePostgres && cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required when DASHBOARD_SOURCE=%s", SourcePostgres)
	}

	return cfg, nil
}

// ValidateBot checks the settings only the Telegram bot needs
func (c *Config) ValidateBot() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	return nil
}

// UsesPostgres reports whether dashboard data is read from PostgreSQL
func (c *Config) UsesPostgres() bool {
	return c.DashboardSource == SourcePostgres
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}
