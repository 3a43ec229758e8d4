package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `envPrefix:"SERVER_"`
	Database DatabaseConfig `envPrefix:"DB_"`
	KV       KVConfig       `envPrefix:"KV_"`
	Chat     ChatConfig     `envPrefix:"CHAT_"`
	OTEL     OTELConfig     `envPrefix:"OTEL_"`
	Log      LogConfig      `envPrefix:"LOG_"`

	// DatabaseURL is the conventional name used by hosted Postgres providers.
	DatabaseURL string `env:"DATABASE_URL"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host           string   `env:"HOST" envDefault:"0.0.0.0"`
	Port           int      `env:"PORT" envDefault:"8080"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// DatabaseConfig holds the relational store configuration. Every field is
// optional; an empty URL and host means the store is not configured.
type DatabaseConfig struct {
	URL      string `env:"URL"`
	Host     string `env:"HOST"`
	Port     int    `env:"PORT" envDefault:"5432"`
	User     string `env:"USER" envDefault:"postgres"`
	Password string `env:"PASSWORD"`
	Database string `env:"NAME" envDefault:"postgres"`
	SSLMode  string `env:"SSLMODE" envDefault:"require"`
}

// KVConfig holds the durable key-value store configuration
type KVConfig struct {
	URL   string `env:"REST_API_URL"`
	Token string `env:"REST_API_TOKEN"`
	DB    int    `env:"DB" envDefault:"0"`
}

// ChatConfig holds chatbot defaults and the outbound reply service settings
type ChatConfig struct {
	APIURL       string        `env:"API_URL" envDefault:"http://localhost:5000/chat"`
	BotName      string        `env:"BOT_NAME" envDefault:"Care Assistant"`
	Theme        string        `env:"THEME" envDefault:"blue"`
	PrimaryColor string        `env:"PRIMARY_COLOR" envDefault:"#2563eb"`
	Timeout      time.Duration `env:"TIMEOUT" envDefault:"15s"`
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string `env:"SERVICE_NAME" envDefault:"clinic-site"`
	ServiceVersion string `env:"SERVICE_VERSION" envDefault:"1.0.0"`
	Endpoint       string `env:"ENDPOINT"`
	Enabled        bool   `env:"ENABLED" envDefault:"false"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Env   string `env:"ENV" envDefault:"production"`
	Level string `env:"LEVEL" envDefault:"info"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if cfg.Database.URL == "" {
		cfg.Database.URL = cfg.DatabaseURL
	}

	return cfg, nil
}

// Configured reports whether a relational store connection was configured
func (c *DatabaseConfig) Configured() bool {
	return c.URL != "" || c.Host != ""
}

// DatabaseDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DatabaseDSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// Configured reports whether both the KV endpoint and its access token are set
func (c *KVConfig) Configured() bool {
	return c.URL != "" && c.Token != ""
}
