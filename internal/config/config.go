package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Catalog sources
const (
	SourceEmbedded = "embedded"
	SourcePostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Catalog    CatalogConfig
	PostgreSQL PostgreSQLConfig
	Logging    LoggingConfig

	// Warnings collects env values that failed to parse and fell back to defaults
	Warnings []string
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
	AllowedMethods string
	AllowedHeaders string
}

// CatalogConfig selects where listings are loaded from
type CatalogConfig struct {
	Source string
}

// PostgreSQLConfig holds PostgreSQL database configuration
type PostgreSQLConfig struct {
	DSN                string
	Host               string
	Port               int
	User               string
	Password           string
	Database           string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level       string
	Format      string
	Development bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Server = ServerConfig{
		Port:           cfg.getEnvAsInt("SERVER_PORT", 8080),
		Host:           getEnv("SERVER_HOST", "0.0.0.0"),
		GinMode:        getEnv("GIN_MODE", "release"),
		AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		AllowedMethods: getEnv("CORS_ALLOWED_METHODS", "GET,POST,OPTIONS"),
		AllowedHeaders: getEnv("CORS_ALLOWED_HEADERS", "Content-Type"),
	}
	cfg.Catalog = CatalogConfig{
		Source: strings.ToLower(getEnv("CATALOG_SOURCE", SourceEmbedded)),
	}
	cfg.PostgreSQL = PostgreSQLConfig{
		DSN:                getEnv("DATABASE_URL", getEnv("POSTGRESQL_URI", getEnv("PG_DSN", ""))),
		Host:               getEnv("PG_HOST", "localhost"),
		Port:               cfg.getEnvAsInt("PG_PORT", 5432),
		User:               getEnv("PG_USER", "postgres"),
		Password:           getEnv("PG_PASSWORD", ""),
		Database:           getEnv("PG_DATABASE", "home_catalog"),
		SSLMode:            getEnv("PG_SSLMODE", "disable"),
		MaxConnections:     cfg.getEnvAsInt("PG_MAX_CONNECTIONS", 5),
		MaxIdleConnections: cfg.getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 2),
	}
	cfg.Logging = LoggingConfig{
		Level:       getEnv("LOG_LEVEL", "info"),
		Format:      getEnv("LOG_FORMAT", "json"),
		Development: cfg.getEnvAsBool("LOG_DEVELOPMENT", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with
func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case SourceEmbedded, SourcePostgres:
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q (want %q or %q)", c.Catalog.Source, SourceEmbedded, SourcePostgres)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid SERVER_PORT %d", c.Server.Port)
	}
	return nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GetPostgreSQLDSN returns PostgreSQL connection string
func (c *Config) GetPostgreSQLDSN() string {
	if c.PostgreSQL.DSN != "" {
		return c.PostgreSQL.DSN
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgreSQL.Host,
		c.PostgreSQL.Port,
		c.PostgreSQL.User,
		c.PostgreSQL.Password,
		c.PostgreSQL.Database,
		c.PostgreSQL.SSLMode,
	)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func (c *Config) getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		c.Warnings = append(c.Warnings, fmt.Sprintf("invalid integer value for %s, using default %d", key, defaultValue))
		return defaultValue
	}
	return value
}

func (c *Config) getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		c.Warnings = append(c.Warnings, fmt.Sprintf("invalid boolean value for %s, using default %t", key, defaultValue))
		return defaultValue
	}
	return value
}
