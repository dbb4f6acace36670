package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the article service
type Config struct {
	// Server
	Port     string `yaml:"port"`
	Host     string `yaml:"host"`
	LogLevel string `yaml:"log_level"`

	// Database
	DatabaseURL      string `yaml:"database_url"`
	DatabaseHost     string `yaml:"db_host"`
	DatabasePort     string `yaml:"db_port"`
	DatabaseName     string `yaml:"db_name"`
	DatabaseUser     string `yaml:"db_user"`
	DatabasePassword string `yaml:"db_password"`
	DatabaseSSLMode  string `yaml:"db_ssl_mode"`

	// Sessions
	SessionTTL        time.Duration `yaml:"session_ttl"`
	SessionCookieName string        `yaml:"session_cookie_name"`

	// Rate limiting
	RateLimitPerSecond float64 `yaml:"rate_limit_per_second"`
	RateLimitBurst     int     `yaml:"rate_limit_burst"`
}

// Load reads configuration from an optional YAML file pointed to by
// CONFIG_FILE, then applies environment variable overrides on top. The
// environment always wins so that deployments can patch a shared file.
func Load() (*Config, error) {
	config := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(config, path); err != nil {
			return nil, err
		}
	}

	applyEnv(config)

	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(config)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func defaults() *Config {
	return &Config{
		Port:               "9600",
		Host:               "0.0.0.0",
		LogLevel:           "info",
		DatabaseHost:       "localhost",
		DatabasePort:       "5432",
		DatabaseName:       "tech_share",
		DatabaseUser:       "tech_share",
		DatabaseSSLMode:    "disable",
		SessionTTL:         24 * time.Hour,
		SessionCookieName:  "tech_share_session",
		RateLimitPerSecond: 20,
		RateLimitBurst:     40,
	}
}

func loadFile(config *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(config *Config) {
	setString(&config.Port, "PORT")
	setString(&config.Host, "HOST")
	setString(&config.LogLevel, "LOG_LEVEL")

	setString(&config.DatabaseURL, "DATABASE_URL")
	setString(&config.DatabaseHost, "DB_HOST")
	setString(&config.DatabasePort, "DB_PORT")
	setString(&config.DatabaseName, "DB_NAME")
	setString(&config.DatabaseUser, "DB_USER")
	setString(&config.DatabasePassword, "DB_PASSWORD")
	setString(&config.DatabaseSSLMode, "DB_SSL_MODE")

	setString(&config.SessionCookieName, "SESSION_COOKIE_NAME")
	if value := os.Getenv("SESSION_TTL"); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			config.SessionTTL = d
		}
	}

	if value := os.Getenv("RATE_LIMIT_PER_SECOND"); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			config.RateLimitPerSecond = f
		}
	}
	if value := os.Getenv("RATE_LIMIT_BURST"); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			config.RateLimitBurst = n
		}
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if c.DatabasePassword == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}

	if c.SessionTTL < time.Minute {
		return fmt.Errorf("session TTL must be at least 1 minute, got: %v", c.SessionTTL)
	}

	if c.RateLimitPerSecond <= 0 {
		return fmt.Errorf("rate limit must be positive, got: %v", c.RateLimitPerSecond)
	}
	if c.RateLimitBurst < 1 {
		return fmt.Errorf("rate limit burst must be at least 1, got: %d", c.RateLimitBurst)
	}

	return nil
}

// Helper functions

func buildDatabaseURL(c *Config) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DatabaseUser,
		c.DatabasePassword,
		c.DatabaseHost,
		c.DatabasePort,
		c.DatabaseName,
		c.DatabaseSSLMode,
	)
}

func setString(dst *string, key string) {
	if value := os.Getenv(key); value != "" {
		*dst = value
	}
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
