package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Logger    LoggerConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// StoreConfig holds catalogue persistence configuration.
type StoreConfig struct {
	// DataFile is the JSON document holding the persisted catalogue.
	DataFile string
	// Seed controls whether a missing data file is replaced by the built-in
	// seed catalogue instead of an empty one.
	Seed bool
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// RateLimitConfig holds per-client request throttling configuration.
type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

// Load reads configuration from an optional config.yaml and the
// STOREFRONT_* environment variables, env taking precedence.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("store.data_file", "data/products.json")
	v.SetDefault("store.seed", true)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.rps", 20.0)
	v.SetDefault("rate_limit.burst", 40)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("server.host"),
			Port: v.GetInt("server.port"),
		},
		Store: StoreConfig{
			DataFile: v.GetString("store.data_file"),
			Seed:     v.GetBool("store.seed"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("logger.level"),
			Format: v.GetString("logger.format"),
		},
		RateLimit: RateLimitConfig{
			Enabled: v.GetBool("rate_limit.enabled"),
			RPS:     v.GetFloat64("rate_limit.rps"),
			Burst:   v.GetInt("rate_limit.burst"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Store.DataFile == "" {
		return fmt.Errorf("store data file is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RPS <= 0 {
			return fmt.Errorf("rate limit rps must be positive")
		}
		if c.RateLimit.Burst < 1 {
			return fmt.Errorf("rate limit burst must be at least 1")
		}
	}

	return nil
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
