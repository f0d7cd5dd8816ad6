// Package config provides application configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Config holds the complete application configuration.
type Config struct {
	Server ServerConfig
	Feed   FeedConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// FeedConfig holds settings for the remote daily rate feed.
type FeedConfig struct {
	BaseURL    string `mapstructure:"base_url"`    // Day paths like 2010/06/25.xml are appended to it.
	TimeoutSec int    `mapstructure:"timeout_sec"` // Per-fetch HTTP timeout.
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// LoadConfig reads configuration from config files, environment variables, and defaults.
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file found or error loading it: %v\n", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config search paths
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("XRATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// It's okay if no config file, we have defaults and env
		fmt.Printf("Config file not found: %v\n", err)
	}

	return unmarshal(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("feed.base_url", "http://api.finance.xaviermedia.com/api/")
	v.SetDefault("feed.timeout_sec", 10)
	v.SetDefault("log.level", "info")
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks that all required configuration fields are set and valid.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 {
		errs = append(errs, fmt.Errorf("server.port must be positive, got %d", c.Server.Port))
	}

	if c.Feed.BaseURL == "" {
		errs = append(errs, fmt.Errorf("feed.base_url is required (set XRATE_FEED_BASE_URL)"))
	} else if u, err := url.Parse(c.Feed.BaseURL); err != nil || !u.IsAbs() {
		errs = append(errs, fmt.Errorf("feed.base_url must be an absolute URL, got %q", c.Feed.BaseURL))
	}
	if c.Feed.TimeoutSec <= 0 {
		errs = append(errs, fmt.Errorf("feed.timeout_sec must be positive, got %d", c.Feed.TimeoutSec))
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	return errors.Join(errs...)
}
