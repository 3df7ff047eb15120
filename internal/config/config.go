// Package config provides configuration loading and validation for the directory service.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jonathan/london-crypto-directory/internal/relay"
	"gopkg.in/yaml.v3"
)

// Config is the service configuration. Values come from an optional YAML file,
// then environment variables, then CLI flags; later sources win.
type Config struct {
	Port       int  `yaml:"port"`
	TrustProxy bool `yaml:"trust_proxy"`

	// Store
	StoreDriver string `yaml:"store_driver"` // memory, sqlite or postgres
	DatabaseURL string `yaml:"database_url"` // PostgreSQL connection URL
	SQLitePath  string `yaml:"sqlite_path"`  // sqlite file for local development

	// Email relay used by the company and waitlist forms
	Relay       relay.Config `yaml:"relay"`
	NotifyEmail string       `yaml:"notify_email"` // recipient of form notifications

	// Logging-only submission endpoint
	SubmitDelay time.Duration `yaml:"submit_delay"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:        8080,
		SQLitePath:  "directory.db",
		SubmitDelay: time.Second,
	}
}

// LoadConfig loads configuration from a YAML file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overrides fields with any environment variables that are set.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("TRUST_PROXY"); v != "" {
		if trust, err := strconv.ParseBool(v); err == nil {
			c.TrustProxy = trust
		}
	}
	setString(&c.StoreDriver, "DIRECTORY_STORE_DRIVER")
	setString(&c.DatabaseURL, "DATABASE_URL")
	setString(&c.SQLitePath, "DIRECTORY_SQLITE_PATH")
	setString(&c.NotifyEmail, "NOTIFY_EMAIL")
	if v := os.Getenv("SUBMIT_STUB_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.SubmitDelay = d
		}
	}

	env := relay.ConfigFromEnv()
	setIfEmpty(&env.ServiceID, c.Relay.ServiceID)
	setIfEmpty(&env.TemplateID, c.Relay.TemplateID)
	setIfEmpty(&env.PublicKey, c.Relay.PublicKey)
	setIfEmpty(&env.PrivateKey, c.Relay.PrivateKey)
	setIfEmpty(&env.Endpoint, c.Relay.Endpoint)
	if env.RatePerSec == 0 {
		env.RatePerSec = c.Relay.RatePerSec
	}
	env.Burst = c.Relay.Burst
	env.Timeout = c.Relay.Timeout
	c.Relay = env
}

// Validate checks that the configuration has valid values.
// Relay identifiers are not required here: a missing relay configuration is
// reported per submit so the directory itself still serves.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535")
	}

	switch c.StoreDriver {
	case "", "memory", "sqlite":
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("config error: 'database_url' is required for the postgres store")
		}
	default:
		return fmt.Errorf("config error: unknown 'store_driver' %q", c.StoreDriver)
	}

	if c.SubmitDelay < 0 {
		return fmt.Errorf("config error: 'submit_delay' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.StoreDriver == "" {
		result.StoreDriver = defaults.StoreDriver
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.SQLitePath == "" {
		result.SQLitePath = defaults.SQLitePath
	}
	if result.NotifyEmail == "" {
		result.NotifyEmail = defaults.NotifyEmail
	}
	if result.SubmitDelay == 0 {
		result.SubmitDelay = defaults.SubmitDelay
	}

	return result
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setIfEmpty(dst *string, fallback string) {
	if *dst == "" {
		*dst = fallback
	}
}
