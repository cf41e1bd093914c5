package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Provider struct {
		BaseURL      string        `yaml:"base_url"`
		ClientID     string        `yaml:"client_id"`
		ClientSecret string        `yaml:"client_secret"`
		Timeout      time.Duration `yaml:"timeout"`
	} `yaml:"provider"`
	Oracle struct {
		Command        string        `yaml:"command"`
		Args           []string      `yaml:"args"`
		Timeout        time.Duration `yaml:"timeout"`
		MaxOutputBytes int64         `yaml:"max_output_bytes"`
	} `yaml:"oracle"`
	Refresh struct {
		Cron string `yaml:"cron"`
	} `yaml:"refresh"`
	Recorder struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"recorder"`
	SentryDSN string `yaml:"sentry_dsn"`
	LogLevel  string `yaml:"log_level"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error: demo mode needs no
// configuration at all.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SMARTFINANCE_PROVIDER_URL"); v != "" {
		cfg.Provider.BaseURL = v
	}
	if v := os.Getenv("SMARTFINANCE_CLIENT_ID"); v != "" {
		cfg.Provider.ClientID = v
	}
	if v := os.Getenv("SMARTFINANCE_CLIENT_SECRET"); v != "" {
		cfg.Provider.ClientSecret = v
	}
	if v := os.Getenv("SMARTFINANCE_ORACLE_CMD"); v != "" {
		cfg.Oracle.Command = v
	}
	if v := os.Getenv("SENTRY_DSN"); v != "" {
		cfg.SentryDSN = v
	}
	if v := os.Getenv("SMARTFINANCE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	// Defaults
	if cfg.Provider.Timeout == 0 {
		cfg.Provider.Timeout = 30 * time.Second
	}
	if cfg.Oracle.Timeout == 0 {
		cfg.Oracle.Timeout = 20 * time.Second
	}
	if cfg.Oracle.MaxOutputBytes == 0 {
		cfg.Oracle.MaxOutputBytes = 1 << 20
	}
	if cfg.Refresh.Cron == "" {
		cfg.Refresh.Cron = "@every 1h"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// Validate checks field combinations that cannot work at runtime.
func (c *Config) Validate() error {
	if c.Provider.BaseURL != "" && c.Provider.ClientID == "" {
		return fmt.Errorf("provider.client_id is required when provider.base_url is set")
	}
	if c.Provider.BaseURL != "" && c.Provider.ClientSecret == "" {
		return fmt.Errorf("provider.client_secret is required when provider.base_url is set")
	}
	if c.Oracle.Command == "" && len(c.Oracle.Args) > 0 {
		return fmt.Errorf("oracle.command is required when oracle.args is set")
	}
	return nil
}
