// Package config loads the application configuration: the four CSV source
// paths, the store location, and report tuning. Values come from the YAML
// config file, overridden by FOODWASTE_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Sources holds the CSV file paths for bulk loads.
type Sources struct {
	Providers string `yaml:"providers" env:"FOODWASTE_PROVIDERS_CSV"`
	Receivers string `yaml:"receivers" env:"FOODWASTE_RECEIVERS_CSV"`
	Listings  string `yaml:"listings" env:"FOODWASTE_LISTINGS_CSV"`
	Claims    string `yaml:"claims" env:"FOODWASTE_CLAIMS_CSV"`
}

// Reports holds the tunable report parameters.
type Reports struct {
	// ExpiryWindowDays is the default day window for the nearing-expiry
	// report.
	ExpiryWindowDays int `yaml:"expiry_window_days" env:"FOODWASTE_EXPIRY_WINDOW_DAYS"`

	// LowStockThreshold is the default quantity bound for the low-stock
	// alert.
	LowStockThreshold int `yaml:"low_stock_threshold" env:"FOODWASTE_LOW_STOCK_THRESHOLD"`
}

// Config represents the application configuration
type Config struct {
	StorePath string  `yaml:"store_path" env:"FOODWASTE_STORE_PATH"`
	Sources   Sources `yaml:"sources"`
	Reports   Reports `yaml:"reports"`
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist; environment variables
// override file values either way.
func Load() (*Config, error) {
	config := defaultConfig()

	configPath, err := getConfigPath()
	if err == nil {
		if data, err := os.ReadFile(configPath); err == nil {
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("parse %s: %w", configPath, err)
			}
		}
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	config.applyDefaults()
	return config, nil
}

// Save saves the config to the user's config directory.
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

func defaultConfig() *Config {
	return &Config{
		Reports: Reports{
			ExpiryWindowDays:  3,
			LowStockThreshold: 5,
		},
	}
}

// applyDefaults fills in any zero values left after file and env parsing.
func (c *Config) applyDefaults() {
	if c.Reports.ExpiryWindowDays <= 0 {
		c.Reports.ExpiryWindowDays = 3
	}
	if c.Reports.LowStockThreshold <= 0 {
		c.Reports.LowStockThreshold = 5
	}
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "foodwaste", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "foodwaste", "config.yaml"), nil
}
