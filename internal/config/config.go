// Package config provides configuration loading and validation for FleetDNS.
//
// Configuration lives in a YAML file; Load reads, unmarshals, applies
// defaults and validates. The zone declaration itself is a separate
// document handled by internal/declaration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is used when no path is given on the command line or in
// the FLEETDNS_CONFIG environment variable.
const DefaultPath = "fleetdns.yaml"

// ResolveConfigPath picks the effective config path from the explicit
// flag value, the FLEETDNS_CONFIG environment variable, or DefaultPath.
func ResolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("FLEETDNS_CONFIG"); env != "" {
		return env
	}
	return DefaultPath
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}
	return Parse(data)
}

// Parse unmarshals, defaults and validates a raw YAML configuration.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate validates and normalizes the configuration.
func (cfg *Config) Validate() error {
	// Normalize provider
	cfg.Provider.Name = strings.ToLower(strings.TrimSpace(cfg.Provider.Name))
	if cfg.Provider.Name == "" {
		cfg.Provider.Name = "memory"
	}
	if cfg.Provider.Settings == nil {
		cfg.Provider.Settings = map[string]string{}
	}
	if cfg.Provider.DefaultTTL < 0 {
		return errors.New("provider.default_ttl must not be negative")
	}
	if cfg.Provider.DefaultTTL == 0 {
		cfg.Provider.DefaultTTL = 300
	}

	// Normalize store
	if cfg.Store.Path == "" {
		cfg.Store.Path = "fleetdns.db"
	}

	// Normalize management API
	if cfg.API.Host == "" {
		cfg.API.Host = "127.0.0.1"
	}
	if cfg.API.Port == 0 {
		cfg.API.Port = 8080
	}
	if cfg.API.Port < 0 || cfg.API.Port > 65535 {
		return errors.New("api.port must be 1..65535")
	}

	// Normalize logging
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.ExtraFields == nil {
		cfg.Logging.ExtraFields = map[string]string{}
	}

	return nil
}
