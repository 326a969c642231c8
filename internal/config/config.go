// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for depot-tui.
//
// Supports TOML configuration with sensible defaults, environment variable
// overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.depot-tui/config.toml
//   - Built-in defaults
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete depot-tui configuration.
type Config struct {
	// API settings
	API APIConfig `toml:"api"`

	// Typing animation settings
	Typing TypingConfig `toml:"typing"`

	// UI settings
	UI UIConfig `toml:"ui"`
}

// APIConfig contains DataDepot service configuration.
type APIConfig struct {
	// BaseURL is the root URL of the DataDepot API
	BaseURL string `toml:"base_url"`
	// TimeoutSecs is the request timeout in seconds
	TimeoutSecs int `toml:"timeout_secs"`
	// Web asks the service to consult live web results in web mode
	Web bool `toml:"web"`
	// WebDomains restricts web lookups to the listed domains (empty = any)
	WebDomains []string `toml:"web_domains"`
}

// TypingConfig contains the answer reveal animation configuration.
type TypingConfig struct {
	// MinThinkMs is the minimum artificial delay before the reveal starts
	MinThinkMs int `toml:"min_think_ms"`
	// MaxThinkMs is the maximum artificial delay before the reveal starts
	MaxThinkMs int `toml:"max_think_ms"`
	// CharsPerSecond is the reveal rate
	CharsPerSecond float64 `toml:"chars_per_second"`
	// MinStepMs is the minimum per-step time quantum; elapsed frame time
	// below this is treated as MinStepMs so slow terminals still advance
	MinStepMs int `toml:"min_step_ms"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme"`
	// InputCharLimit caps the composer length (0 = default)
	InputCharLimit int `toml:"input_char_limit"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// DefaultBaseURL is the hosted DataDepot instance used when nothing else is
// configured.
const DefaultBaseURL = "https://datadepot-api.onrender.com"

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:     DefaultBaseURL,
			TimeoutSecs: 60,
			Web:         true,
		},
		Typing: TypingConfig{
			MinThinkMs:     400,
			MaxThinkMs:     1200,
			CharsPerSecond: 120,
			MinStepMs:      16,
		},
		UI: UIConfig{
			Theme:          "auto",
			InputCharLimit: 500,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the depot-tui configuration directory (~/.depot-tui).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".depot-tui"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from ~/.depot-tui/config.toml, falling back to
// defaults when the file is absent. Environment overrides are applied last.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := loadTOML(cfg, path); err != nil {
				return nil, fmt.Errorf("failed to load config: %w", err)
			}
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file path with full
// validation. Used by the --config flag and by tests.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := loadTOML(cfg, path); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	cfg.ApplyEnvOverrides()
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// fillDefaults fills in any missing values with defaults.
func (c *Config) fillDefaults() {
	defaults := Default()

	if c.API.BaseURL == "" {
		c.API.BaseURL = defaults.API.BaseURL
	}
	if c.API.TimeoutSecs == 0 {
		c.API.TimeoutSecs = defaults.API.TimeoutSecs
	}

	if c.Typing.MinThinkMs == 0 {
		c.Typing.MinThinkMs = defaults.Typing.MinThinkMs
	}
	if c.Typing.MaxThinkMs == 0 {
		c.Typing.MaxThinkMs = defaults.Typing.MaxThinkMs
	}
	if c.Typing.CharsPerSecond == 0 {
		c.Typing.CharsPerSecond = defaults.Typing.CharsPerSecond
	}
	if c.Typing.MinStepMs == 0 {
		c.Typing.MinStepMs = defaults.Typing.MinStepMs
	}

	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	if c.UI.InputCharLimit == 0 {
		c.UI.InputCharLimit = defaults.UI.InputCharLimit
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file.
func SaveTOML(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	fmt.Fprintln(file, "# depot-tui configuration file")
	fmt.Fprintln(file, "# Generated by depot-tui - edit with care")
	fmt.Fprintln(file, "")

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - DEPOT_API_URL: overrides api.base_url
//   - DEPOT_API_TIMEOUT_SECS: overrides api.timeout_secs
//   - DEPOT_WEB: set to "1" or "true" / "0" or "false" to toggle web lookups
//   - DEPOT_WEB_DOMAINS: comma-separated list, overrides api.web_domains
//   - DEPOT_THEME: overrides ui.theme
func (c *Config) ApplyEnvOverrides() {
	// DEPOT_API_URL
	if baseURL := os.Getenv("DEPOT_API_URL"); baseURL != "" {
		c.API.BaseURL = baseURL
	}

	// DEPOT_API_TIMEOUT_SECS
	if timeout := os.Getenv("DEPOT_API_TIMEOUT_SECS"); timeout != "" {
		if secs, err := strconv.Atoi(timeout); err == nil && secs > 0 {
			c.API.TimeoutSecs = secs
		}
	}

	// DEPOT_WEB
	if web := os.Getenv("DEPOT_WEB"); web != "" {
		c.API.Web = web == "1" || strings.ToLower(web) == "true"
	}

	// DEPOT_WEB_DOMAINS
	if domains := os.Getenv("DEPOT_WEB_DOMAINS"); domains != "" {
		var list []string
		for _, d := range strings.Split(domains, ",") {
			if d = strings.TrimSpace(d); d != "" {
				list = append(list, d)
			}
		}
		c.API.WebDomains = list
	}

	// DEPOT_THEME
	if theme := os.Getenv("DEPOT_THEME"); theme != "" {
		c.UI.Theme = theme
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate validates the configuration and returns the first error found.
func (c *Config) Validate() error {
	if u, err := url.Parse(c.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return ValidationError{
			Field:   "api.base_url",
			Message: fmt.Sprintf("invalid URL '%s'", c.API.BaseURL),
		}
	}

	if c.API.TimeoutSecs < 0 {
		return ValidationError{
			Field:   "api.timeout_secs",
			Message: "must be non-negative",
		}
	}

	if c.Typing.MinThinkMs < 0 || c.Typing.MaxThinkMs < 0 {
		return ValidationError{
			Field:   "typing.min_think_ms",
			Message: "think delays must be non-negative",
		}
	}
	if c.Typing.MaxThinkMs < c.Typing.MinThinkMs {
		return ValidationError{
			Field:   "typing.max_think_ms",
			Message: fmt.Sprintf("must be >= min_think_ms (%d), got %d", c.Typing.MinThinkMs, c.Typing.MaxThinkMs),
		}
	}
	if c.Typing.CharsPerSecond <= 0 {
		return ValidationError{
			Field:   "typing.chars_per_second",
			Message: "must be positive",
		}
	}
	if c.Typing.MinStepMs <= 0 {
		return ValidationError{
			Field:   "typing.min_step_ms",
			Message: "must be positive",
		}
	}

	validThemes := map[string]bool{"dark": true, "light": true, "auto": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		return ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: dark, light, auto", c.UI.Theme),
		}
	}

	return nil
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
		}
		globalConfig = cfg
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
// This should only be used in tests to reset state between test runs.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
