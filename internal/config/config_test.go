// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, 60, cfg.API.TimeoutSecs)
	assert.True(t, cfg.API.Web)
	assert.LessOrEqual(t, cfg.Typing.MinThinkMs, cfg.Typing.MaxThinkMs)
	assert.Greater(t, cfg.Typing.CharsPerSecond, 0.0)
}

func TestLoadFromPath(t *testing.T) {
	t.Setenv("DEPOT_API_URL", "")
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[api]
base_url = "http://localhost:8000/"
web = false
web_domains = ["example.com", "example.org"]

[typing]
chars_per_second = 200.0

[ui]
theme = "dark"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000/", cfg.API.BaseURL)
	assert.False(t, cfg.API.Web)
	assert.Equal(t, []string{"example.com", "example.org"}, cfg.API.WebDomains)
	assert.Equal(t, 200.0, cfg.Typing.CharsPerSecond)
	assert.Equal(t, "dark", cfg.UI.Theme)

	// Unset fields fall back to defaults.
	assert.Equal(t, 60, cfg.API.TimeoutSecs)
	assert.Equal(t, 16, cfg.Typing.MinStepMs)
	assert.Equal(t, 500, cfg.UI.InputCharLimit)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DEPOT_API_URL", "http://127.0.0.1:9999")
	t.Setenv("DEPOT_WEB", "false")
	t.Setenv("DEPOT_WEB_DOMAINS", "a.com, b.com ,")
	t.Setenv("DEPOT_API_TIMEOUT_SECS", "30")
	t.Setenv("DEPOT_THEME", "light")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "http://127.0.0.1:9999", cfg.API.BaseURL)
	assert.False(t, cfg.API.Web)
	assert.Equal(t, []string{"a.com", "b.com"}, cfg.API.WebDomains)
	assert.Equal(t, 30, cfg.API.TimeoutSecs)
	assert.Equal(t, "light", cfg.UI.Theme)
}

func TestEnvOverrideIgnoresBadTimeout(t *testing.T) {
	t.Setenv("DEPOT_API_TIMEOUT_SECS", "not-a-number")

	cfg := Default()
	cfg.ApplyEnvOverrides()
	assert.Equal(t, 60, cfg.API.TimeoutSecs)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"bad url", func(c *Config) { c.API.BaseURL = "not a url" }, "api.base_url"},
		{"empty url", func(c *Config) { c.API.BaseURL = "" }, "api.base_url"},
		{"negative timeout", func(c *Config) { c.API.TimeoutSecs = -1 }, "api.timeout_secs"},
		{"inverted think range", func(c *Config) { c.Typing.MinThinkMs = 500; c.Typing.MaxThinkMs = 100 }, "typing.max_think_ms"},
		{"zero rate", func(c *Config) { c.Typing.CharsPerSecond = 0 }, "typing.chars_per_second"},
		{"zero quantum", func(c *Config) { c.Typing.MinStepMs = 0 }, "typing.min_step_ms"},
		{"bad theme", func(c *Config) { c.UI.Theme = "sepia" }, "ui.theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			var vErr ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := Default()
	cfg.API.BaseURL = "http://localhost:8123"
	cfg.Typing.CharsPerSecond = 90

	require.NoError(t, SaveTOML(cfg, path))

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8123", loaded.API.BaseURL)
	assert.Equal(t, 90.0, loaded.Typing.CharsPerSecond)
}

func TestGlobalSetAndReset(t *testing.T) {
	ResetGlobalForTesting()
	defer ResetGlobalForTesting()

	custom := Default()
	custom.API.BaseURL = "http://localhost:7777"
	SetGlobal(custom)
	// Global's sync.Once still runs Load on first access; SetGlobal after
	// that must win.
	_ = Global()
	SetGlobal(custom)
	assert.Equal(t, "http://localhost:7777", Global().API.BaseURL)
}
