// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads depot-tui configuration from ~/.depot-tui/config.toml
// with built-in defaults and environment variable overrides (DEPOT_API_URL et
// al). The API base URL is never hardcoded outside this package; everything
// downstream receives it through Config.
package config
