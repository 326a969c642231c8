// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package suggest generates the prompt suggestions shown above the composer.
//
// Generators are pure functions over (mode, query): suggestions are rebuilt on
// every keystroke and never stored. Each list is ordered — literal query,
// keyword expansions, curated examples — de-duplicated, and capped at
// MaxSuggestions.
package suggest
