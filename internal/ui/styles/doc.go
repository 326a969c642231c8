// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for depot-tui.
//
// Colors are defined once as lipgloss.AdaptiveColor pairs and assembled into a
// Theme, which is constructed at startup after termenv detects the terminal's
// color profile and background. Components receive the *Theme and never build
// ad-hoc styles.
package styles
