// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for depot-tui: the
// suggestion dropdown, the status bar, and the quick prompt chips. Components
// hold no application state beyond what they render; the chat model drives
// them.
package components
