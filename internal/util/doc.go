// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the depot-tui application.
//
// The helpers here are intentionally tiny and dependency-light: rune-safe
// truncation and clamping used by the chat view and the typewriter. Display
// width handling delegates to github.com/mattn/go-runewidth so CJK and
// fullwidth characters are measured correctly.
package util
