// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the depot-tui chat screen as a Bubble Tea model.
//
// The screen owns the transcript, the composer, the suggestion dropdown, and
// the request lifecycle. A submission appends the user message and a thinking
// placeholder, fires the HTTP request as a tea.Cmd, and then — after a
// randomized think delay — reveals the answer with the Typewriter at a fixed
// characters-per-second rate driven by a 30fps tick.
//
// All asynchronous messages carry the placeholder's message ID. Handlers
// compare it against the single pending request and drop mismatches, so a
// skipped reveal or a cleared transcript cannot be written to by a stale
// tick or a late HTTP response.
package chat
