// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file defines all Bubble Tea message types used by the chat interface.
// Messages are organized into the following categories:
//   - Ask lifecycle: request results, errors, and the think delay
//   - Reveal: the 30fps typewriter tick
//   - Health: the startup /status probe
//
// Every message tied to a pending answer carries the placeholder MessageID;
// handlers drop messages whose ID no longer matches the live request, which is
// what makes an in-flight answer safely cancellable.
package chat

import (
	"time"

	"github.com/jeranaias/depot-tui/internal/api"
)

// =============================================================================
// ASK LIFECYCLE MESSAGES
// =============================================================================

// AskResultMsg delivers a successful answer from the service.
type AskResultMsg struct {
	MessageID string
	Answer    string
	Sources   []string
}

// AskErrorMsg delivers a failed request.
type AskErrorMsg struct {
	MessageID string
	Err       error
}

// ThinkDoneMsg signals that the randomized think delay has elapsed and the
// reveal may begin.
type ThinkDoneMsg struct {
	MessageID string
}

// =============================================================================
// REVEAL MESSAGES
// =============================================================================

// TypeTickMsg is sent at 30fps while an answer is being revealed.
type TypeTickMsg struct {
	MessageID string
	Time      time.Time
}

// =============================================================================
// HEALTH MESSAGES
// =============================================================================

// HealthMsg reports the result of the startup /status probe.
type HealthMsg struct {
	Status *api.StatusResponse
	Err    error
}
