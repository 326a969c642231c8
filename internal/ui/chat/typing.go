// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file implements the progressive answer reveal. The Typewriter is a pure
// state machine driven by the 30fps render tick: each step converts the actual
// elapsed frame time into a character budget at the configured rate, so the
// reveal speed stays constant whether the terminal renders at 30fps or drops
// frames under load.
package chat

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/depot-tui/internal/util"
)

// =============================================================================
// TYPEWRITER
// =============================================================================

// Typewriter progressively reveals a final answer string.
//
// The zero value is inert; use NewTypewriter. Counting is rune-based so
// multi-byte characters are never split. Each tick advances by at least one
// rune and at most the remaining count, which guarantees termination exactly
// at the full length regardless of frame timing.
type Typewriter struct {
	messageID string
	full      []rune
	shown     int
	rate      float64 // runes per second
	minStep   time.Duration
	lastStep  time.Time
}

// NewTypewriter creates a reveal for the given message.
//
// rate is the reveal speed in characters per second; minStep is the minimum
// per-step time quantum. Elapsed frame time below minStep is treated as
// minStep so a fast render loop still advances visibly.
func NewTypewriter(messageID, text string, rate float64, minStep time.Duration) *Typewriter {
	if rate <= 0 {
		rate = 120
	}
	if minStep <= 0 {
		minStep = 16 * time.Millisecond
	}
	return &Typewriter{
		messageID: messageID,
		full:      []rune(text),
		rate:      rate,
		minStep:   minStep,
	}
}

// MessageID returns the transcript message this reveal targets.
func (t *Typewriter) MessageID() string {
	return t.messageID
}

// Start arms the timer. The first Step measures elapsed time from here.
func (t *Typewriter) Start(now time.Time) {
	t.lastStep = now
}

// Step advances the reveal using the elapsed time since the previous step and
// returns the currently visible text. done is true once the full text is
// shown.
func (t *Typewriter) Step(now time.Time) (visible string, done bool) {
	if t.Done() {
		return string(t.full), true
	}
	if t.lastStep.IsZero() {
		t.lastStep = now
	}

	elapsed := now.Sub(t.lastStep)
	if elapsed < t.minStep {
		elapsed = t.minStep
	}
	t.lastStep = now

	budget := int(elapsed.Seconds() * t.rate)
	step := util.Clamp(budget, 1, len(t.full)-t.shown)
	t.shown += step

	return string(t.full[:t.shown]), t.shown == len(t.full)
}

// Finish reveals the remaining text immediately (Esc skips the animation).
func (t *Typewriter) Finish() string {
	t.shown = len(t.full)
	return string(t.full)
}

// Visible returns the currently revealed prefix.
func (t *Typewriter) Visible() string {
	return string(t.full[:t.shown])
}

// Done reports whether the full text has been revealed.
func (t *Typewriter) Done() bool {
	return t.shown >= len(t.full)
}

// Full returns the complete answer text.
func (t *Typewriter) Full() string {
	return string(t.full)
}

// =============================================================================
// TIMING COMMANDS
// =============================================================================

// typeTickCmd emits TypeTickMsg at 30fps while a reveal is running. The
// message carries the target ID so ticks for an abandoned reveal are dropped.
func typeTickCmd(messageID string) tea.Cmd {
	return tea.Tick(33*time.Millisecond, func(t time.Time) tea.Msg {
		return TypeTickMsg{MessageID: messageID, Time: t}
	})
}

// thinkDelayCmd waits a uniform random duration in [minMs, maxMs] before the
// reveal starts, mimicking a human pause between receiving and "typing".
func thinkDelayCmd(messageID string, minMs, maxMs int) tea.Cmd {
	if maxMs < minMs {
		maxMs = minMs
	}
	delay := time.Duration(minMs) * time.Millisecond
	if spread := maxMs - minMs; spread > 0 {
		delay += time.Duration(rand.Intn(spread+1)) * time.Millisecond
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ThinkDoneMsg{MessageID: messageID}
	})
}
