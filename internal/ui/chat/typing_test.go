// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypewriterRevealsMonotonically(t *testing.T) {
	tw := NewTypewriter("msg_1", "hello world", 100, 16*time.Millisecond)
	now := time.Now()
	tw.Start(now)

	prev := 0
	for i := 0; i < 100 && !tw.Done(); i++ {
		now = now.Add(33 * time.Millisecond)
		visible, done := tw.Step(now)

		shown := len([]rune(visible))
		assert.Greater(t, shown, prev, "reveal must be strictly increasing")
		prev = shown

		if done {
			assert.Equal(t, "hello world", visible)
		}
	}

	require.True(t, tw.Done(), "reveal must terminate")
	assert.Equal(t, "hello world", tw.Visible())
}

func TestTypewriterStepBudgetFollowsElapsedTime(t *testing.T) {
	// 100 chars/sec with a 100ms frame should reveal ~10 chars per step.
	tw := NewTypewriter("msg_1", strings.Repeat("a", 50), 100, 16*time.Millisecond)
	now := time.Now()
	tw.Start(now)

	visible, done := tw.Step(now.Add(100 * time.Millisecond))
	assert.False(t, done)
	assert.Equal(t, 10, len([]rune(visible)))
}

func TestTypewriterMinimumQuantum(t *testing.T) {
	// A near-zero frame time is floored to the quantum, so at least one
	// character still appears.
	tw := NewTypewriter("msg_1", "abcdef", 60, 16*time.Millisecond)
	now := time.Now()
	tw.Start(now)

	visible, _ := tw.Step(now.Add(time.Microsecond))
	assert.NotEmpty(t, visible)
}

func TestTypewriterNeverOvershoots(t *testing.T) {
	tw := NewTypewriter("msg_1", "short", 1000, 16*time.Millisecond)
	now := time.Now()
	tw.Start(now)

	// A huge frame gap must clamp to the remaining length.
	visible, done := tw.Step(now.Add(10 * time.Second))
	assert.True(t, done)
	assert.Equal(t, "short", visible)

	// Further steps are idempotent.
	visible, done = tw.Step(now.Add(20 * time.Second))
	assert.True(t, done)
	assert.Equal(t, "short", visible)
}

func TestTypewriterHandlesMultibyteRunes(t *testing.T) {
	text := "héllo wörld 日本語"
	tw := NewTypewriter("msg_1", text, 5, 16*time.Millisecond)
	now := time.Now()
	tw.Start(now)

	for !tw.Done() {
		now = now.Add(200 * time.Millisecond)
		visible, _ := tw.Step(now)
		assert.True(t, strings.HasPrefix(text, visible), "visible text must be a rune prefix")
	}
	assert.Equal(t, text, tw.Visible())
}

func TestTypewriterFinishSkipsAhead(t *testing.T) {
	tw := NewTypewriter("msg_1", "some long answer text", 10, 16*time.Millisecond)
	tw.Start(time.Now())

	assert.Equal(t, "some long answer text", tw.Finish())
	assert.True(t, tw.Done())
}

func TestTypewriterEmptyTextIsImmediatelyDone(t *testing.T) {
	tw := NewTypewriter("msg_1", "", 100, 16*time.Millisecond)
	assert.True(t, tw.Done())

	visible, done := tw.Step(time.Now())
	assert.True(t, done)
	assert.Empty(t, visible)
}

func TestTypewriterDefaultsForBadConfig(t *testing.T) {
	tw := NewTypewriter("msg_1", "abc", 0, 0)
	now := time.Now()
	tw.Start(now)

	// Defaults must still advance the reveal.
	visible, _ := tw.Step(now.Add(33 * time.Millisecond))
	assert.NotEmpty(t, visible)
}
