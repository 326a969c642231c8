// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat transcript.
package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser   Role = "user"
	RoleBot    Role = "bot"
	RoleSystem Role = "system"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleBot:
		return "Depot"
	case RoleSystem:
		return "System"
	default:
		return string(r)
	}
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is a single entry in the chat transcript.
//
// A message is immutable once finalized. The one exception is the pending bot
// message created by Transcript.AddThinking: its Text is rewritten in place
// while the typewriter reveals the answer, and its Time is stamped when the
// reveal (or the error path) finishes. That message is always addressed by
// ID, never by position.
type Message struct {
	ID   string
	Role Role
	Text string

	// Time is zero until the message is finalized. User and system messages
	// are stamped on creation; bot messages are stamped when their reveal
	// completes (or immediately on the error and empty-answer paths).
	Time time.Time

	// Thinking marks the pending bot placeholder shown while a request is in
	// flight. At most one message in a transcript has Thinking set.
	Thinking bool

	// Sources lists source references returned with a bot answer, already
	// filtered of empty entries. Rendered as a dim footer when present.
	Sources []string
}

// NewUserMessage creates a timestamped user message.
func NewUserMessage(text string) *Message {
	return &Message{
		ID:   newMessageID(),
		Role: RoleUser,
		Text: text,
		Time: time.Now(),
	}
}

// NewSystemMessage creates a timestamped system message.
func NewSystemMessage(text string) *Message {
	return &Message{
		ID:   newMessageID(),
		Role: RoleSystem,
		Text: text,
		Time: time.Now(),
	}
}

// NewThinkingMessage creates the pending bot placeholder: empty text, no
// timestamp, Thinking set.
func NewThinkingMessage() *Message {
	return &Message{
		ID:       newMessageID(),
		Role:     RoleBot,
		Thinking: true,
	}
}

// IsFinalized reports whether the message has been stamped with a time.
func (m *Message) IsFinalized() bool {
	return !m.Time.IsZero()
}

// newMessageID creates a unique message ID.
func newMessageID() string {
	return "msg_" + uuid.NewString()
}
