// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat transcript.
package model

import (
	"strings"
	"time"
)

// =============================================================================
// TRANSCRIPT TYPE
// =============================================================================

// Transcript holds the ordered chat history for a session.
//
// The transcript is append-only: messages are never removed or reordered
// except by Clear. The single pending bot message (Thinking == true) may be
// updated in place through the ID-addressed mutators below.
type Transcript struct {
	messages []*Message
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{
		messages: make([]*Message, 0),
	}
}

// =============================================================================
// APPENDING
// =============================================================================

// AddUser appends a timestamped user message and returns it.
func (t *Transcript) AddUser(text string) *Message {
	msg := NewUserMessage(text)
	t.messages = append(t.messages, msg)
	return msg
}

// AddSystem appends a timestamped system message and returns it.
func (t *Transcript) AddSystem(text string) *Message {
	msg := NewSystemMessage(text)
	t.messages = append(t.messages, msg)
	return msg
}

// AddThinking appends the pending bot placeholder and returns it. The caller
// keeps the returned message's ID and finalizes it through ResolveAnswer,
// SetAnswerText, FinalizeAnswer or FailAnswer; the placeholder is never
// located by scanning for the last bot-role entry.
//
// Invariant: at most one message has Thinking set. Any previous placeholder
// has been finalized before a new submission is accepted (the busy flag in
// the chat model enforces this).
func (t *Transcript) AddThinking() *Message {
	msg := NewThinkingMessage()
	t.messages = append(t.messages, msg)
	return msg
}

// =============================================================================
// ID-ADDRESSED MUTATION
// =============================================================================

// ByID returns the message with the given ID, or nil.
func (t *Transcript) ByID(id string) *Message {
	for _, msg := range t.messages {
		if msg.ID == id {
			return msg
		}
	}
	return nil
}

// ResolveAnswer turns the placeholder into an empty, non-thinking bot message
// ready for the typewriter reveal. Returns false if the ID is unknown.
func (t *Transcript) ResolveAnswer(id string, sources []string) bool {
	msg := t.ByID(id)
	if msg == nil {
		return false
	}
	msg.Thinking = false
	msg.Text = ""
	msg.Sources = filterSources(sources)
	return true
}

// SetAnswerText updates the visible text of a pending bot message during the
// reveal. The timestamp stays unset until FinalizeAnswer.
func (t *Transcript) SetAnswerText(id string, text string) bool {
	msg := t.ByID(id)
	if msg == nil {
		return false
	}
	msg.Text = text
	return true
}

// FinalizeAnswer sets the full answer text and stamps the completion time.
func (t *Transcript) FinalizeAnswer(id string, text string) bool {
	msg := t.ByID(id)
	if msg == nil {
		return false
	}
	msg.Thinking = false
	msg.Text = text
	msg.Time = time.Now()
	return true
}

// FailAnswer finalizes the placeholder on the error path: the text becomes
// "Error: " plus the failure message, Thinking is cleared and the timestamp
// is stamped immediately. No reveal animation runs for errors.
func (t *Transcript) FailAnswer(id string, errText string) bool {
	msg := t.ByID(id)
	if msg == nil {
		return false
	}
	msg.Thinking = false
	msg.Text = "Error: " + errText
	msg.Time = time.Now()
	return true
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Messages returns the ordered history for rendering.
func (t *Transcript) Messages() []*Message {
	return t.messages
}

// Last returns the most recent message, or nil if the transcript is empty.
func (t *Transcript) Last() *Message {
	if len(t.messages) == 0 {
		return nil
	}
	return t.messages[len(t.messages)-1]
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// IsEmpty reports whether the transcript has no messages.
func (t *Transcript) IsEmpty() bool {
	return len(t.messages) == 0
}

// HasThinking reports whether a pending placeholder is present.
func (t *Transcript) HasThinking() bool {
	for _, msg := range t.messages {
		if msg.Thinking {
			return true
		}
	}
	return false
}

// Clear removes all messages.
func (t *Transcript) Clear() {
	t.messages = make([]*Message, 0)
}

// filterSources drops empty and whitespace-only source entries.
func filterSources(sources []string) []string {
	if len(sources) == 0 {
		return nil
	}
	out := make([]string, 0, len(sources))
	for _, s := range sources {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
