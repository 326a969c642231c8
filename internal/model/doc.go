// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat transcript.
//
// A Transcript is an ordered, append-only list of Messages. The only in-place
// mutation the package allows is finalizing the single pending bot message
// (the "thinking" placeholder) that exists while a question is being answered,
// and that mutation is always addressed by message ID so callers never have to
// scan backwards for "the last bot message".
package model
