// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxRunes int
		want     string
	}{
		{"shorter than max", "hello", 10, "hello"},
		{"exactly max", "hello", 5, "hello"},
		{"truncated with ellipsis", "hello world", 8, "hello..."},
		{"zero max", "hello", 0, ""},
		{"negative max", "hello", -1, ""},
		{"tiny max skips ellipsis", "hello", 2, "he"},
		{"multibyte runes", "héllo wörld", 8, "héllo..."},
		{"empty string", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateRunes(tt.input, tt.maxRunes))
		})
	}
}

func TestTruncateWidth(t *testing.T) {
	// CJK characters occupy two columns each.
	assert.Equal(t, "日本", TruncateWidth("日本", 4))
	got := TruncateWidth("日本語テキスト", 7)
	assert.LessOrEqual(t, StringWidth(got), 7)
	assert.Contains(t, got, "...")

	assert.Equal(t, "", TruncateWidth("anything", 0))
	assert.Equal(t, "abc", TruncateWidth("abc", 10))
}

func TestRunePrefix(t *testing.T) {
	assert.Equal(t, "", RunePrefix("hello", 0))
	assert.Equal(t, "he", RunePrefix("hello", 2))
	assert.Equal(t, "hello", RunePrefix("hello", 5))
	assert.Equal(t, "hello", RunePrefix("hello", 99))
	assert.Equal(t, "hél", RunePrefix("héllo", 3))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 3, Clamp(3, 0, 9))
	assert.Equal(t, 0, Clamp(-4, 0, 9))
	assert.Equal(t, 9, Clamp(20, 0, 9))
	assert.Equal(t, 5, Clamp(5, 5, 5))
}
