// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jeranaias/depot-tui/internal/ui/styles"
)

func TestDropdownNavigationClampsAtEdges(t *testing.T) {
	d := NewSuggestionDropdown(styles.NewTheme())
	d.SetSuggestions([]string{"one", "two", "three"})

	assert.Equal(t, 0, d.Selected(), "highlight resets to the top")

	d.Prev()
	assert.Equal(t, 0, d.Selected(), "up at the top stays at the top")

	d.Next()
	d.Next()
	d.Next()
	d.Next()
	assert.Equal(t, 2, d.Selected(), "down at the bottom stays at the bottom")
	assert.Equal(t, "three", d.SelectedSuggestion())
}

func TestDropdownSetSuggestionsResetsHighlight(t *testing.T) {
	d := NewSuggestionDropdown(styles.NewTheme())
	d.SetSuggestions([]string{"a", "b", "c"})
	d.Next()
	d.Next()

	d.SetSuggestions([]string{"x", "y"})
	assert.Equal(t, 0, d.Selected())
	assert.Equal(t, "x", d.SelectedSuggestion())
}

func TestDropdownEmpty(t *testing.T) {
	d := NewSuggestionDropdown(styles.NewTheme())

	assert.False(t, d.HasSuggestions())
	assert.Empty(t, d.SelectedSuggestion())
	assert.Empty(t, d.View())

	d.Next()
	d.Prev()
	assert.Equal(t, 0, d.Selected())
}

func TestDropdownViewMarksSelection(t *testing.T) {
	d := NewSuggestionDropdown(styles.NewTheme())
	d.SetSuggestions([]string{"alpha", "beta"})
	d.Next()

	view := d.View()
	assert.Contains(t, view, ">")
	assert.Contains(t, view, "alpha")
	assert.Contains(t, view, "beta")
}

func TestDropdownClear(t *testing.T) {
	d := NewSuggestionDropdown(styles.NewTheme())
	d.SetSuggestions([]string{"a"})
	d.Clear()

	assert.False(t, d.HasSuggestions())
	assert.Empty(t, d.View())
}

func TestStatusBarView(t *testing.T) {
	bar := NewStatusBar(styles.NewTheme())
	bar.SetWidth(100)

	view := bar.View()
	assert.Contains(t, view, "Web")
	assert.Contains(t, view, "checking")

	bar.Health = HealthUp
	assert.Contains(t, bar.View(), "online")

	bar.Health = HealthDown
	assert.Contains(t, bar.View(), "offline")
}

func TestStatusBarBusyIndicator(t *testing.T) {
	bar := NewStatusBar(styles.NewTheme())
	bar.SetWidth(100)
	bar.Busy = true

	assert.Contains(t, bar.View(), "working...")
}

func TestChipsRenderModePrompts(t *testing.T) {
	chips := Chips(styles.NewTheme(), "ga", 200)
	assert.Contains(t, chips, "top pages")

	webChips := Chips(styles.NewTheme(), "web", 200)
	assert.False(t, strings.Contains(webChips, "top pages"))
}
