// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for depot-tui.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/depot-tui/internal/ui/styles"
	"github.com/jeranaias/depot-tui/internal/util"
)

// =============================================================================
// SUGGESTION DROPDOWN COMPONENT
// =============================================================================

// SuggestionDropdown displays prompt suggestions above the composer.
//
// Navigation clamps at the list edges rather than wrapping: pressing ↑ on the
// first entry stays on the first entry. Index 0 is always the highlight
// default after the list changes.
type SuggestionDropdown struct {
	suggestions []string
	selected    int
	maxVisible  int
	width       int
	theme       *styles.Theme
}

// NewSuggestionDropdown creates a new suggestion dropdown.
func NewSuggestionDropdown(theme *styles.Theme) *SuggestionDropdown {
	return &SuggestionDropdown{
		selected:   0,
		maxVisible: 6,
		width:      50,
		theme:      theme,
	}
}

// SetSuggestions replaces the suggestion list and resets the highlight.
func (d *SuggestionDropdown) SetSuggestions(suggestions []string) {
	d.suggestions = suggestions
	d.selected = 0
}

// Suggestions returns the current suggestion list.
func (d *SuggestionDropdown) Suggestions() []string {
	return d.suggestions
}

// Selected returns the highlighted index.
func (d *SuggestionDropdown) Selected() int {
	return d.selected
}

// Next moves the highlight down, clamped to the last entry.
func (d *SuggestionDropdown) Next() {
	if len(d.suggestions) == 0 {
		return
	}
	d.selected = util.Clamp(d.selected+1, 0, len(d.suggestions)-1)
}

// Prev moves the highlight up, clamped to the first entry.
func (d *SuggestionDropdown) Prev() {
	if len(d.suggestions) == 0 {
		return
	}
	d.selected = util.Clamp(d.selected-1, 0, len(d.suggestions)-1)
}

// SelectedSuggestion returns the highlighted suggestion, or "" when empty.
func (d *SuggestionDropdown) SelectedSuggestion() string {
	if d.selected < 0 || d.selected >= len(d.suggestions) {
		return ""
	}
	return d.suggestions[d.selected]
}

// HasSuggestions returns true if there is anything to show.
func (d *SuggestionDropdown) HasSuggestions() bool {
	return len(d.suggestions) > 0
}

// Clear empties the dropdown.
func (d *SuggestionDropdown) Clear() {
	d.suggestions = nil
	d.selected = 0
}

// SetWidth sets the dropdown width.
func (d *SuggestionDropdown) SetWidth(width int) {
	d.width = width
}

// View renders the dropdown box.
func (d *SuggestionDropdown) View() string {
	if len(d.suggestions) == 0 {
		return ""
	}

	// Scrolling window centered on the highlight.
	start := 0
	end := len(d.suggestions)
	if len(d.suggestions) > d.maxVisible {
		start = d.selected - d.maxVisible/2
		if start < 0 {
			start = 0
		}
		end = start + d.maxVisible
		if end > len(d.suggestions) {
			end = len(d.suggestions)
			start = end - d.maxVisible
			if start < 0 {
				start = 0
			}
		}
	}

	var items []string
	for i := start; i < end; i++ {
		items = append(items, d.renderItem(d.suggestions[i], i == d.selected))
	}

	boxStyle := d.theme.SuggestionPopup.
		Width(d.width).
		MaxWidth(d.width)

	return boxStyle.Render(strings.Join(items, "\n"))
}

// renderItem renders a single suggestion row.
func (d *SuggestionDropdown) renderItem(text string, isSelected bool) string {
	itemStyle := d.theme.SuggestionItem
	indicator := " "
	if isSelected {
		itemStyle = d.theme.SuggestionSelected
		indicator = ">"
	}

	indicatorStyle := lipgloss.NewStyle().
		Width(2).
		Foreground(styles.Cyan)

	// Room for the indicator and box padding.
	text = util.TruncateWidth(text, d.width-6)

	return lipgloss.JoinHorizontal(
		lipgloss.Left,
		indicatorStyle.Render(indicator),
		itemStyle.Render(text),
	)
}
