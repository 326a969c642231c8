// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for depot-tui.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/depot-tui/internal/suggest"
	"github.com/jeranaias/depot-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// Health is the tri-state service health indicator.
type Health int

const (
	// HealthUnknown means the startup probe has not returned yet.
	HealthUnknown Health = iota
	// HealthUp means /status reported ok.
	HealthUp
	// HealthDown means the probe failed or reported not-ok.
	HealthDown
)

// String returns the display string for the health state.
func (h Health) String() string {
	switch h {
	case HealthUp:
		return "online"
	case HealthDown:
		return "offline"
	default:
		return "checking"
	}
}

// Icon returns an ASCII shape indicator for the health state.
func (h Health) Icon() string {
	switch h {
	case HealthUp:
		return "[*]"
	case HealthDown:
		return "[X]"
	default:
		return "[ ]"
	}
}

// StatusBar renders the bottom bar: active mode badge, service health, and
// keyboard shortcuts.
type StatusBar struct {
	Mode          suggest.Mode
	Health        Health
	Busy          bool
	Width         int
	ShowShortcuts bool
	theme         *styles.Theme
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Mode:          suggest.ModeWeb,
		Health:        HealthUnknown,
		Width:         80,
		ShowShortcuts: true,
		theme:         theme,
	}
}

// SetWidth updates the status bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// View renders the status bar.
func (s *StatusBar) View() string {
	mode := s.renderMode()
	health := s.renderHealth()

	left := mode + " " + health
	if s.Busy {
		left += " " + s.theme.ThinkingText.Render("working...")
	}

	right := ""
	if s.ShowShortcuts {
		right = s.renderShortcuts()
	}

	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
		right = ""
	}

	bar := left + strings.Repeat(" ", gap) + right
	return s.theme.StatusBar.Width(s.Width).Render(bar)
}

// renderMode renders the active mode badge.
func (s *StatusBar) renderMode() string {
	if s.Mode == suggest.ModeGA {
		return s.theme.ModeGA.Render(s.Mode.DisplayName())
	}
	return s.theme.ModeWeb.Render(s.Mode.DisplayName())
}

// renderHealth renders the tri-state health dot.
func (s *StatusBar) renderHealth() string {
	label := s.Health.Icon() + " " + s.Health.String()
	switch s.Health {
	case HealthUp:
		return s.theme.HealthUp.Render(label)
	case HealthDown:
		return s.theme.HealthDown.Render(label)
	default:
		return s.theme.HealthUnknown.Render(label)
	}
}

// renderShortcuts renders the keyboard shortcut hints.
func (s *StatusBar) renderShortcuts() string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"^G", "mode"},
		{"Esc", "close"},
		{"^C", "quit"},
	}

	var parts []string
	for _, sc := range shortcuts {
		parts = append(parts,
			s.theme.ShortcutKey.Render(sc.key)+" "+s.theme.ShortcutDesc.Render(sc.desc))
	}
	return strings.Join(parts, "  ")
}

// =============================================================================
// QUICK PROMPT CHIPS
// =============================================================================

// Chips renders the mode-specific quick prompt chips shown above the composer
// when the transcript is empty.
func Chips(theme *styles.Theme, mode suggest.Mode, width int) string {
	prompts := suggest.For(mode, "")
	if len(prompts) > 3 {
		prompts = prompts[:3]
	}

	var rendered []string
	for _, p := range prompts {
		rendered = append(rendered, theme.Chip.Render(p))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	if lipgloss.Width(row) > width && len(rendered) > 0 {
		row = lipgloss.JoinVertical(lipgloss.Left, rendered...)
	}
	return row
}
