// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file renders the chat screen: transcript viewport, quick prompt chips,
// suggestion dropdown, composer, and status bar. Bot answers are markdown
// (the service emits bold headings and bullet lists), rendered with glamour
// through a renderer cached per viewport width and rebuilt on resize.
package chat

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/depot-tui/internal/model"
	"github.com/jeranaias/depot-tui/internal/ui/components"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the full chat screen.
func (m Model) View() string {
	if !m.ready {
		return "Starting depot-tui..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.transcript.IsEmpty() && !m.dropdownOpen {
		chips := components.Chips(m.theme, m.mode, m.width-2)
		if chips != "" {
			b.WriteString(chips)
			b.WriteString("\n")
		}
	}

	if m.dropdownOpen {
		b.WriteString(m.dropdown.View())
		b.WriteString("\n")
	}

	b.WriteString(m.renderComposer())
	b.WriteString("\n")
	b.WriteString(m.statusBar.View())

	return b.String()
}

// renderHeader renders the one-line title bar.
func (m Model) renderHeader() string {
	title := m.theme.HeaderTitle.Render("DataDepot")
	subtitle := m.theme.HeaderSubtitle.Render("ask your data anything")
	return m.theme.Container.Render(title + " " + subtitle)
}

// renderComposer renders the bordered input line.
func (m Model) renderComposer() string {
	return m.theme.InputContainer.
		Width(m.width - 2).
		Render(m.input.View())
}

// =============================================================================
// TRANSCRIPT RENDERING
// =============================================================================

// updateViewport re-renders the transcript into the viewport and follows the
// tail.
func (m *Model) updateViewport() {
	if !m.ready {
		return
	}

	var blocks []string
	for _, msg := range m.transcript.Messages() {
		blocks = append(blocks, m.renderMessage(msg))
	}

	m.viewport.SetContent(strings.Join(blocks, "\n\n"))
	m.viewport.GotoBottom()
}

// renderMessage renders one transcript entry with its sender label and
// timestamp.
func (m *Model) renderMessage(msg *model.Message) string {
	label := m.theme.SenderLabel.Render(msg.Role.DisplayName())
	if msg.IsFinalized() {
		label += " " + m.theme.Timestamp.Render(msg.Time.Format("15:04"))
	}

	body := msg.Text
	bubble := m.theme.SystemBubble

	switch msg.Role {
	case model.RoleUser:
		bubble = m.theme.UserBubble
	case model.RoleBot:
		bubble = m.theme.BotBubble
		switch {
		case msg.Thinking:
			body = m.spinner.View() + " " + m.theme.ThinkingText.Render("thinking...")
		case strings.HasPrefix(msg.Text, "Error: "):
			body = m.theme.ErrorText.Render(msg.Text)
		default:
			body = m.renderMarkdown(msg.Text)
			if len(msg.Sources) > 0 {
				body += "\n" + m.theme.SourceLine.Render("Sources: "+strings.Join(msg.Sources, ", "))
			}
		}
	}

	width := m.viewport.Width - 4
	if width < 10 {
		width = 10
	}

	block := bubble.Width(width).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, label, block)
}

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// renderMarkdown renders bot markdown for terminal display. Returns the
// original content if rendering fails or the renderer is unavailable.
func (m *Model) renderMarkdown(content string) string {
	renderer := m.markdownRenderer()
	if renderer == nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}

// markdownRenderer returns the width-bound glamour renderer, rebuilding it
// after a resize.
func (m *Model) markdownRenderer() *glamour.TermRenderer {
	width := m.viewport.Width - 6
	if width < 20 {
		width = 20
	}

	if m.renderer != nil && m.rendererWidth == width {
		return m.renderer
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.theme.GlamourStyle(m.cfg.UI.Theme)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}

	m.renderer = renderer
	m.rendererWidth = width
	return renderer
}
