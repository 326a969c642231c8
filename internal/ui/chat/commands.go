// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file implements the command handler registry pattern: each slash
// command is an individual, testable handler function.
package chat

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/depot-tui/internal/suggest"
	"github.com/jeranaias/depot-tui/internal/ui/components"
)

// =============================================================================
// COMMAND HANDLER REGISTRY
// =============================================================================

// CommandHandler is a function that handles a specific command.
// It receives the model and command arguments, and returns an updated model
// and command.
type CommandHandler func(m *Model, args []string) (tea.Model, tea.Cmd)

// commandHandlers maps command names to their handler functions.
var commandHandlers = map[string]CommandHandler{
	// Help & Meta
	"help": handleHelpCommand,
	"h":    handleHelpCommand,
	"?":    handleHelpCommand,
	"quit": handleQuitCommand,
	"q":    handleQuitCommand,
	"exit": handleQuitCommand,

	// Transcript
	"clear": handleClearCommand,
	"c":     handleClearCommand,

	// Mode & Service
	"mode":   handleModeCommand,
	"m":      handleModeCommand,
	"status": handleStatusCommand,
}

// handleCommand processes slash commands using the command registry pattern.
func (m Model) handleCommand(content string) (tea.Model, tea.Cmd) {
	m.input.Reset()
	m.closeDropdown()

	parts := strings.Fields(content)
	if len(parts) == 0 {
		return m, nil
	}

	cmdName := strings.ToLower(strings.TrimPrefix(parts[0], "/"))
	args := parts[1:]

	if handler, ok := commandHandlers[cmdName]; ok {
		return handler(&m, args)
	}

	m.transcript.AddSystem("Unknown command '" + content + "'. Type /help for available commands.")
	m.updateViewport()
	return m, nil
}

// =============================================================================
// HELP AND META COMMANDS
// =============================================================================

func handleHelpCommand(m *Model, args []string) (tea.Model, tea.Cmd) {
	help := strings.Join([]string{
		"Available commands:",
		"  /help          show this help",
		"  /clear         clear the transcript",
		"  /mode [web|ga] switch or set the question mode",
		"  /status        re-check service health",
		"  /quit          exit",
		"",
		"Keys: Ctrl+G toggles mode, ↑/↓ navigate suggestions, Enter runs one,",
		"Esc closes the dropdown or skips the answer reveal.",
	}, "\n")

	m.transcript.AddSystem(help)
	m.updateViewport()
	return *m, nil
}

func handleQuitCommand(m *Model, args []string) (tea.Model, tea.Cmd) {
	return *m, tea.Quit
}

// =============================================================================
// TRANSCRIPT COMMANDS
// =============================================================================

func handleClearCommand(m *Model, args []string) (tea.Model, tea.Cmd) {
	// Clearing mid-request would orphan the placeholder; the pending ID check
	// already drops its messages, so just forget it.
	m.transcript.Clear()
	m.pendingID = ""
	m.writer = nil
	m.state = StateReady
	m.statusBar.Busy = false
	m.transcript.AddSystem("Transcript cleared.")
	m.updateViewport()
	return *m, nil
}

// =============================================================================
// MODE AND SERVICE COMMANDS
// =============================================================================

func handleModeCommand(m *Model, args []string) (tea.Model, tea.Cmd) {
	if len(args) == 0 {
		m.setMode(m.mode.Toggle())
	} else {
		switch strings.ToLower(args[0]) {
		case "web":
			m.setMode(suggest.ModeWeb)
		case "ga", "analytics":
			m.setMode(suggest.ModeGA)
		default:
			m.transcript.AddSystem("Unknown mode '" + args[0] + "'. Use web or ga.")
			m.updateViewport()
			return *m, nil
		}
	}

	m.transcript.AddSystem("Mode switched to " + m.mode.DisplayName() + ".")
	m.updateViewport()
	return *m, nil
}

func handleStatusCommand(m *Model, args []string) (tea.Model, tea.Cmd) {
	m.statusBar.Health = components.HealthUnknown
	m.transcript.AddSystem("Checking service health...")
	m.updateViewport()
	return *m, m.healthCmd()
}
