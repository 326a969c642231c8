// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/depot-tui/internal/api"
	"github.com/jeranaias/depot-tui/internal/config"
	"github.com/jeranaias/depot-tui/internal/model"
	"github.com/jeranaias/depot-tui/internal/suggest"
	"github.com/jeranaias/depot-tui/internal/ui/components"
	"github.com/jeranaias/depot-tui/internal/ui/styles"
)

// =============================================================================
// STATE
// =============================================================================

// State is the request lifecycle state of the chat.
type State int

const (
	// StateReady accepts new submissions.
	StateReady State = iota
	// StateAsking has a request in flight (or waiting out the think delay).
	StateAsking
	// StateRevealing is animating the answer text.
	StateRevealing
)

// Busy reports whether a submission would be rejected. The reveal counts as
// busy so a second question cannot land while the previous answer is still
// being typed out.
func (s State) Busy() bool {
	return s != StateReady
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat screen.
type Model struct {
	// Dependencies
	client *api.Client
	cfg    *config.Config
	theme  *styles.Theme

	// Conversation
	transcript *model.Transcript

	// Request lifecycle
	state     State
	pendingID string // placeholder message of the in-flight request
	writer    *Typewriter

	// Mode
	mode suggest.Mode

	// UI components
	viewport  viewport.Model
	input     textinput.Model
	spinner   spinner.Model
	dropdown  *components.SuggestionDropdown
	statusBar *components.StatusBar

	dropdownOpen bool

	// Markdown rendering (cached per width)
	renderer      *glamour.TermRenderer
	rendererWidth int

	// Layout
	width  int
	height int
	ready  bool
}

// New creates a new chat model.
func New(theme *styles.Theme, client *api.Client, cfg *config.Config) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask DataDepot anything..."
	ti.CharLimit = cfg.UI.InputCharLimit
	ti.Focus()

	vp := viewport.New(80, 20)
	vp.SetContent("")

	sp := spinner.New()
	sp.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 30, // match the reveal tick rate
	}
	sp.Style = theme.Spinner

	return Model{
		client:     client,
		cfg:        cfg,
		theme:      theme,
		transcript: model.NewTranscript(),
		state:      StateReady,
		mode:       suggest.ModeWeb,
		viewport:   vp,
		input:      ti,
		spinner:    sp,
		dropdown:   components.NewSuggestionDropdown(theme),
		statusBar:  components.NewStatusBar(theme),
	}
}

// Mode returns the active suggestion/prefix mode.
func (m Model) Mode() suggest.Mode {
	return m.mode
}

// WithMode returns a copy of the model with the given starting mode.
func (m Model) WithMode(mode suggest.Mode) Model {
	m.setMode(mode)
	return m
}

// Transcript exposes the conversation for tests and the export command.
func (m Model) Transcript() *model.Transcript {
	return m.transcript
}

// State returns the request lifecycle state.
func (m Model) State() State {
	return m.state
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init initializes the model: cursor blink, spinner, and the startup health
// probe.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		m.healthCmd(),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.transcript.HasThinking() {
			m.updateViewport()
		}
		return m, cmd

	case HealthMsg:
		return m.handleHealth(msg)

	case AskResultMsg:
		return m.handleAskResult(msg)

	case AskErrorMsg:
		return m.handleAskError(msg)

	case ThinkDoneMsg:
		return m.handleThinkDone(msg)

	case TypeTickMsg:
		return m.handleTypeTick(msg)
	}

	return m, nil
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "ctrl+g":
		m.setMode(m.mode.Toggle())
		return m, nil

	case "esc":
		return m.handleEscape()

	case "enter":
		return m.handleEnter()

	case "up":
		if m.dropdownOpen {
			m.dropdown.Prev()
			return m, nil
		}
		m.viewport.LineUp(1)
		return m, nil

	case "down":
		if m.dropdownOpen {
			m.dropdown.Next()
			return m, nil
		}
		m.viewport.LineDown(1)
		return m, nil

	case "pgup":
		m.viewport.HalfViewUp()
		return m, nil

	case "pgdown":
		m.viewport.HalfViewDown()
		return m, nil
	}

	// Everything else edits the composer; suggestions follow the text.
	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refreshSuggestions()
	}
	return m, cmd
}

// handleEscape closes the dropdown first; with the dropdown already closed it
// skips the running reveal instead. An armed writer counts even while the
// think delay is still pending, so Esc always shows the full answer at once.
func (m Model) handleEscape() (tea.Model, tea.Cmd) {
	if m.dropdownOpen {
		m.closeDropdown()
		return m, nil
	}

	if m.writer != nil && m.state.Busy() {
		m.transcript.FinalizeAnswer(m.writer.MessageID(), m.writer.Finish())
		m.finishRequest()
		m.updateViewport()
		return m, nil
	}

	return m, nil
}

// handleEnter runs the highlighted suggestion when the dropdown is open,
// otherwise submits the composer.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	if m.dropdownOpen && m.dropdown.HasSuggestions() {
		text := m.dropdown.SelectedSuggestion()
		m.closeDropdown()
		return m.submit(text)
	}
	return m.submit(m.input.Value())
}

// =============================================================================
// SUBMISSION LIFECYCLE
// =============================================================================

// submit drives a question through the full request lifecycle.
func (m Model) submit(text string) (tea.Model, tea.Cmd) {
	text = strings.TrimSpace(text)
	if text == "" || m.state.Busy() {
		return m, nil
	}

	if strings.HasPrefix(text, "/") {
		return m.handleCommand(text)
	}

	if m.mode == suggest.ModeGA {
		text = "GA: " + text
	}

	m.input.Reset()
	m.closeDropdown()

	m.transcript.AddUser(text)
	placeholder := m.transcript.AddThinking()

	m.state = StateAsking
	m.pendingID = placeholder.ID
	m.statusBar.Busy = true
	m.updateViewport()

	return m, m.askCmd(placeholder.ID, text)
}

// askCmd issues the HTTP request in a goroutine and reports back with the
// placeholder ID attached.
func (m Model) askCmd(messageID, question string) tea.Cmd {
	client := m.client
	opts := api.AskOptions{}
	if m.mode == suggest.ModeWeb {
		opts.Web = m.cfg.API.Web
		opts.WebDomains = m.cfg.API.WebDomains
	}

	return func() tea.Msg {
		resp, err := client.Ask(context.Background(), question, opts)
		if err != nil {
			return AskErrorMsg{MessageID: messageID, Err: err}
		}
		return AskResultMsg{MessageID: messageID, Answer: resp.Answer, Sources: resp.Sources}
	}
}

// healthCmd probes /status once.
func (m Model) healthCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		status, err := client.Status(ctx)
		return HealthMsg{Status: status, Err: err}
	}
}

func (m Model) handleHealth(msg HealthMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Err != nil, msg.Status == nil:
		m.statusBar.Health = components.HealthDown
	case msg.Status.OK:
		m.statusBar.Health = components.HealthUp
	default:
		m.statusBar.Health = components.HealthDown
	}
	return m, nil
}

func (m Model) handleAskResult(msg AskResultMsg) (tea.Model, tea.Cmd) {
	if msg.MessageID != m.pendingID {
		return m, nil
	}

	m.transcript.ResolveAnswer(msg.MessageID, msg.Sources)

	answer := strings.TrimSpace(msg.Answer)
	if answer == "" {
		// Nothing to reveal: finalize immediately with empty text.
		m.transcript.FinalizeAnswer(msg.MessageID, "")
		m.finishRequest()
		m.updateViewport()
		return m, nil
	}

	m.writer = NewTypewriter(
		msg.MessageID,
		answer,
		m.cfg.Typing.CharsPerSecond,
		time.Duration(m.cfg.Typing.MinStepMs)*time.Millisecond,
	)
	m.updateViewport()

	return m, thinkDelayCmd(msg.MessageID, m.cfg.Typing.MinThinkMs, m.cfg.Typing.MaxThinkMs)
}

func (m Model) handleAskError(msg AskErrorMsg) (tea.Model, tea.Cmd) {
	if msg.MessageID != m.pendingID {
		return m, nil
	}

	m.transcript.FailAnswer(msg.MessageID, msg.Err.Error())
	m.finishRequest()
	m.updateViewport()
	return m, nil
}

func (m Model) handleThinkDone(msg ThinkDoneMsg) (tea.Model, tea.Cmd) {
	if msg.MessageID != m.pendingID || m.writer == nil {
		return m, nil
	}

	m.state = StateRevealing
	m.writer.Start(time.Now())
	return m, typeTickCmd(msg.MessageID)
}

func (m Model) handleTypeTick(msg TypeTickMsg) (tea.Model, tea.Cmd) {
	// Stale ticks from a cleared or skipped reveal carry an old ID.
	if msg.MessageID != m.pendingID || m.writer == nil || m.state != StateRevealing {
		return m, nil
	}

	visible, done := m.writer.Step(msg.Time)
	if done {
		m.transcript.FinalizeAnswer(msg.MessageID, visible)
		m.finishRequest()
		m.updateViewport()
		return m, nil
	}

	m.transcript.SetAnswerText(msg.MessageID, visible)
	m.updateViewport()
	return m, typeTickCmd(msg.MessageID)
}

// finishRequest clears the in-flight state in all terminal paths.
func (m *Model) finishRequest() {
	m.state = StateReady
	m.pendingID = ""
	m.writer = nil
	m.statusBar.Busy = false
}

// =============================================================================
// MODE AND SUGGESTIONS
// =============================================================================

// setMode switches the suggestion generator and prefix mode. The composer
// text and transcript are untouched; the dropdown closes and stays closed
// until the next input change regenerates it for the new mode.
func (m *Model) setMode(mode suggest.Mode) {
	m.mode = mode
	m.statusBar.Mode = mode
	m.closeDropdown()
}

// refreshSuggestions recomputes the dropdown from the current input.
func (m *Model) refreshSuggestions() {
	query := strings.TrimSpace(m.input.Value())
	if query == "" || strings.HasPrefix(query, "/") {
		m.closeDropdown()
		return
	}
	m.dropdown.SetSuggestions(suggest.For(m.mode, query))
	m.dropdownOpen = m.dropdown.HasSuggestions()
}

func (m *Model) closeDropdown() {
	m.dropdown.Clear()
	m.dropdownOpen = false
}

// =============================================================================
// LAYOUT
// =============================================================================

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.Resize(msg.Width, msg.Height)

	headerHeight := 1
	composerHeight := 3
	statusHeight := 1
	vpHeight := msg.Height - headerHeight - composerHeight - statusHeight
	if vpHeight < 3 {
		vpHeight = 3
	}

	m.viewport.Width = msg.Width
	m.viewport.Height = vpHeight
	m.input.Width = msg.Width - 6
	m.statusBar.SetWidth(msg.Width)
	m.dropdown.SetWidth(min(msg.Width-4, 60))
	m.ready = true

	m.updateViewport()
	return m, nil
}
