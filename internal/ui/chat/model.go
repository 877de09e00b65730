// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/phonewise-tui/internal/api"
	"github.com/jeranaias/phonewise-tui/internal/config"
	"github.com/jeranaias/phonewise-tui/internal/model"
	"github.com/jeranaias/phonewise-tui/internal/session"
	"github.com/jeranaias/phonewise-tui/internal/store"
	"github.com/jeranaias/phonewise-tui/internal/ui/components"
	"github.com/jeranaias/phonewise-tui/internal/ui/styles"
)

// =============================================================================
// CHAT STATE
// =============================================================================

// State represents the current state of the chat view.
type State int

const (
	StateReady    State = iota // Ready for input
	StateThinking              // Waiting on the assistant
	StateCompare               // Compare table overlay visible
	StateError                 // Showing an error banner
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view.
type Model struct {
	// State
	state State

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Domain state
	chat     *store.ChatStore
	sessions *session.Store
	client   *api.Client

	// UI components
	header    *components.Header
	viewport  *components.ChatViewport
	input     *components.InputArea
	statusBar *components.StatusBar
	spinner   components.Spinner
	probe     components.InlineSpinner
	welcome   components.Welcome

	// Compare overlay
	compareTable *components.CompareTable

	// Backend health
	health components.HealthState

	// Key bindings
	keyMap KeyMap

	// Error banner (transport/compare failures, not send fallbacks)
	errText string

	// Display options from config
	showIntents bool
	maxCards    int
}

// New creates a new chat model wired to the given stores and client.
func New(theme *styles.Theme, client *api.Client, sessions *session.Store, chatStore *store.ChatStore) Model {
	vp := components.NewChatViewport(theme)
	vp.SetCompareStateFunc(compareStateFunc(chatStore))

	input := components.NewInputArea(theme)
	input.Focus()

	welcome := components.NewWelcome(theme)
	welcome.SetVersion(api.Version)
	if client != nil {
		welcome.SetBaseURL(client.BaseURL())
	}

	header := components.NewHeader(theme)
	if client != nil {
		header.SetBaseURL(client.BaseURL())
	}

	statusBar := components.NewStatusBar(theme)
	if sessions != nil {
		statusBar.SetSessionID(sessions.ID())
	}

	m := Model{
		state:     StateReady,
		theme:     theme,
		chat:      chatStore,
		sessions:  sessions,
		client:    client,
		header:    header,
		viewport:  vp,
		input:     input,
		statusBar: statusBar,
		spinner:   components.NewThinkingSpinner(),
		probe:     components.NewInlineSpinner(),
		welcome:   welcome,
		health:    components.HealthUnknown,
		keyMap:    DefaultKeyMap(),
		maxCards:  5,
	}

	if cfg := config.Global(); cfg != nil {
		m.showIntents = cfg.UI.ShowIntents
		if cfg.Chat.MaxCards > 0 {
			m.maxCards = cfg.Chat.MaxCards
		}
	}
	vp.SetShowIntents(m.showIntents)
	vp.SetMaxCards(m.maxCards)

	return m
}

// compareStateFunc derives the per-product compare tag state from the
// store. The store is the single source of truth; components never
// track membership themselves.
func compareStateFunc(s *store.ChatStore) func(id int) components.CompareState {
	return func(id int) components.CompareState {
		switch {
		case s == nil:
			return components.CompareAvailable
		case s.InCompare(id):
			return components.CompareSelected
		case !s.CanAddToCompare():
			return components.CompareFull
		default:
			return components.CompareAvailable
		}
	}
}

// Init starts the cursor blink, the first health probe, and a
// best-effort restore of the server-side transcript for this session.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.input.Focus(),
		m.probe.Start(),
		HealthCheckCmd(m.client),
		HealthTickCmd(),
	}

	if m.sessions != nil && m.sessions.ID() != "" {
		limit := 50
		if cfg := config.Global(); cfg != nil && cfg.Chat.HistoryLimit > 0 {
			limit = cfg.Chat.HistoryLimit
		}
		cmds = append(cmds, HistoryCmd(m.client, m.sessions.ID(), limit))
	}

	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ChatResponseMsg:
		return m.handleChatResponse(msg)

	case CompareResultMsg:
		return m.handleCompareResult(msg)

	case HealthMsg:
		return m.handleHealth(msg)

	case HealthTickMsg:
		return m, tea.Batch(HealthCheckCmd(m.client), HealthTickCmd())

	case SessionResetMsg:
		return m.handleSessionReset(msg)

	case HistoryMsg:
		return m.handleHistory(msg)

	case HistoryClearedMsg:
		if msg.Err != nil {
			log.Printf("chat: server-side clear failed: %v", msg.Err)
		}
		return m, nil

	case ChatClearedMsg:
		m.refreshTranscript()
		return m, nil

	case ErrorDismissMsg:
		m.errText = ""
		m.state = StateReady
		return m, m.input.Focus()

	default:
		var cmds []tea.Cmd

		// Keep the spinner animating while waiting on the assistant.
		var spCmd tea.Cmd
		m.spinner, spCmd = m.spinner.Update(msg)
		cmds = append(cmds, spCmd)

		// The probe spinner runs until the first health result lands.
		var prCmd tea.Cmd
		m.probe, prCmd = m.probe.Update(msg)
		cmds = append(cmds, prCmd)

		var vpCmd tea.Cmd
		m.viewport, vpCmd = m.viewport.Update(msg)
		cmds = append(cmds, vpCmd)

		if m.state == StateReady {
			var inCmd tea.Cmd
			m.input, inCmd = m.input.Update(msg)
			cmds = append(cmds, inCmd)
		}

		return m, tea.Batch(cmds...)
	}
}

// View renders the chat view.
func (m Model) View() string {
	return m.renderChat()
}

// =============================================================================
// RESIZE
// =============================================================================

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	// Layout: header + viewport (dynamic) + input area + status bar.
	// Conservative estimates (slightly larger than actual) prevent the
	// viewport from overflowing the terminal during resize.
	const (
		headerHeight    = 4
		inputAreaHeight = 4
		statusBarHeight = 2
	)

	viewportHeight := m.height - headerHeight - inputAreaHeight - statusBarHeight
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	m.header.SetWidth(m.width)
	m.viewport.SetSize(m.width, viewportHeight)
	m.input.SetWidth(m.width)
	m.statusBar.SetWidth(m.width)
	m.welcome.SetSize(m.width, viewportHeight)
	if m.compareTable != nil {
		m.compareTable.SetWidth(m.width - 4)
	}

	if m.theme != nil {
		m.theme.SetSize(m.width, m.height)
	}

	return m, nil
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	// Ctrl+C always quits regardless of state.
	if keyStr == "ctrl+c" || keyStr == "ctrl+q" {
		return m, tea.Quit
	}

	// Error banner: any of the dismiss keys clears it.
	if m.state == StateError {
		if keyStr == "esc" || keyStr == "enter" {
			m.errText = ""
			m.state = StateReady
			return m, m.input.Focus()
		}
		return m, nil
	}

	// Compare overlay swallows everything except close and scroll.
	if m.state == StateCompare {
		switch keyStr {
		case "esc", "q", "ctrl+k":
			m.state = StateReady
			m.compareTable = nil
			return m, m.input.Focus()
		}
		var vpCmd tea.Cmd
		m.viewport, vpCmd = m.viewport.Update(msg)
		return m, vpCmd
	}

	switch keyStr {
	case "enter":
		if m.state == StateThinking {
			return m, nil
		}
		return m.submitInput()

	case "ctrl+k":
		return m.openCompare()

	case "ctrl+n":
		return m.newChat()

	case "ctrl+l":
		return m.clearChat()

	case "up", "down", "pgup", "pgdown", "home", "end", "ctrl+u", "ctrl+d":
		var vpCmd tea.Cmd
		m.viewport, vpCmd = m.viewport.Update(msg)
		return m, vpCmd
	}

	// Bare digits pick a suggestion when the input box is empty.
	if len(keyStr) == 1 && keyStr[0] >= '1' && keyStr[0] <= '9' && m.input.Value() == "" {
		if text := m.suggestionAt(int(keyStr[0] - '0')); text != "" {
			return m.sendMessage(text)
		}
	}

	// Alt+digit toggles compare membership for the Nth card of the
	// latest recommendation.
	if strings.HasPrefix(keyStr, "alt+") && len(keyStr) == 5 && keyStr[4] >= '1' && keyStr[4] <= '9' {
		m.toggleCompareAt(int(keyStr[4] - '0'))
		m.refreshTranscript()
		return m, nil
	}

	// Everything else goes to the text input.
	if m.state == StateReady {
		var inCmd tea.Cmd
		m.input, inCmd = m.input.Update(msg)
		return m, inCmd
	}

	return m, nil
}

// =============================================================================
// INPUT SUBMISSION
// =============================================================================

// submitInput sends the current input box contents as a chat message.
func (m Model) submitInput() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}

	m.input.Reset()
	return m.sendMessage(text)
}

// sendMessage runs the send state machine: optimistic user append and
// loading flag before the request goes out, exactly one request per
// call. Requires an established session id; without one nothing is
// appended and nothing is sent, only the operator log hears about it.
func (m Model) sendMessage(text string) (tea.Model, tea.Cmd) {
	if m.chat.Loading() {
		return m, nil
	}

	sessionID := ""
	if m.sessions != nil {
		sessionID = m.sessions.ID()
	}
	if sessionID == "" {
		log.Printf("chat: send aborted, no session id established")
		return m, nil
	}

	m.chat.Append(model.NewUserMessage(text))
	m.chat.SetLoading(true)
	m.state = StateThinking
	m.refreshTranscript()
	m.viewport.ScrollToBottom()

	epoch := m.chat.Epoch()
	return m, tea.Batch(
		m.spinner.Start(),
		SendMessageCmd(m.client, sessionID, text, epoch),
	)
}

// suggestionAt resolves digit key n to a suggestion: follow-ups from
// the latest assistant message first, starter suggestions on the
// welcome screen.
func (m Model) suggestionAt(n int) string {
	msgs := m.chat.Messages()
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role != model.RoleAssistant {
			continue
		}
		if n <= len(msgs[i].Suggestions) {
			return msgs[i].Suggestions[n-1]
		}
		return ""
	}

	if len(msgs) == 0 && n <= len(components.StarterSuggestions) {
		return components.StarterSuggestions[n-1]
	}
	return ""
}

// toggleCompareAt toggles compare membership for card n of the most
// recent assistant message carrying products. Adds beyond capacity are
// silent no-ops in the store.
func (m *Model) toggleCompareAt(n int) {
	msgs := m.chat.Messages()
	for i := len(msgs) - 1; i >= 0; i-- {
		phones := msgs[i].Phones
		if msgs[i].Role != model.RoleAssistant || len(phones) == 0 {
			continue
		}
		if n > len(phones) || n > m.maxCards {
			return
		}
		p := phones[n-1]
		if m.chat.InCompare(p.ID) {
			m.chat.RemoveFromCompare(p.ID)
		} else {
			m.chat.AddToCompare(p)
		}
		return
	}
}

// =============================================================================
// CHAT ACTIONS
// =============================================================================

// openCompare fetches the comparison table for the compare-list.
func (m Model) openCompare() (tea.Model, tea.Cmd) {
	ids := m.chat.CompareIDs()
	if len(ids) < store.MinCompare {
		m.errText = "Select at least 2 phones to compare (alt+1..alt+" + digit(m.maxCards) + " on a recommendation)."
		m.state = StateError
		return m, nil
	}

	m.state = StateThinking
	m.chat.SetLoading(true)
	return m, tea.Batch(
		m.spinner.Start(),
		CompareCmd(m.client, ids),
	)
}

// newChat clears the transcript and rotates the session id.
func (m Model) newChat() (tea.Model, tea.Cmd) {
	m.chat.ClearMessages()
	m.chat.SetLoading(false)
	m.spinner.Stop()
	m.state = StateReady
	m.refreshTranscript()
	return m, tea.Batch(
		m.input.Focus(),
		NewSessionCmd(m.sessions),
	)
}

// clearChat clears the local transcript but keeps the session. The
// server-side transcript is cleared too so /history stays in step.
func (m Model) clearChat() (tea.Model, tea.Cmd) {
	m.chat.ClearMessages()
	m.chat.SetLoading(false)
	m.spinner.Stop()
	m.state = StateReady
	m.refreshTranscript()

	cmds := []tea.Cmd{m.input.Focus()}
	if m.sessions != nil && m.sessions.ID() != "" {
		cmds = append(cmds, ClearHistoryCmd(m.client, m.sessions.ID()))
	}
	return m, tea.Batch(cmds...)
}

// refreshTranscript re-renders the viewport from the store.
func (m *Model) refreshTranscript() {
	m.viewport.SetMessages(m.chat.Messages())
	m.statusBar.SetCompareCount(m.chat.CompareCount())
}

// digit formats a single small positive number for inline help text.
func digit(n int) string {
	if n < 1 || n > 9 {
		return "4"
	}
	return string(rune('0' + n))
}

// =============================================================================
// ACCESSORS
// =============================================================================

// GetState returns the current view state.
func (m *Model) GetState() State {
	return m.state
}

// GetHealth returns the last observed backend health.
func (m *Model) GetHealth() components.HealthState {
	return m.health
}

// IsLoading reports whether a send or compare is in flight.
func (m *Model) IsLoading() bool {
	return m.chat.Loading()
}
