// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/phonewise-tui/internal/model"
	"github.com/jeranaias/phonewise-tui/internal/ui/components"
)

// =============================================================================
// SEND FALLBACK
// =============================================================================

// The user-facing apology shown in place of a reply when a send fails.
// The real error goes to the operator log only.
const errorFallbackText = "Sorry, I encountered an error. Please try again."

// errorFallbackSuggestions are the recovery follow-ups attached to the
// apology message.
var errorFallbackSuggestions = []string{
	"Try a different question",
	"Start a new conversation",
}

// =============================================================================
// MESSAGE HANDLERS
// =============================================================================

// handleChatResponse settles one send. A result issued under an older
// epoch belongs to a transcript the user has already cleared, so it is
// dropped without touching the store.
func (m Model) handleChatResponse(msg ChatResponseMsg) (tea.Model, tea.Cmd) {
	if msg.Epoch != m.chat.Epoch() {
		log.Printf("chat: discarding stale response (epoch %d, store at %d)", msg.Epoch, m.chat.Epoch())
		return m, nil
	}

	m.chat.SetLoading(false)
	m.spinner.Stop()
	m.state = StateReady

	if msg.Err != nil {
		log.Printf("chat: send failed: %v", msg.Err)
		m.chat.Append(model.NewErrorMessage(errorFallbackText, errorFallbackSuggestions))
	} else {
		reply := model.NewAssistantMessage(
			msg.Response.Response,
			msg.Response.Products,
			msg.Response.Suggestions,
		)
		reply.Intent = msg.Response.Intent
		m.chat.Append(reply)
	}

	m.refreshTranscript()
	m.viewport.ScrollToBottom()
	return m, m.input.Focus()
}

// handleCompareResult shows the compare overlay or surfaces the failure.
func (m Model) handleCompareResult(msg CompareResultMsg) (tea.Model, tea.Cmd) {
	m.chat.SetLoading(false)
	m.spinner.Stop()

	if msg.Err != nil {
		log.Printf("chat: compare failed: %v", msg.Err)
		m.errText = "Could not fetch the comparison. Is the assistant service running?"
		m.state = StateError
		return m, nil
	}

	m.compareTable = components.NewCompareTable(msg.Comparison, m.theme)
	m.compareTable.SetWidth(m.width - 4)
	m.state = StateCompare
	return m, nil
}

// handleHealth folds a probe result into the header and status bar.
func (m Model) handleHealth(msg HealthMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Err != nil:
		m.health = components.HealthDown
	case msg.Health.OK():
		m.health = components.HealthUp
	default:
		m.health = components.HealthDegraded
	}

	m.header.SetHealth(m.health)
	m.statusBar.SetHealth(m.health)
	m.probe.Stop()
	return m, nil
}

// handleHistory restores the server-side transcript on startup. The
// restore is best-effort: failures are logged and the chat starts
// empty, and anything typed before the fetch lands takes precedence.
func (m Model) handleHistory(msg HistoryMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		log.Printf("chat: history restore skipped: %v", msg.Err)
		return m, nil
	}
	if m.chat.MessageCount() > 0 || msg.History == nil {
		return m, nil
	}

	for _, h := range msg.History.Messages {
		switch h.Role {
		case "user":
			m.chat.Append(model.NewUserMessage(h.Content))
		case "assistant":
			m.chat.Append(model.NewAssistantMessage(h.Content, nil, nil))
		}
	}

	m.refreshTranscript()
	m.viewport.ScrollToBottom()
	return m, nil
}

// handleSessionReset records the rotated session id after a new chat.
func (m Model) handleSessionReset(msg SessionResetMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		log.Printf("chat: session reset failed: %v", msg.Err)
		m.errText = "Could not start a new session."
		m.state = StateError
		return m, nil
	}

	m.statusBar.SetSessionID(msg.ID)
	return m, nil
}
