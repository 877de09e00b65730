// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/phonewise-tui/internal/ui/components"
)

// =============================================================================
// MAIN RENDER
// =============================================================================

// renderChat composes the full chat screen: header, body, input area
// and status bar, top to bottom.
func (m Model) renderChat() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var sections []string

	sections = append(sections, m.header.View())
	sections = append(sections, m.renderBody())

	if m.state == StateThinking {
		sections = append(sections, m.spinner.View())
	}
	if m.state == StateError && m.errText != "" {
		sections = append(sections, m.renderErrorBanner())
	}

	sections = append(sections, m.renderInputArea())
	sections = append(sections, m.renderStatusBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// =============================================================================
// BODY
// =============================================================================

// renderBody picks the main panel: compare overlay, welcome screen for
// an empty transcript, otherwise the scrolling message list.
func (m Model) renderBody() string {
	switch {
	case m.state == StateCompare && m.compareTable != nil:
		return m.renderCompareOverlay()
	case m.chat.MessageCount() == 0:
		view := m.welcome.View()
		if m.health == components.HealthUnknown {
			if probe := m.probe.View(); probe != "" {
				line := probe + m.theme.MessageMeta.Render(" contacting assistant")
				view = lipgloss.JoinVertical(lipgloss.Left, view, line)
			}
		}
		return view
	default:
		return m.viewport.View()
	}
}

// renderCompareOverlay centers the compare table with a close hint.
func (m Model) renderCompareOverlay() string {
	hint := m.theme.MessageMeta.Render("esc to close")
	content := lipgloss.JoinVertical(lipgloss.Left, m.compareTable.View(), hint)

	bodyHeight := m.bodyHeight()
	if bodyHeight < 1 {
		return content
	}
	return lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
}

// bodyHeight mirrors the reservation math in handleResize.
func (m Model) bodyHeight() int {
	h := m.height - 10
	if h < 1 {
		h = 1
	}
	return h
}

// =============================================================================
// ERROR BANNER
// =============================================================================

// renderErrorBanner shows transient client-side failures (compare
// fetch, session rotation). Send failures render in the transcript
// instead so they scroll with the conversation.
func (m Model) renderErrorBanner() string {
	title := m.theme.ErrorTitle.Render("Something went wrong")
	body := m.theme.ErrorMessage.Render(m.errText)
	hint := m.theme.ErrorSuggestion.Render("esc or enter to dismiss")

	banner := lipgloss.JoinVertical(lipgloss.Left, title, body, hint)
	return m.theme.ErrorBox.Width(minWidth(m.width-4, 76)).Render(banner)
}

// =============================================================================
// INPUT AREA
// =============================================================================

// renderInputArea renders the input box, greyed out while a request is
// in flight so overlapping sends are impossible.
func (m Model) renderInputArea() string {
	if m.state == StateThinking {
		waiting := m.theme.InputPlaceholder.Render("Waiting for the assistant...")
		return m.theme.InputContainer.Width(m.inputBoxWidth()).Render(waiting)
	}
	return m.input.View()
}

func (m Model) inputBoxWidth() int {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	return w
}

// =============================================================================
// STATUS BAR
// =============================================================================

func (m Model) renderStatusBar() string {
	switch m.state {
	case StateThinking:
		m.statusBar.SetStatus(components.StatusThinking)
	case StateError:
		m.statusBar.SetStatus(components.StatusError)
	default:
		m.statusBar.SetStatus(components.StatusReady)
	}
	return m.statusBar.View()
}

// =============================================================================
// HELPERS
// =============================================================================

func minWidth(a, b int) int {
	if a < b {
		return a
	}
	return b
}
