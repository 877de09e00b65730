// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the phonewise TUI.
package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/phonewise-tui/internal/ui/styles"
	"github.com/jeranaias/phonewise-tui/internal/util"
)

// StarterSuggestions are the canned prompts shown before the first
// message. Their numbers match the Alt+N shortcuts in the chat input.
var StarterSuggestions = []string{
	"Best phones under Rs 30,000",
	"Best camera phones",
	"Phones with best battery life",
	"Best gaming phones",
}

// =============================================================================
// WELCOME SCREEN MODEL
// =============================================================================

// Welcome is the empty-transcript welcome screen.
type Welcome struct {
	version string
	baseURL string

	width  int
	height int

	theme *styles.Theme
}

// NewWelcome creates a new welcome screen.
func NewWelcome(theme *styles.Theme) Welcome {
	return Welcome{
		version: "dev",
		theme:   theme,
	}
}

// SetVersion sets the version string.
func (w *Welcome) SetVersion(version string) {
	w.version = version
}

// SetBaseURL sets the backend URL shown in the info line.
func (w *Welcome) SetBaseURL(url string) {
	w.baseURL = url
}

// SetSize updates the dimensions.
func (w *Welcome) SetSize(width, height int) {
	w.width = width
	w.height = height
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init initializes the welcome screen.
func (w Welcome) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (w Welcome) Update(msg tea.Msg) (Welcome, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
	}
	return w, nil
}

// View renders the welcome screen.
// Responsive: adapts to terminal size, minimum 80x24 supported.
func (w Welcome) View() string {
	width := w.width
	if width == 0 {
		width = 80
	}
	height := w.height
	if height == 0 {
		height = 24
	}

	boxWidth := 62
	if width < 70 {
		boxWidth = width - 8
	}
	if boxWidth < 40 {
		boxWidth = 40
	}
	if boxWidth > width-4 {
		boxWidth = width - 4
	}

	horizontalPadding := 4
	verticalPadding := 1
	if width < 70 {
		horizontalPadding = 2
	}

	var content string
	if height >= 22 {
		content = w.renderLogo()
		content += "\n\n" + w.renderVersion()
		content += "\n\n" + w.renderSuggestions()
		content += "\n\n" + w.renderPressKey()
	} else {
		content = w.renderLogoCompact()
		content += "\n" + w.renderVersion()
		content += "\n" + w.renderSuggestions()
		content += "\n" + w.renderPressKey()
		verticalPadding = 0
	}

	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(styles.Purple).
		Padding(verticalPadding, horizontalPadding).
		Width(boxWidth).
		Align(lipgloss.Center).
		Render(content)

	boxHeight := lipgloss.Height(box)

	// Box taller than the terminal: align top rather than cutting the logo
	if boxHeight >= height {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, box)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// =============================================================================
// RENDER HELPERS
// =============================================================================

// renderLogo renders the ASCII art logo.
// Responsive: uses compact logo for narrow terminals.
func (w Welcome) renderLogo() string {
	logoStyle := lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true)

	if w.width >= 60 {
		logo := `        _                              _
  _ __ | |__   ___  _ __   _____      _(_)___  ___
 | '_ \| '_ \ / _ \| '_ \ / _ \ \ /\ / / / __|/ _ \
 | |_) | | | | (_) | | | |  __/\ V  V /| \__ \  __/
 | .__/|_| |_|\___/|_| |_|\___| \_/\_/ |_|___/\___|
 |_|                                               `
		return logoStyle.Render(logo)
	}

	return w.renderLogoCompact()
}

// renderLogoCompact renders a compact text-based logo.
func (w Welcome) renderLogoCompact() string {
	logoStyle := lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true)

	if w.width >= 40 {
		return logoStyle.Render(`+--------------------+
|     phonewise      |
+--------------------+`)
	}

	return logoStyle.Render("phonewise - Phone Assistant")
}

// renderVersion renders the version subtitle.
func (w Welcome) renderVersion() string {
	sub := "Welcome to Phone Assistant v" + w.version
	if w.baseURL != "" {
		sub += "\n" + w.baseURL
	}
	return lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true).
		Render(sub)
}

// renderSuggestions renders the numbered starter prompts.
func (w Welcome) renderSuggestions() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Bold(true)

	numStyle := lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true)

	textStyle := lipgloss.NewStyle().
		Foreground(styles.TextSecondary)

	lines := []string{titleStyle.Render("Try asking:")}
	for i, s := range StarterSuggestions {
		lines = append(lines, numStyle.Render("["+util.IntToString(i+1)+"]")+" "+textStyle.Render(s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderPressKey renders the entry prompt.
func (w Welcome) renderPressKey() string {
	return lipgloss.NewStyle().
		Foreground(styles.Purple).
		Render("Type a question or press 1-4 to start...")
}

// =============================================================================
// KEYBOARD SHORTCUT HELP
// =============================================================================

// KeyboardShortcuts returns a formatted list of keyboard shortcuts.
func KeyboardShortcuts() string {
	keyStyle := lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(styles.TextSecondary)

	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send message"},
		{"1-9", "Pick a suggestion"},
		{"Ctrl+K", "Compare selected phones"},
		{"Ctrl+N", "New conversation"},
		{"Ctrl+L", "Clear transcript"},
		{"Up/Down", "Scroll messages"},
		{"Ctrl+C", "Quit"},
	}

	lines := make([]string, len(shortcuts))
	for i, s := range shortcuts {
		lines[i] = keyStyle.Render(s.key) + descStyle.Render(s.desc)
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary).
		Bold(true)

	return titleStyle.Render("Keyboard Shortcuts") + "\n" +
		lipgloss.JoinVertical(lipgloss.Left, lines...)
}
