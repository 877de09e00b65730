// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the phonewise TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/phonewise-tui/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT - Title bar with phonewise branding
// =============================================================================

// Header represents the title bar component.
type Header struct {
	Title    string // Main title (default: "phonewise")
	Subtitle string // Tagline under the brand
	BaseURL  string // Backend URL shown when connected
	Health   HealthState
	Width    int
	theme    *styles.Theme
}

// NewHeader creates a new Header component with default values.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title:    "phonewise",
		Subtitle: "smartphone shopping assistant",
		Health:   HealthUnknown,
		Width:    80,
		theme:    theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetBaseURL updates the backend URL display.
func (h *Header) SetBaseURL(url string) {
	h.BaseURL = url
}

// SetHealth updates the backend health badge.
func (h *Header) SetHealth(health HealthState) {
	h.Health = health
}

// View renders the header component.
func (h *Header) View() string {
	width := h.Width
	if width < 40 {
		width = 40
	}
	innerWidth := width - 6

	brandStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Cyan)

	accentStyle := lipgloss.NewStyle().
		Foreground(styles.Purple)

	brand := accentStyle.Render("< ") +
		brandStyle.Render(h.Title) +
		accentStyle.Render(" >")

	subtitleParts := []string{}

	if h.Subtitle != "" {
		subStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary)
		subtitleParts = append(subtitleParts, subStyle.Render(h.Subtitle))
	}

	// Backend badge with health coloring
	badge := h.renderHealthBadge()
	if badge != "" {
		subtitleParts = append(subtitleParts, badge)
	}

	subtitle := strings.Join(subtitleParts, " ")

	brandLine := lipgloss.NewStyle().
		Width(innerWidth).
		Align(lipgloss.Center).
		Render(brand)

	subtitleLine := lipgloss.NewStyle().
		Width(innerWidth).
		Align(lipgloss.Center).
		Foreground(styles.TextMuted).
		Render(subtitle)

	content := brandLine + "\n" + subtitleLine

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Purple).
		Background(styles.SurfaceDim).
		Padding(0, 2).
		Width(width - 2).
		Render(content)
}

// renderHealthBadge renders the backend state as a colored badge.
// ACCESSIBILITY: shape indicators carry the state alongside color.
func (h *Header) renderHealthBadge() string {
	var style lipgloss.Style
	var icon string

	switch h.Health {
	case HealthUp:
		style = lipgloss.NewStyle().Foreground(styles.Emerald).Bold(true)
		icon = styles.StatusIndicators.Active
	case HealthDegraded:
		style = lipgloss.NewStyle().Foreground(styles.Amber).Bold(true)
		icon = styles.StatusIndicators.Warning
	case HealthDown:
		style = lipgloss.NewStyle().Foreground(styles.Rose).Bold(true)
		icon = styles.StatusIndicators.Error
	default:
		style = lipgloss.NewStyle().Foreground(styles.TextMuted)
		icon = styles.StatusIndicators.Pending
	}

	label := h.BaseURL
	if label == "" {
		label = h.Health.String()
	}

	return style.Render("[" + icon + " " + label + "]")
}
