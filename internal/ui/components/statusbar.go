// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the phonewise TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/phonewise-tui/internal/store"
	"github.com/jeranaias/phonewise-tui/internal/ui/styles"
	"github.com/jeranaias/phonewise-tui/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// Status represents the current application status.
type Status int

const (
	StatusReady Status = iota
	StatusThinking
	StatusError
)

// String returns the display string for the status.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusThinking:
		return "Thinking..."
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Icon returns an icon for the status.
// ACCESSIBILITY: distinct shapes alongside colors for colorblind users.
func (s Status) Icon() string {
	switch s {
	case StatusReady:
		return styles.StatusIndicators.Success
	case StatusThinking:
		return styles.StatusIndicators.Pending
	case StatusError:
		return styles.StatusIndicators.Error
	default:
		return "?"
	}
}

// HealthState tracks the last known state of the recommendation backend.
type HealthState int

const (
	HealthUnknown HealthState = iota
	HealthUp                  // Backend healthy, model and database ready
	HealthDegraded            // Backend reachable but model or database not ready
	HealthDown                // Backend unreachable
)

// String returns the display string for the health state.
func (h HealthState) String() string {
	switch h {
	case HealthUp:
		return "online"
	case HealthDegraded:
		return "degraded"
	case HealthDown:
		return "offline"
	default:
		return "..."
	}
}

// StatusBar renders the bottom status bar: session, backend health,
// compare-list fill, and current activity.
type StatusBar struct {
	SessionID     string
	Health        HealthState
	CompareCount  int
	Status        Status
	Width         int
	ShowShortcuts bool
	theme         *styles.Theme
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Health:        HealthUnknown,
		Status:        StatusReady,
		Width:         80,
		ShowShortcuts: true,
		theme:         theme,
	}
}

// SetWidth updates the status bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// SetSessionID updates the session shown in the bar.
func (s *StatusBar) SetSessionID(id string) {
	s.SessionID = id
}

// SetHealth updates the backend health indicator.
func (s *StatusBar) SetHealth(h HealthState) {
	s.Health = h
}

// SetCompareCount updates the compare-list fill display.
func (s *StatusBar) SetCompareCount(n int) {
	s.CompareCount = n
}

// SetStatus updates the current status.
func (s *StatusBar) SetStatus(status Status) {
	s.Status = status
}

// View renders the status bar.
func (s *StatusBar) View() string {
	if s.Width < 60 {
		return s.viewNarrow()
	}
	return s.viewWide()
}

// viewNarrow renders a compact status bar for narrow terminals.
// Format: [health] cmp 2/4 [status]
func (s *StatusBar) viewNarrow() string {
	parts := []string{
		s.healthStyle().Render(s.healthIcon()),
		s.renderCompareCount(),
		s.statusStyle().Render(s.Status.Icon()),
	}

	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Foreground(styles.TextSecondary).
		Width(s.Width).
		Render(strings.Join(parts, " "))
}

// viewWide renders the full status bar.
// Format: session | backend online | cmp 2/4 | Ready | shortcuts
func (s *StatusBar) viewWide() string {
	separator := lipgloss.NewStyle().
		Foreground(styles.Overlay).
		Render(" | ")

	var parts []string

	// Session id, shortened to the tail for display
	if s.SessionID != "" {
		idStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)
		parts = append(parts, idStyle.Render(shortSessionID(s.SessionID)))
	}

	// Backend health
	health := s.healthStyle().Render(s.healthIcon() + " " + s.Health.String())
	parts = append(parts, health)

	// Compare list fill
	parts = append(parts, s.renderCompareCount())

	// Activity
	parts = append(parts, s.statusStyle().Render(s.Status.String()))

	// Keyboard shortcuts on wide terminals
	if s.ShowShortcuts && s.Width >= 100 {
		parts = append(parts, s.renderShortcuts())
	}

	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Foreground(styles.TextSecondary).
		Padding(0, 1).
		Width(s.Width).
		Render(strings.Join(parts, separator))
}

// renderCompareCount renders "cmp n/4", highlighted when non-empty.
func (s *StatusBar) renderCompareCount() string {
	text := "cmp " + util.IntToString(s.CompareCount) + "/" + util.IntToString(store.MaxCompare)
	if s.CompareCount > 0 {
		return lipgloss.NewStyle().Foreground(styles.Purple).Bold(true).Render(text)
	}
	return lipgloss.NewStyle().Foreground(styles.TextMuted).Render(text)
}

func (s *StatusBar) renderShortcuts() string {
	keyStyle := lipgloss.NewStyle().Foreground(styles.Cyan).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)

	shortcuts := []struct{ key, desc string }{
		{"enter", "send"},
		{"ctrl+k", "compare"},
		{"ctrl+n", "new chat"},
		{"ctrl+c", "quit"},
	}

	rendered := make([]string, len(shortcuts))
	for i, sc := range shortcuts {
		rendered[i] = keyStyle.Render(sc.key) + descStyle.Render(":"+sc.desc)
	}
	return strings.Join(rendered, " ")
}

func (s *StatusBar) healthIcon() string {
	switch s.Health {
	case HealthUp:
		return styles.StatusIndicators.Active
	case HealthDegraded:
		return styles.StatusIndicators.Warning
	case HealthDown:
		return styles.StatusIndicators.Error
	default:
		return styles.StatusIndicators.Pending
	}
}

func (s *StatusBar) healthStyle() lipgloss.Style {
	switch s.Health {
	case HealthUp:
		return lipgloss.NewStyle().Foreground(styles.Emerald).Bold(true)
	case HealthDegraded:
		return lipgloss.NewStyle().Foreground(styles.Amber).Bold(true)
	case HealthDown:
		return lipgloss.NewStyle().Foreground(styles.Rose).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(styles.TextMuted)
	}
}

func (s *StatusBar) statusStyle() lipgloss.Style {
	switch s.Status {
	case StatusThinking:
		return lipgloss.NewStyle().Foreground(styles.Purple)
	case StatusError:
		return lipgloss.NewStyle().Foreground(styles.Rose).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(styles.Emerald)
	}
}

// shortSessionID trims "session_1712345678_ab12cd34" down to its random
// suffix for display.
func shortSessionID(id string) string {
	if i := strings.LastIndex(id, "_"); i >= 0 && i < len(id)-1 {
		return "#" + id[i+1:]
	}
	return id
}
