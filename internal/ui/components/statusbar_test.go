// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the phonewise TUI.
package components

import (
	"strings"
	"testing"
)

// =============================================================================
// STATUS BAR TESTS
// =============================================================================

func TestStatusBar_CompareCount(t *testing.T) {
	bar := NewStatusBar(testTheme())
	bar.SetWidth(90)
	bar.SetCompareCount(2)

	if view := bar.View(); !strings.Contains(view, "cmp 2/4") {
		t.Errorf("status bar should show compare fill:\n%s", view)
	}
}

func TestStatusBar_HealthStates(t *testing.T) {
	tests := []struct {
		name   string
		health HealthState
		want   string
	}{
		{"up", HealthUp, "online"},
		{"degraded", HealthDegraded, "degraded"},
		{"down", HealthDown, "offline"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bar := NewStatusBar(testTheme())
			bar.SetWidth(90)
			bar.SetHealth(tc.health)
			if view := bar.View(); !strings.Contains(view, tc.want) {
				t.Errorf("health %v should render %q:\n%s", tc.health, tc.want, view)
			}
		})
	}
}

func TestStatusBar_SessionID(t *testing.T) {
	bar := NewStatusBar(testTheme())
	bar.SetWidth(90)
	bar.SetSessionID("session_1712345678_ab12cd34")

	view := bar.View()
	if !strings.Contains(view, "#ab12cd34") {
		t.Errorf("status bar should show the short session id:\n%s", view)
	}
	if strings.Contains(view, "1712345678") {
		t.Error("full session id should not be shown")
	}
}

func TestStatusBar_Status(t *testing.T) {
	bar := NewStatusBar(testTheme())
	bar.SetWidth(90)
	bar.SetStatus(StatusThinking)

	if view := bar.View(); !strings.Contains(view, "Thinking") {
		t.Errorf("status bar should show the activity:\n%s", view)
	}
}

func TestStatusBar_NarrowLayout(t *testing.T) {
	bar := NewStatusBar(testTheme())
	bar.SetWidth(40)
	bar.SetCompareCount(1)

	// Narrow layout uses icons, not labels
	view := bar.View()
	if !strings.Contains(view, "cmp 1/4") {
		t.Errorf("narrow bar should still show compare fill:\n%s", view)
	}
}

func TestShortSessionID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"session_1712345678_ab12cd34", "#ab12cd34"},
		{"plain", "plain"},
		{"", ""},
	}

	for _, tc := range tests {
		if got := shortSessionID(tc.in); got != tc.want {
			t.Errorf("shortSessionID(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// =============================================================================
// WELCOME SCREEN TESTS
// =============================================================================

func TestWelcome_StarterSuggestions(t *testing.T) {
	w := NewWelcome(testTheme())
	w.SetVersion("0.3.0")
	w.SetSize(80, 30)

	view := w.View()
	for _, s := range StarterSuggestions {
		if !strings.Contains(view, s) {
			t.Errorf("welcome screen missing starter suggestion %q", s)
		}
	}
	if !strings.Contains(view, "0.3.0") {
		t.Error("welcome screen should show the version")
	}
}

func TestWelcome_CompactOnSmallTerminal(t *testing.T) {
	w := NewWelcome(testTheme())
	w.SetSize(50, 18)

	// Must not panic and still shows the prompts
	view := w.View()
	if !strings.Contains(view, StarterSuggestions[0]) {
		t.Error("compact welcome should still show starter suggestions")
	}
}
