// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file defines all Bubble Tea message types used by the chat interface.
// Messages are organized into the following categories:
//   - Chat: send results and transcript lifecycle
//   - Compare: compare-table fetch results
//   - Health: backend health probes
//   - Session: session reset and server-side history
//   - UI State: error dismissal
//
// All message types follow Bubble Tea conventions and are immutable.
package chat

import (
	"time"

	"github.com/jeranaias/phonewise-tui/internal/api"
	"github.com/jeranaias/phonewise-tui/internal/model"
)

// =============================================================================
// CHAT MESSAGES
// =============================================================================

// ChatResponseMsg delivers the outcome of one send. Epoch is the chat
// store generation the request was issued under; handlers discard the
// result when the store has since been cleared.
type ChatResponseMsg struct {
	UserText string
	Response *api.ChatResponse
	Epoch    uint64
	Err      error
}

// ChatClearedMsg signals that the local transcript was cleared.
type ChatClearedMsg struct{}

// =============================================================================
// COMPARE MESSAGES
// =============================================================================

// CompareResultMsg delivers the comparison table for the compare-list.
type CompareResultMsg struct {
	Comparison *model.Comparison
	Err        error
}

// =============================================================================
// HEALTH MESSAGES
// =============================================================================

// HealthMsg reports the backend health probe result.
type HealthMsg struct {
	Health *api.Health
	Err    error
}

// HealthTickMsg schedules the next periodic health probe.
type HealthTickMsg struct {
	Time time.Time
}

// =============================================================================
// SESSION MESSAGES
// =============================================================================

// SessionResetMsg confirms a new-chat session rotation.
type SessionResetMsg struct {
	ID  string
	Err error
}

// HistoryMsg delivers the server-persisted transcript for the session.
type HistoryMsg struct {
	History *api.HistoryResponse
	Err     error
}

// HistoryClearedMsg confirms server-side history deletion.
type HistoryClearedMsg struct {
	Err error
}

// =============================================================================
// UI STATE MESSAGES
// =============================================================================

// ErrorDismissMsg dismisses the current error banner.
type ErrorDismissMsg struct{}
