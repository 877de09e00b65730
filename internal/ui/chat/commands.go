// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/phonewise-tui/internal/api"
	"github.com/jeranaias/phonewise-tui/internal/session"
)

// healthInterval is how often the status bar re-probes the backend.
const healthInterval = 30 * time.Second

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// SendMessageCmd creates a command that sends one chat message to the
// assistant. Exactly one request per invocation; no retry here beyond
// what the client transport does, and no extra timeout on top of the
// transport default. The result carries the epoch the send was issued
// under so stale replies can be discarded after a clear.
func SendMessageCmd(client *api.Client, sessionID, text string, epoch uint64) tea.Cmd {
	return func() tea.Msg {
		if client == nil {
			return ChatResponseMsg{UserText: text, Epoch: epoch, Err: api.ErrUnavailable}
		}

		resp, err := client.SendMessage(context.Background(), api.ChatRequest{
			SessionID: sessionID,
			Message:   text,
		})
		return ChatResponseMsg{
			UserText: text,
			Response: resp,
			Epoch:    epoch,
			Err:      err,
		}
	}
}

// CompareCmd creates a command that fetches the comparison table for
// the given product ids. The server rejects fewer than 2 or more than
// 4 ids; callers gate on the compare-list size before dispatching.
func CompareCmd(client *api.Client, ids []int) tea.Cmd {
	return func() tea.Msg {
		if client == nil {
			return CompareResultMsg{Err: api.ErrUnavailable}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		cmp, err := client.Compare(ctx, ids)
		return CompareResultMsg{Comparison: cmp, Err: err}
	}
}

// HealthCheckCmd creates a command that probes the backend health endpoint.
func HealthCheckCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		if client == nil {
			return HealthMsg{Err: api.ErrUnavailable}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		h, err := client.CheckHealth(ctx)
		return HealthMsg{Health: h, Err: err}
	}
}

// HealthTickCmd schedules the next periodic health probe.
func HealthTickCmd() tea.Cmd {
	return tea.Tick(healthInterval, func(t time.Time) tea.Msg {
		return HealthTickMsg{Time: t}
	})
}

// NewSessionCmd creates a command that rotates the persisted session id.
// Used by new-chat; the old transcript stays on the server under the
// retired id.
func NewSessionCmd(sessions *session.Store) tea.Cmd {
	return func() tea.Msg {
		if sessions == nil {
			return SessionResetMsg{Err: session.ErrNoStore}
		}

		if err := sessions.Reset(); err != nil {
			return SessionResetMsg{Err: err}
		}
		return SessionResetMsg{ID: sessions.ID()}
	}
}

// HistoryCmd creates a command that fetches the server-persisted
// transcript for the session.
func HistoryCmd(client *api.Client, sessionID string, limit int) tea.Cmd {
	return func() tea.Msg {
		if client == nil {
			return HistoryMsg{Err: api.ErrUnavailable}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		h, err := client.History(ctx, sessionID, limit)
		return HistoryMsg{History: h, Err: err}
	}
}

// ClearHistoryCmd creates a command that deletes the server-side
// transcript for the session.
func ClearHistoryCmd(client *api.Client, sessionID string) tea.Cmd {
	return func() tea.Msg {
		if client == nil {
			return HistoryClearedMsg{Err: api.ErrUnavailable}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := client.ClearHistory(ctx, sessionID)
		return HistoryClearedMsg{Err: err}
	}
}
