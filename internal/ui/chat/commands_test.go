// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/phonewise-tui/internal/api"
	"github.com/jeranaias/phonewise-tui/internal/model"
	"github.com/jeranaias/phonewise-tui/internal/session"
)

// =============================================================================
// SHARED TEST HELPERS
// =============================================================================

var errFake = errors.New("fake failure")

func chatResponse(text string, phones []model.Phone, suggestions []string) *api.ChatResponse {
	return &api.ChatResponse{
		Response:    text,
		Products:    phones,
		Suggestions: suggestions,
	}
}

func healthWithStatus(status string) *api.Health {
	return &api.Health{Status: status}
}

// runCmds executes a command tree, unwrapping batches. Only side
// effects matter to the callers; resulting messages are discarded.
func runCmds(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			runCmds(t, c)
		}
	}
}

func newTestAPIClient(ts *httptest.Server) *api.Client {
	return api.NewClient(ts.URL + "/api/v1").WithRateLimit(1000)
}

// =============================================================================
// SEND COMMAND TESTS
// =============================================================================

func TestSendMessageCmd_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/chat/message" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req api.ChatRequest
		json.NewDecoder(r.Body).Decode(&req)
		json.NewEncoder(w).Encode(api.ChatResponse{
			Response:  "Top picks coming up",
			Intent:    "recommendation",
			SessionID: req.SessionID,
		})
	}))
	defer ts.Close()

	msg := SendMessageCmd(newTestAPIClient(ts), "session_1_ab", "best phone", 7)()
	resp, ok := msg.(ChatResponseMsg)
	if !ok {
		t.Fatalf("got %T, want ChatResponseMsg", msg)
	}
	if resp.Err != nil {
		t.Fatalf("unexpected error: %v", resp.Err)
	}
	if resp.Epoch != 7 {
		t.Errorf("Epoch = %d, want 7", resp.Epoch)
	}
	if resp.UserText != "best phone" {
		t.Errorf("UserText = %q", resp.UserText)
	}
	if resp.Response.Response != "Top picks coming up" {
		t.Errorf("Response = %q", resp.Response.Response)
	}
}

func TestSendMessageCmd_NilClient(t *testing.T) {
	msg := SendMessageCmd(nil, "session_1_ab", "hi", 3)()
	resp, ok := msg.(ChatResponseMsg)
	if !ok {
		t.Fatalf("got %T, want ChatResponseMsg", msg)
	}
	if !errors.Is(resp.Err, api.ErrUnavailable) {
		t.Errorf("Err = %v, want ErrUnavailable", resp.Err)
	}
	if resp.Epoch != 3 {
		t.Errorf("Epoch = %d, want 3", resp.Epoch)
	}
}

func TestSendMessageCmd_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // refuse connections

	msg := SendMessageCmd(newTestAPIClient(ts), "session_1_ab", "hi", 1)()
	resp := msg.(ChatResponseMsg)
	if resp.Err == nil {
		t.Fatal("expected a transport error")
	}
}

// =============================================================================
// COMPARE COMMAND TESTS
// =============================================================================

func TestCompareCmd_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/products/compare" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(model.Comparison{
			Summary: "Two solid phones",
		})
	}))
	defer ts.Close()

	msg := CompareCmd(newTestAPIClient(ts), []int{1, 2})()
	res, ok := msg.(CompareResultMsg)
	if !ok {
		t.Fatalf("got %T, want CompareResultMsg", msg)
	}
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Comparison.Summary != "Two solid phones" {
		t.Errorf("Summary = %q", res.Comparison.Summary)
	}
}

func TestCompareCmd_NilClient(t *testing.T) {
	msg := CompareCmd(nil, []int{1, 2})()
	res := msg.(CompareResultMsg)
	if !errors.Is(res.Err, api.ErrUnavailable) {
		t.Errorf("Err = %v, want ErrUnavailable", res.Err)
	}
}

// =============================================================================
// HEALTH COMMAND TESTS
// =============================================================================

func TestHealthCheckCmd(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/health" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(api.Health{Status: "healthy", ModelLoaded: true})
	}))
	defer ts.Close()

	msg := HealthCheckCmd(newTestAPIClient(ts))()
	h, ok := msg.(HealthMsg)
	if !ok {
		t.Fatalf("got %T, want HealthMsg", msg)
	}
	if h.Err != nil {
		t.Fatalf("unexpected error: %v", h.Err)
	}
	if !h.Health.OK() {
		t.Errorf("Health = %+v, want healthy", h.Health)
	}
}

func TestHealthCheckCmd_Down(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	msg := HealthCheckCmd(newTestAPIClient(ts))()
	h := msg.(HealthMsg)
	if h.Err == nil {
		t.Fatal("expected an error from an unreachable service")
	}
}

// =============================================================================
// SESSION COMMAND TESTS
// =============================================================================

func TestNewSessionCmd(t *testing.T) {
	sessions := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	if err := sessions.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	oldID := sessions.ID()

	msg := NewSessionCmd(sessions)()
	res, ok := msg.(SessionResetMsg)
	if !ok {
		t.Fatalf("got %T, want SessionResetMsg", msg)
	}
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.ID == "" || res.ID == oldID {
		t.Errorf("ID = %q, want a fresh id (old %q)", res.ID, oldID)
	}
}

func TestNewSessionCmd_NilStore(t *testing.T) {
	msg := NewSessionCmd(nil)()
	res := msg.(SessionResetMsg)
	if !errors.Is(res.Err, session.ErrNoStore) {
		t.Errorf("Err = %v, want ErrNoStore", res.Err)
	}
}
