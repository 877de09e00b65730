// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"path/filepath"
	"testing"

	"github.com/jeranaias/phonewise-tui/internal/api"
	"github.com/jeranaias/phonewise-tui/internal/model"
	"github.com/jeranaias/phonewise-tui/internal/session"
	"github.com/jeranaias/phonewise-tui/internal/store"
	"github.com/jeranaias/phonewise-tui/internal/ui/components"
	"github.com/jeranaias/phonewise-tui/internal/ui/styles"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func testModel(t *testing.T) Model {
	t.Helper()

	sessions := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	if err := sessions.Init(); err != nil {
		t.Fatalf("session init: %v", err)
	}

	return New(styles.NewTheme("dark"), nil, sessions, store.NewChatStore())
}

func asModel(t *testing.T, tm interface{}) Model {
	t.Helper()
	m, ok := tm.(Model)
	if !ok {
		t.Fatalf("expected chat.Model, got %T", tm)
	}
	return m
}

func testPhones() []model.Phone {
	return []model.Phone{
		{ID: 1, Brand: "Samsung", Model: "Galaxy S24", PriceINR: 79999},
		{ID: 2, Brand: "OnePlus", Model: "12R", PriceINR: 39999},
		{ID: 3, Brand: "Google", Model: "Pixel 8a", PriceINR: 52999},
		{ID: 4, Brand: "Xiaomi", Model: "14", PriceINR: 69999},
		{ID: 5, Brand: "Apple", Model: "iPhone 15", PriceINR: 79900},
	}
}

// =============================================================================
// SEND LIFECYCLE TESTS
// =============================================================================

func TestSendMessage_OptimisticAppendAndLoading(t *testing.T) {
	m := testModel(t)

	tm, cmd := m.sendMessage("best camera phone")
	m = asModel(t, tm)

	if cmd == nil {
		t.Fatal("expected a send command")
	}
	if !m.chat.Loading() {
		t.Error("loading flag should be set before the request resolves")
	}
	if m.state != StateThinking {
		t.Errorf("state = %v, want StateThinking", m.state)
	}

	msgs := m.chat.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message after optimistic append, got %d", len(msgs))
	}
	if msgs[0].Role != model.RoleUser || msgs[0].Content != "best camera phone" {
		t.Errorf("unexpected optimistic message: %+v", msgs[0])
	}
}

func TestSendMessage_NoSessionAborts(t *testing.T) {
	// A store that was never initialized has no session id.
	sessions := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	m := New(styles.NewTheme("dark"), nil, sessions, store.NewChatStore())

	tm, cmd := m.sendMessage("hello")
	m = asModel(t, tm)

	if cmd != nil {
		t.Error("no command should be issued without a session id")
	}
	if m.chat.MessageCount() != 0 {
		t.Error("nothing should be appended without a session id")
	}
	if m.chat.Loading() {
		t.Error("loading flag should stay clear without a session id")
	}
}

func TestSendMessage_IgnoredWhileLoading(t *testing.T) {
	m := testModel(t)
	m.chat.SetLoading(true)

	tm, cmd := m.sendMessage("second question")
	m = asModel(t, tm)

	if cmd != nil {
		t.Error("overlapping send should be a no-op")
	}
	if m.chat.MessageCount() != 0 {
		t.Error("overlapping send should not append")
	}
}

// =============================================================================
// RESPONSE SETTLEMENT TESTS
// =============================================================================

func TestHandleChatResponse_Success(t *testing.T) {
	m := testModel(t)
	tm, _ := m.sendMessage("best phones under 30k")
	m = asModel(t, tm)

	resp := chatResponse("Here are some great picks.", testPhones()[:2], []string{"Compare these", "Show gaming phones"})
	resp.Intent = "recommendation"

	tm, _ = m.handleChatResponse(ChatResponseMsg{
		UserText: "best phones under 30k",
		Response: resp,
		Epoch:    m.chat.Epoch(),
	})
	m = asModel(t, tm)

	if m.chat.Loading() {
		t.Error("loading flag should clear on success")
	}
	if m.state != StateReady {
		t.Errorf("state = %v, want StateReady", m.state)
	}

	msgs := m.chat.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected user + assistant messages, got %d", len(msgs))
	}
	reply := msgs[1]
	if reply.Role != model.RoleAssistant || reply.IsError {
		t.Errorf("unexpected reply: %+v", reply)
	}
	if len(reply.Phones) != 2 || reply.Intent != "recommendation" {
		t.Errorf("reply payload not carried: %+v", reply)
	}
	if len(reply.Suggestions) != 2 {
		t.Errorf("suggestions not carried: %v", reply.Suggestions)
	}
}

func TestHandleChatResponse_FailureAppendsFallback(t *testing.T) {
	m := testModel(t)
	tm, _ := m.sendMessage("hello")
	m = asModel(t, tm)

	tm, _ = m.handleChatResponse(ChatResponseMsg{
		UserText: "hello",
		Epoch:    m.chat.Epoch(),
		Err:      errFake,
	})
	m = asModel(t, tm)

	if m.chat.Loading() {
		t.Error("loading flag should clear on failure")
	}

	msgs := m.chat.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected user + fallback messages, got %d", len(msgs))
	}

	fb := msgs[1]
	if !fb.IsError {
		t.Error("fallback message should be marked as an error")
	}
	if fb.Content != "Sorry, I encountered an error. Please try again." {
		t.Errorf("fallback text = %q", fb.Content)
	}
	want := []string{"Try a different question", "Start a new conversation"}
	if len(fb.Suggestions) != len(want) {
		t.Fatalf("fallback suggestions = %v", fb.Suggestions)
	}
	for i := range want {
		if fb.Suggestions[i] != want[i] {
			t.Errorf("suggestion[%d] = %q, want %q", i, fb.Suggestions[i], want[i])
		}
	}
}

func TestHandleChatResponse_StaleEpochDiscarded(t *testing.T) {
	m := testModel(t)
	tm, _ := m.sendMessage("old question")
	m = asModel(t, tm)
	staleEpoch := m.chat.Epoch()

	// User clears the chat while the request is in flight.
	tm, _ = m.clearChat()
	m = asModel(t, tm)

	tm, _ = m.handleChatResponse(ChatResponseMsg{
		UserText: "old question",
		Response: chatResponse("too late", nil, nil),
		Epoch:    staleEpoch,
	})
	m = asModel(t, tm)

	if m.chat.MessageCount() != 0 {
		t.Errorf("stale reply must not land in the cleared transcript, got %d messages", m.chat.MessageCount())
	}
}

// =============================================================================
// HEALTH TESTS
// =============================================================================

func TestHandleHealth_Mapping(t *testing.T) {
	tests := []struct {
		name string
		msg  HealthMsg
		want components.HealthState
	}{
		{"error maps to down", HealthMsg{Err: errFake}, components.HealthDown},
		{"healthy maps to up", HealthMsg{Health: healthWithStatus("healthy")}, components.HealthUp},
		{"anything else degrades", HealthMsg{Health: healthWithStatus("starting")}, components.HealthDegraded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModel(t)
			tm, _ := m.handleHealth(tt.msg)
			m = asModel(t, tm)
			if m.health != tt.want {
				t.Errorf("health = %v, want %v", m.health, tt.want)
			}
		})
	}
}

func TestHandleHealth_StopsProbeSpinner(t *testing.T) {
	m := testModel(t)
	if m.probe.View() == "" {
		t.Fatal("probe spinner should render before the first health result")
	}

	tm, _ := m.handleHealth(HealthMsg{Health: healthWithStatus("healthy")})
	m = asModel(t, tm)
	if m.probe.View() != "" {
		t.Error("probe spinner should stop once health is known")
	}
}

// =============================================================================
// SUGGESTION AND COMPARE SHORTCUT TESTS
// =============================================================================

func TestSuggestionAt_WelcomeStarters(t *testing.T) {
	m := testModel(t)

	if got := m.suggestionAt(1); got != components.StarterSuggestions[0] {
		t.Errorf("suggestionAt(1) = %q", got)
	}
	if got := m.suggestionAt(4); got != components.StarterSuggestions[3] {
		t.Errorf("suggestionAt(4) = %q", got)
	}
	if got := m.suggestionAt(5); got != "" {
		t.Errorf("suggestionAt(5) = %q, want empty", got)
	}
}

func TestSuggestionAt_LatestAssistantWins(t *testing.T) {
	m := testModel(t)
	m.chat.Append(model.NewUserMessage("q"))
	m.chat.Append(model.NewAssistantMessage("a", nil, []string{"Compare these two"}))

	if got := m.suggestionAt(1); got != "Compare these two" {
		t.Errorf("suggestionAt(1) = %q", got)
	}
	if got := m.suggestionAt(2); got != "" {
		t.Errorf("suggestionAt(2) = %q, want empty", got)
	}
}

func TestToggleCompareAt(t *testing.T) {
	m := testModel(t)
	m.chat.Append(model.NewAssistantMessage("picks", testPhones(), nil))

	m.toggleCompareAt(1)
	if !m.chat.InCompare(1) {
		t.Fatal("card 1 should be in the compare-list")
	}

	m.toggleCompareAt(1)
	if m.chat.InCompare(1) {
		t.Error("second toggle should remove card 1")
	}

	// Fill to capacity; the fifth add is a silent no-op in the store.
	for n := 1; n <= 5; n++ {
		m.toggleCompareAt(n)
	}
	if m.chat.CompareCount() != store.MaxCompare {
		t.Errorf("compare count = %d, want %d", m.chat.CompareCount(), store.MaxCompare)
	}
	if m.chat.InCompare(5) {
		t.Error("fifth phone must not enter a full compare-list")
	}
}

func TestOpenCompare_RequiresTwo(t *testing.T) {
	m := testModel(t)
	m.chat.AddToCompare(testPhones()[0])

	tm, cmd := m.openCompare()
	m = asModel(t, tm)

	if cmd != nil {
		t.Error("compare with a single phone should not dispatch")
	}
	if m.state != StateError {
		t.Errorf("state = %v, want StateError", m.state)
	}
}

// =============================================================================
// NEW CHAT TESTS
// =============================================================================

func TestNewChat_ClearsAndRotates(t *testing.T) {
	m := testModel(t)
	oldID := m.sessions.ID()
	m.chat.Append(model.NewUserMessage("q"))
	m.chat.SetLoading(true)

	tm, cmd := m.newChat()
	m = asModel(t, tm)

	if m.chat.MessageCount() != 0 {
		t.Error("new chat should clear the transcript")
	}
	if m.chat.Loading() {
		t.Error("new chat should clear the loading flag")
	}
	if cmd == nil {
		t.Fatal("new chat should dispatch the session rotation")
	}

	// Run the batched commands; one of them rotates the session.
	runCmds(t, cmd)
	if m.sessions.ID() == oldID {
		t.Error("session id should rotate on new chat")
	}
}

// =============================================================================
// HISTORY RESTORE TESTS
// =============================================================================

func TestHandleHistory_RestoresTranscript(t *testing.T) {
	m := testModel(t)

	tm, _ := m.handleHistory(HistoryMsg{History: &api.HistoryResponse{
		SessionID: m.sessions.ID(),
		Messages: []api.HistoryMessage{
			{Role: "user", Content: "best camera phone"},
			{Role: "assistant", Content: "Here are some great camera phones."},
			{Role: "system", Content: "ignored"},
		},
	}})
	m = asModel(t, tm)

	msgs := m.chat.Messages()
	if len(msgs) != 2 {
		t.Fatalf("restored %d messages, want 2", len(msgs))
	}
	if msgs[0].Role != model.RoleUser || msgs[0].Content != "best camera phone" {
		t.Errorf("first restored message = %+v", msgs[0])
	}
	if msgs[1].Role != model.RoleAssistant {
		t.Errorf("second restored message role = %v", msgs[1].Role)
	}
}

func TestHandleHistory_SkipsWhenTranscriptNotEmpty(t *testing.T) {
	m := testModel(t)
	m.chat.Append(model.NewUserMessage("typed before fetch landed"))

	tm, _ := m.handleHistory(HistoryMsg{History: &api.HistoryResponse{
		Messages: []api.HistoryMessage{{Role: "user", Content: "old"}},
	}})
	m = asModel(t, tm)

	if m.chat.MessageCount() != 1 {
		t.Errorf("MessageCount = %d, restore must not clobber live input", m.chat.MessageCount())
	}
}

func TestHandleHistory_ErrorLeavesChatEmpty(t *testing.T) {
	m := testModel(t)

	tm, _ := m.handleHistory(HistoryMsg{Err: errFake})
	m = asModel(t, tm)

	if m.chat.MessageCount() != 0 {
		t.Error("failed restore should leave the transcript empty")
	}
	if m.state != StateReady {
		t.Errorf("state = %v, restore failures are log-only", m.state)
	}
}
