// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chat messages and phones.
package model

import (
	"strings"
	"testing"
)

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestNewUserMessage(t *testing.T) {
	msg := NewUserMessage("Best phones under 30000?")

	if msg.Role != RoleUser {
		t.Errorf("Role = %v, want %v", msg.Role, RoleUser)
	}
	if msg.Content != "Best phones under 30000?" {
		t.Errorf("Content = %q", msg.Content)
	}
	if !strings.HasPrefix(msg.ID, "msg_") {
		t.Errorf("ID = %q, want msg_ prefix", msg.ID)
	}
	if msg.Timestamp.IsZero() {
		t.Error("Timestamp should be set")
	}
	if msg.IsError {
		t.Error("User message should not be marked as error")
	}
}

func TestNewAssistantMessage(t *testing.T) {
	phones := []Phone{{ID: 1, Brand: "OnePlus", Model: "12"}}
	suggestions := []string{"Compare with S24", "Show gaming phones"}

	msg := NewAssistantMessage("Here are some options", phones, suggestions)

	if msg.Role != RoleAssistant {
		t.Errorf("Role = %v, want %v", msg.Role, RoleAssistant)
	}
	if len(msg.Phones) != 1 {
		t.Errorf("Phones count = %d, want 1", len(msg.Phones))
	}
	if len(msg.Suggestions) != 2 {
		t.Errorf("Suggestions count = %d, want 2", len(msg.Suggestions))
	}
}

func TestNewErrorMessage(t *testing.T) {
	msg := NewErrorMessage("Sorry, I encountered an error. Please try again.",
		[]string{"Try a different question", "Start a new conversation"})

	if msg.Role != RoleAssistant {
		t.Errorf("Role = %v, want %v", msg.Role, RoleAssistant)
	}
	if !msg.IsError {
		t.Error("IsError should be set")
	}
	if len(msg.Suggestions) != 2 {
		t.Errorf("Suggestions count = %d, want 2", len(msg.Suggestions))
	}
}

func TestMessage_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		msg := NewUserMessage("test")
		if seen[msg.ID] {
			t.Fatalf("Duplicate ID generated: %s", msg.ID)
		}
		seen[msg.ID] = true
	}
}

func TestMessage_Preview(t *testing.T) {
	tests := []struct {
		name    string
		content string
		maxLen  int
		want    string
	}{
		{"short content unchanged", "hello", 10, "hello"},
		{"long content truncated", "this is a long message", 10, "this is..."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := NewUserMessage(tc.content)
			if got := msg.Preview(tc.maxLen); got != tc.want {
				t.Errorf("Preview(%d) = %q, want %q", tc.maxLen, got, tc.want)
			}
		})
	}
}

func TestMessage_IsEmpty(t *testing.T) {
	empty := NewAssistantMessage("", nil, nil)
	if !empty.IsEmpty() {
		t.Error("Message with no content and no phones should be empty")
	}

	withPhones := NewAssistantMessage("", []Phone{{ID: 1}}, nil)
	if withPhones.IsEmpty() {
		t.Error("Message carrying phones should not be empty")
	}
}

// =============================================================================
// ROLE TESTS
// =============================================================================

func TestRole_DisplayName(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleUser, "You"},
		{RoleAssistant, "Assistant"},
		{RoleSystem, "System"},
		{Role("custom"), "custom"},
	}

	for _, tc := range tests {
		if got := tc.role.DisplayName(); got != tc.want {
			t.Errorf("DisplayName(%v) = %q, want %q", tc.role, got, tc.want)
		}
	}
}

// =============================================================================
// PHONE TESTS
// =============================================================================

func TestPhone_DisplayName(t *testing.T) {
	p := Phone{Brand: "Samsung", Model: "Galaxy S24"}
	if got := p.DisplayName(); got != "Samsung Galaxy S24" {
		t.Errorf("DisplayName() = %q", got)
	}

	noBrand := Phone{Model: "Galaxy S24"}
	if got := noBrand.DisplayName(); got != "Galaxy S24" {
		t.Errorf("DisplayName() without brand = %q", got)
	}
}

func TestPhone_SpecLine(t *testing.T) {
	p := Phone{RAMGB: 8, StorageGB: 256, BatteryMAH: 5000}
	want := "8GB RAM | 256GB | 5000mAh"
	if got := p.SpecLine(); got != want {
		t.Errorf("SpecLine() = %q, want %q", got, want)
	}
}
