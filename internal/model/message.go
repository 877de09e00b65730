// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chat messages and phones.
package model

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "Assistant"
	case RoleSystem:
		return "System"
	default:
		return string(r)
	}
}

// =============================================================================
// CHAT MESSAGE TYPE
// =============================================================================

// ChatMessage represents a single message in the chat transcript.
// Assistant messages may carry recommended phones and follow-up
// suggestions alongside the reply text.
type ChatMessage struct {
	// Identity
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Timestamp time.Time `json:"timestamp"`

	// Content
	Content string `json:"content"`

	// Assistant payload
	Phones      []Phone  `json:"phones,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`

	// Intent the assistant classified the triggering question as
	// (recommendation, comparison, information, ...). Display-only.
	Intent string `json:"intent,omitempty"`

	// IsError marks locally generated failure notices so the UI can
	// style them apart from real assistant replies.
	IsError bool `json:"is_error,omitempty"`
}

// NewMessage creates a new message with a generated ID and timestamp.
func NewMessage(role Role, content string) *ChatMessage {
	return &ChatMessage{
		ID:        generateID(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewUserMessage creates a new user message.
func NewUserMessage(content string) *ChatMessage {
	return NewMessage(RoleUser, content)
}

// NewAssistantMessage creates a new assistant message carrying the reply
// and any recommended phones and follow-up suggestions.
func NewAssistantMessage(content string, phones []Phone, suggestions []string) *ChatMessage {
	msg := NewMessage(RoleAssistant, content)
	msg.Phones = phones
	msg.Suggestions = suggestions
	return msg
}

// NewErrorMessage creates an assistant-styled failure notice shown in
// place of a reply when a send fails.
func NewErrorMessage(content string, suggestions []string) *ChatMessage {
	msg := NewMessage(RoleAssistant, content)
	msg.Suggestions = suggestions
	msg.IsError = true
	return msg
}

// =============================================================================
// MESSAGE METHODS
// =============================================================================

// Preview returns a truncated preview of the message content.
// Uses rune-based truncation to handle Unicode correctly.
func (m *ChatMessage) Preview(maxLen int) string {
	runes := []rune(m.Content)
	if len(runes) <= maxLen {
		return m.Content
	}
	return string(runes[:maxLen-3]) + "..."
}

// IsEmpty returns true if the message has no content and no phones.
func (m *ChatMessage) IsEmpty() bool {
	return len(m.Content) == 0 && len(m.Phones) == 0
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// generateID creates a unique message ID.
func generateID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return "msg_" + hex.EncodeToString(bytes)
}
