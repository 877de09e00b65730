// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the phonewise TUI.
package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/phonewise-tui/internal/model"
	"github.com/jeranaias/phonewise-tui/internal/ui/styles"
	"github.com/jeranaias/phonewise-tui/internal/util"
)

// =============================================================================
// MESSAGE BUBBLE COMPONENT
// =============================================================================

// MessageBubble renders a single chat message: the bubble itself plus any
// product cards and follow-up suggestions the assistant attached.
type MessageBubble struct {
	Message       *model.ChatMessage
	Width         int
	IsLatest      bool
	ShowTimestamp bool
	ShowIntent    bool
	MaxCards      int
	theme         *styles.Theme

	// compareStateFor reports the compare state for a phone id, used by
	// the embedded product grid.
	compareStateFor func(id int) CompareState
}

// NewMessageBubble creates a new MessageBubble.
func NewMessageBubble(msg *model.ChatMessage, theme *styles.Theme) *MessageBubble {
	if msg == nil {
		return &MessageBubble{
			Message: &model.ChatMessage{Role: model.RoleSystem},
			Width:   80,
			theme:   theme,
		}
	}
	return &MessageBubble{
		Message:       msg,
		Width:         80,
		ShowTimestamp: true,
		MaxCards:      5,
		theme:         theme,
	}
}

// SetWidth sets the bubble width.
func (b *MessageBubble) SetWidth(width int) {
	b.Width = width
}

// SetIsLatest marks this as the latest message.
func (b *MessageBubble) SetIsLatest(latest bool) {
	b.IsLatest = latest
}

// SetCompareStateFunc wires the compare-list lookup for product cards.
func (b *MessageBubble) SetCompareStateFunc(fn func(id int) CompareState) {
	b.compareStateFor = fn
}

// View renders the message bubble.
func (b *MessageBubble) View() string {
	if b.Message.IsError {
		return b.renderErrorBubble()
	}
	switch b.Message.Role {
	case model.RoleUser:
		return b.renderUserBubble()
	case model.RoleAssistant:
		return b.renderAssistantBubble()
	default:
		return b.renderGenericBubble()
	}
}

// ==========================================================================
// USER BUBBLE - Blue tones, right-aligned feel
// ==========================================================================

func (b *MessageBubble) renderUserBubble() string {
	content := b.Message.Content
	if content == "" {
		content = "..."
	}

	maxContentWidth := b.Width - 12
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}
	wrappedContent := wrapText(content, maxContentWidth)

	contentWidth := minInt(maxLineWidth(wrappedContent)+4, b.Width-8)

	bubbleStyle := lipgloss.NewStyle().
		Foreground(styles.UserBubbleFg).
		Background(styles.UserBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.UserBubbleBorder).
		Padding(0, 2).
		Width(contentWidth)

	bubble := bubbleStyle.Render(wrappedContent)

	roleStyle := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true)
	header := roleStyle.Render("you")

	if ts := b.renderTimestamp(); ts != "" {
		header += " " + ts
	}

	// Right-align the bubble with left margin
	leftMargin := b.Width - contentWidth - 4
	if leftMargin < 0 {
		leftMargin = 0
	}
	marginStyle := lipgloss.NewStyle().MarginLeft(leftMargin)

	return lipgloss.JoinVertical(
		lipgloss.Right,
		marginStyle.Render(header),
		marginStyle.Render(bubble),
	)
}

// ==========================================================================
// ASSISTANT BUBBLE - Purple tones, left-aligned, with cards + suggestions
// ==========================================================================

func (b *MessageBubble) renderAssistantBubble() string {
	var sections []string

	header := b.renderAssistantHeader()
	sections = append(sections, header)

	if content := b.Message.Content; content != "" {
		maxContentWidth := b.Width - 12
		if maxContentWidth < 20 {
			maxContentWidth = 20
		}
		wrappedContent := wrapText(content, maxContentWidth)
		contentWidth := minInt(maxLineWidth(wrappedContent)+4, b.Width-8)

		bubbleStyle := lipgloss.NewStyle().
			Foreground(styles.AssistantBubbleFg).
			Background(styles.AssistantBubbleBg).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.AssistantBubbleBorder).
			Padding(0, 2).
			Width(contentWidth).
			MarginRight(4)

		sections = append(sections, bubbleStyle.Render(wrappedContent))
	}

	// Product cards below the text
	if len(b.Message.Phones) > 0 {
		grid := NewProductGrid(b.Message.Phones, b.theme)
		grid.SetWidth(b.Width - 4)
		grid.SetMaxCards(b.MaxCards)
		if b.compareStateFor != nil {
			grid.SetCompareStateFunc(b.compareStateFor)
		}
		sections = append(sections, grid.View())
	}

	// Numbered follow-up suggestions
	if len(b.Message.Suggestions) > 0 {
		sections = append(sections, b.renderSuggestions())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (b *MessageBubble) renderAssistantHeader() string {
	roleStyle := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true)
	header := roleStyle.Render("assistant")

	if b.ShowIntent && b.Message.Intent != "" {
		intentStyle := lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Background(styles.SurfaceBright).
			Padding(0, 1)
		header += " " + intentStyle.Render(b.Message.Intent)
	}

	if ts := b.renderTimestamp(); ts != "" {
		header += " " + ts
	}
	return header
}

// renderSuggestions renders numbered follow-up chips. The numbers match
// the Alt+N shortcuts handled by the chat input.
func (b *MessageBubble) renderSuggestions() string {
	numStyle := lipgloss.NewStyle().Foreground(styles.Cyan).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary)

	lines := make([]string, 0, len(b.Message.Suggestions))
	for i, s := range b.Message.Suggestions {
		line := numStyle.Render("["+util.IntToString(i+1)+"]") + " " +
			textStyle.Render(util.TruncateWidth(s, b.Width-10))
		lines = append(lines, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// ==========================================================================
// ERROR BUBBLE - Rose tones for failed requests
// ==========================================================================

func (b *MessageBubble) renderErrorBubble() string {
	content := b.Message.Content
	if content == "" {
		content = "Something went wrong."
	}

	maxContentWidth := b.Width - 12
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}
	wrappedContent := wrapText(content, maxContentWidth)
	contentWidth := minInt(maxLineWidth(wrappedContent)+4, b.Width-8)

	bubbleStyle := lipgloss.NewStyle().
		Foreground(styles.ErrorBubbleFg).
		Background(styles.ErrorBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.ErrorBubbleBorder).
		Padding(0, 2).
		Width(contentWidth).
		MarginRight(4)

	iconStyle := lipgloss.NewStyle().
		Foreground(styles.ErrorHighContrast).
		Bold(true)
	header := iconStyle.Render(styles.StatusIndicators.Error) + " " +
		lipgloss.NewStyle().Foreground(styles.TextMuted).Italic(true).Render("assistant")

	sections := []string{header, bubbleStyle.Render(wrappedContent)}

	// Recovery suggestions keep the conversation moving after a failure
	if len(b.Message.Suggestions) > 0 {
		sections = append(sections, b.renderSuggestions())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// ==========================================================================
// GENERIC BUBBLE - Fallback for system/unknown roles
// ==========================================================================

func (b *MessageBubble) renderGenericBubble() string {
	content := b.Message.Content
	if content == "" {
		content = "..."
	}

	maxContentWidth := b.Width - 10
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}
	wrappedContent := wrapText(content, maxContentWidth)

	bubbleStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Overlay).
		Padding(0, 2)

	return bubbleStyle.Render(wrappedContent)
}

// ==========================================================================
// HELPER METHODS
// ==========================================================================

// renderTimestamp renders a dimmed timestamp.
func (b *MessageBubble) renderTimestamp() string {
	if !b.ShowTimestamp {
		return ""
	}
	ts := b.Message.Timestamp
	if ts.IsZero() {
		return ""
	}

	timestampStyle := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true)

	formatted := formatTime(ts)
	now := time.Now()
	if ts.Year() != now.Year() || ts.YearDay() != now.YearDay() {
		formatted = formatDate(ts) + ", " + formatted
	}

	return timestampStyle.Render(formatted)
}

// =============================================================================
// MESSAGE LIST COMPONENT
// =============================================================================

// MessageList renders the full transcript.
type MessageList struct {
	Messages       []*model.ChatMessage
	Width          int
	ShowTimestamps bool
	ShowIntents    bool
	MaxCards       int
	theme          *styles.Theme

	compareStateFor func(id int) CompareState
}

// NewMessageList creates a new MessageList.
func NewMessageList(theme *styles.Theme) *MessageList {
	return &MessageList{
		Messages:       []*model.ChatMessage{},
		Width:          80,
		ShowTimestamps: true,
		MaxCards:       5,
		theme:          theme,
	}
}

// SetMessages sets the messages to display.
func (ml *MessageList) SetMessages(messages []*model.ChatMessage) {
	ml.Messages = messages
}

// SetWidth sets the list width.
func (ml *MessageList) SetWidth(width int) {
	ml.Width = width
}

// SetCompareStateFunc wires the compare-list lookup for product cards.
func (ml *MessageList) SetCompareStateFunc(fn func(id int) CompareState) {
	ml.compareStateFor = fn
}

// View renders all messages.
func (ml *MessageList) View() string {
	if len(ml.Messages) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Italic(true).
			Width(ml.Width).
			Align(lipgloss.Center).
			Padding(2, 0)

		return emptyStyle.Render("No messages yet. Ask about a phone!")
	}

	var bubbles []string
	for i, msg := range ml.Messages {
		bubble := NewMessageBubble(msg, ml.theme)
		bubble.SetWidth(ml.Width)
		bubble.ShowTimestamp = ml.ShowTimestamps
		bubble.ShowIntent = ml.ShowIntents
		bubble.MaxCards = ml.MaxCards
		bubble.SetIsLatest(i == len(ml.Messages)-1)
		if ml.compareStateFor != nil {
			bubble.SetCompareStateFunc(ml.compareStateFor)
		}

		bubbles = append(bubbles, bubble.View())
	}

	return strings.Join(bubbles, "\n")
}
