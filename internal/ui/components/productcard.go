// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the phonewise TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/phonewise-tui/internal/model"
	"github.com/jeranaias/phonewise-tui/internal/ui/styles"
	"github.com/jeranaias/phonewise-tui/internal/util"
)

// =============================================================================
// PRODUCT CARD COMPONENT
// =============================================================================

// CompareState describes how the compare toggle on a card should render.
type CompareState int

const (
	CompareAvailable CompareState = iota // Phone can be added to the compare list
	CompareSelected                      // Phone is already in the compare list
	CompareFull                          // Compare list is at capacity
)

// ProductCard renders a single phone as a bordered card with price,
// spec summary, and compare-list state.
type ProductCard struct {
	Phone        model.Phone
	Index        int // 1-based position within the message, used for selection keys
	Width        int
	Selected     bool
	CompareState CompareState
	theme        *styles.Theme
}

// NewProductCard creates a card for a phone.
func NewProductCard(phone model.Phone, theme *styles.Theme) *ProductCard {
	return &ProductCard{
		Phone: phone,
		Width: 44,
		theme: theme,
	}
}

// SetWidth sets the card width.
func (c *ProductCard) SetWidth(width int) {
	if width < 28 {
		width = 28
	}
	c.Width = width
}

// View renders the card.
func (c *ProductCard) View() string {
	innerWidth := c.Width - 6 // border + padding
	if innerWidth < 20 {
		innerWidth = 20
	}

	var lines []string

	// Title line: "[1] Samsung Galaxy S24"
	title := c.Phone.DisplayName()
	if c.Index > 0 {
		title = "[" + util.IntToString(c.Index) + "] " + title
	}
	titleStyle := lipgloss.NewStyle().Foreground(styles.BrandColor).Bold(true)
	lines = append(lines, titleStyle.Render(util.TruncateWidth(title, innerWidth)))

	// Price line
	priceStyle := lipgloss.NewStyle().Foreground(styles.PriceColor).Bold(true)
	lines = append(lines, priceStyle.Render(util.FormatINR(c.Phone.PriceINR)))

	// Spec summary: "8GB RAM | 256GB | 5000mAh"
	if spec := c.Phone.SpecLine(); spec != "" {
		specStyle := lipgloss.NewStyle().Foreground(styles.SpecColor)
		lines = append(lines, specStyle.Render(util.TruncateWidth(spec, innerWidth)))
	}

	// Marketing highlight, when the catalog carries one
	if c.Phone.Highlights != "" {
		hlStyle := lipgloss.NewStyle().Foreground(styles.HighlightColor).Italic(true)
		lines = append(lines, hlStyle.Render(util.TruncateWidth(c.Phone.Highlights, innerWidth)))
	}

	// Compare toggle hint
	lines = append(lines, c.renderCompareTag())

	content := strings.Join(lines, "\n")

	boxStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Overlay).
		Padding(0, 2).
		Width(c.Width - 2)

	if c.Selected {
		boxStyle = boxStyle.
			BorderForeground(styles.Cyan).
			Background(styles.SelectionBg)
	}

	return boxStyle.Render(content)
}

// renderCompareTag renders the compare-list state line.
// ACCESSIBILITY: shape indicators carry the state alongside color.
func (c *ProductCard) renderCompareTag() string {
	switch c.CompareState {
	case CompareSelected:
		style := lipgloss.NewStyle().Foreground(styles.CompareBadge).Bold(true)
		return style.Render(styles.StatusIndicators.Active + " in compare")
	case CompareFull:
		style := lipgloss.NewStyle().Foreground(styles.TextMuted).Faint(true)
		return style.Render(styles.StatusIndicators.Pending + " compare full")
	default:
		style := lipgloss.NewStyle().Foreground(styles.TextMuted)
		return style.Render("[c] compare")
	}
}

// =============================================================================
// PRODUCT CARD GRID
// =============================================================================

// ProductGrid lays out a set of product cards, side by side when the
// terminal is wide enough and stacked otherwise.
type ProductGrid struct {
	Phones   []model.Phone
	Width    int
	MaxCards int
	theme    *styles.Theme

	// stateFor reports the compare state for a phone id.
	stateFor func(id int) CompareState
}

// NewProductGrid creates a grid for the phones attached to a message.
func NewProductGrid(phones []model.Phone, theme *styles.Theme) *ProductGrid {
	return &ProductGrid{
		Phones:   phones,
		Width:    80,
		MaxCards: 5,
		theme:    theme,
	}
}

// SetWidth sets the available width.
func (g *ProductGrid) SetWidth(width int) {
	g.Width = width
}

// SetMaxCards caps the number of cards rendered.
func (g *ProductGrid) SetMaxCards(n int) {
	if n > 0 {
		g.MaxCards = n
	}
}

// SetCompareStateFunc wires the compare-list lookup used per card.
func (g *ProductGrid) SetCompareStateFunc(fn func(id int) CompareState) {
	g.stateFor = fn
}

// View renders the cards.
func (g *ProductGrid) View() string {
	if len(g.Phones) == 0 {
		return ""
	}

	phones := g.Phones
	overflow := 0
	if len(phones) > g.MaxCards {
		overflow = len(phones) - g.MaxCards
		phones = phones[:g.MaxCards]
	}

	cardWidth := 44
	perRow := g.Width / (cardWidth + 1)
	if perRow < 1 {
		perRow = 1
		cardWidth = g.Width - 2
	}

	var rows []string
	var row []string
	for i, phone := range phones {
		card := NewProductCard(phone, g.theme)
		card.Index = i + 1
		card.SetWidth(cardWidth)
		if g.stateFor != nil {
			card.CompareState = g.stateFor(phone.ID)
		}
		row = append(row, card.View())

		if len(row) == perRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	result := strings.Join(rows, "\n")

	if overflow > 0 {
		moreStyle := lipgloss.NewStyle().Foreground(styles.TextMuted).Italic(true)
		result += "\n" + moreStyle.Render("... and "+util.IntToString(overflow)+" more")
	}

	return result
}
