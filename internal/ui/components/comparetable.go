// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the phonewise TUI.
package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/phonewise-tui/internal/model"
	"github.com/jeranaias/phonewise-tui/internal/ui/styles"
	"github.com/jeranaias/phonewise-tui/internal/util"
)

// =============================================================================
// COMPARISON TABLE COMPONENT
// =============================================================================

// CompareTable renders a spec-by-spec phone comparison with winner
// markers, a summary, and an optional recommendation.
type CompareTable struct {
	Comparison *model.Comparison
	Width      int
	theme      *styles.Theme
}

// NewCompareTable creates a table for a comparison result.
func NewCompareTable(cmp *model.Comparison, theme *styles.Theme) *CompareTable {
	return &CompareTable{
		Comparison: cmp,
		Width:      100,
		theme:      theme,
	}
}

// SetWidth sets the available width.
func (t *CompareTable) SetWidth(width int) {
	t.Width = width
}

// View renders the comparison.
func (t *CompareTable) View() string {
	if t.Comparison == nil || len(t.Comparison.Phones) == 0 {
		emptyStyle := lipgloss.NewStyle().Foreground(styles.TextMuted).Italic(true)
		return emptyStyle.Render("Nothing to compare yet.")
	}

	// Rows are keyed by phone id on the wire; names are display only.
	names := make([]string, len(t.Comparison.Phones))
	keys := make([]string, len(t.Comparison.Phones))
	for i, p := range t.Comparison.Phones {
		names[i] = p.DisplayName()
		keys[i] = strconv.Itoa(p.ID)
	}

	labelWidth, colWidth := t.columnWidths(names)

	var lines []string
	lines = append(lines, t.renderHeader(names, labelWidth, colWidth))
	lines = append(lines, t.renderDivider(labelWidth, colWidth, len(names)))

	for _, row := range t.Comparison.Rows {
		lines = append(lines, t.renderRow(row, keys, labelWidth, colWidth))
		if bars := t.renderBarRow(row, keys, labelWidth, colWidth); bars != "" {
			lines = append(lines, bars)
		}
	}

	table := strings.Join(lines, "\n")

	boxStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Purple).
		Padding(0, 1)

	result := boxStyle.Render(table)

	if t.Comparison.Summary != "" {
		summaryStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary)
		result += "\n" + summaryStyle.Render(wrapText(t.Comparison.Summary, t.Width-2))
	}

	if t.Comparison.Recommendation != "" {
		verdictStyle := lipgloss.NewStyle().Foreground(styles.Emerald).Bold(true)
		result += "\n" + verdictStyle.Render(wrapText("Pick: "+t.Comparison.Recommendation, t.Width-2))
	}

	return result
}

// columnWidths splits the available width between the spec-name column
// and one column per phone.
func (t *CompareTable) columnWidths(names []string) (labelWidth, colWidth int) {
	labelWidth = 16
	cols := len(names)
	if cols == 0 {
		cols = 1
	}

	colWidth = (t.Width - labelWidth - 4 - cols) / cols
	if colWidth < 10 {
		colWidth = 10
	}
	if colWidth > 26 {
		colWidth = 26
	}
	return labelWidth, colWidth
}

func (t *CompareTable) renderHeader(names []string, labelWidth, colWidth int) string {
	headerStyle := lipgloss.NewStyle().Foreground(styles.Cyan).Bold(true)

	cells := []string{pad("", labelWidth)}
	for _, name := range names {
		cells = append(cells, headerStyle.Render(pad(util.TruncateWidth(name, colWidth), colWidth)))
	}
	return strings.Join(cells, " ")
}

func (t *CompareTable) renderDivider(labelWidth, colWidth, cols int) string {
	dividerStyle := lipgloss.NewStyle().Foreground(styles.Overlay)
	total := labelWidth + cols*(colWidth+1)
	return dividerStyle.Render(strings.Repeat("-", total))
}

// renderRow renders one spec row. The winning phone's value gets the
// winner style plus a shape marker.
func (t *CompareTable) renderRow(row model.ComparisonRow, keys []string, labelWidth, colWidth int) string {
	nameStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary).Bold(true)
	cellStyle := lipgloss.NewStyle().Foreground(styles.TextPrimary)
	winnerStyle := lipgloss.NewStyle().Foreground(styles.WinnerColor).Bold(true)

	cells := []string{nameStyle.Render(pad(util.TruncateWidth(row.SpecName, labelWidth), labelWidth))}

	for _, key := range keys {
		value := row.Values[key]
		if value == "" {
			value = "-"
		}

		if row.Winner != "" && row.Winner == key {
			// ACCESSIBILITY: marker carries the win beyond color
			marked := util.TruncateWidth(value, colWidth-2) + " *"
			cells = append(cells, winnerStyle.Render(pad(marked, colWidth)))
		} else {
			cells = append(cells, cellStyle.Render(pad(util.TruncateWidth(value, colWidth), colWidth)))
		}
	}

	return strings.Join(cells, " ")
}

// renderBarRow renders a relative value bar beneath a spec row when every
// value is numeric (RAM, storage, battery and the like). Bars are scaled
// against the largest value in the row.
func (t *CompareTable) renderBarRow(row model.ComparisonRow, keys []string, labelWidth, colWidth int) string {
	barWidth := colWidth - 2
	if barWidth < 4 {
		return ""
	}

	values := make([]float64, len(keys))
	max := 0.0
	for i, key := range keys {
		v, ok := leadingNumber(row.Values[key])
		if !ok {
			return ""
		}
		values[i] = v
		if v > max {
			max = v
		}
	}
	if max <= 0 {
		return ""
	}

	barStyle := lipgloss.NewStyle().Foreground(styles.Overlay)
	winnerStyle := lipgloss.NewStyle().Foreground(styles.WinnerColor)

	cells := []string{pad("", labelWidth)}
	for i, key := range keys {
		bar := styles.RenderProgressBar(barWidth, values[i]/max*100)
		style := barStyle
		if row.Winner != "" && row.Winner == key {
			style = winnerStyle
		}
		cells = append(cells, style.Render(pad(bar, colWidth)))
	}
	return strings.Join(cells, " ")
}

// leadingNumber parses a number off the front of a spec value like
// "5000 mAh" or "6.7 inches". Thousands separators are skipped.
// Values with a non-numeric prefix (currency symbols, text) report false.
func leadingNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)

	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		} else if r == ',' && b.Len() > 0 {
			continue
		} else {
			break
		}
	}
	if b.Len() == 0 {
		return 0, false
	}

	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// pad right-pads a string to the given display width.
func pad(s string, width int) string {
	gap := width - util.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
