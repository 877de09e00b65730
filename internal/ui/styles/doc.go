// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the phonewise TUI.

This package defines the complete color palette, typography, and animation
system used throughout the application. All colors use Lip Gloss AdaptiveColor
for automatic light/dark terminal detection.

# Color System (colors.go)

## Primary Accent Colors

  - Purple - Primary accent for assistant messages and selections
  - Cyan - Brand color for info, commands, and user highlights
  - Emerald - Success states and healthy-backend indicator
  - Amber - Warnings and degraded-backend indicator
  - Rose - Errors and failed requests

## Semantic Colors

Message bubbles, product cards, and comparison tables use semantic
color tokens:

	UserBubbleBg      - Background for user messages
	AssistantBubbleBg - Background for assistant messages
	ErrorBubbleBg     - Background for error fallback messages
	PriceColor        - Price line on product cards
	WinnerColor       - Winning value in a comparison row

## Surface Colors

Layered surface system for depth:

	Surface    - Main background
	SurfaceDim - Subtle backgrounds (headers, status bars)
	Overlay    - Borders and separators

## Text Colors

Hierarchical text color system:

	TextPrimary   - Main content text
	TextSecondary - Supporting text
	TextMuted     - De-emphasized text
	TextInverse   - Text on colored backgrounds

# Theme System (theme.go)

The Theme struct provides runtime color adaptation. The user's configured
theme preference (dark, light, or auto) decides whether terminal detection
or a forced background is used:

	theme := styles.NewTheme(cfg.UI.Theme)
	if theme.IsDark {
		// Dark background in effect
	}

# Animation System (animations.go)

Pre-defined spinner styles:

	LineSpinner  - Simple line rotation
	DotsSpinner  - Classic three-dot animation
	PulseSpinner - Pulsing indicator

# Usage Example

	import "github.com/jeranaias/phonewise-tui/internal/ui/styles"

	headerStyle := lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Foreground(styles.TextPrimary)

	theme := styles.NewTheme("auto")
	price := theme.CardPrice.Render(util.FormatINR(phone.PriceINR))
*/
package styles
