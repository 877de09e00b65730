// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides reusable UI components for the phonewise TUI.

This package contains a collection of styled, interactive components built on
top of the Bubble Tea and Lip Gloss libraries. Each component is designed to
be visually polished and consistent with the phonewise design language.

# Core Components

## Input Components

InputArea (input.go) - Styled text input with character counter.

## Display Components

Header (header.go) - Application header with brand and backend health badge.
StatusBar (statusbar.go) - Bottom status bar with session, health, compare
fill, and shortcuts.
MessageBubble (message.go) - Styled chat bubbles; assistant bubbles carry
product cards and numbered follow-up suggestions.
ProductCard / ProductGrid (productcard.go) - Phone cards with price, spec
summary, and compare-list state.
CompareTable (comparetable.go) - Spec-by-spec comparison with winner markers.
ChatViewport (viewport.go) - Scrollable transcript with scroll indicators.

## Progress and Feedback

Spinner (spinner.go) - Animated spinner shown while a request is in flight.

## Specialized Views

Welcome (welcome.go) - Empty-transcript welcome screen with starter prompts.

# Key Types

## Theme Integration

All components accept a *styles.Theme for consistent styling:

	theme := styles.NewTheme("auto")
	header := components.NewHeader(theme)
	header.SetWidth(80)
	header.SetHealth(components.HealthUp)
	view := header.View()

## Bubble Tea Integration

Interactive components implement the Bubble Tea Model shape:

	type Component interface {
		Init() tea.Cmd
		Update(tea.Msg) (Component, tea.Cmd)
		View() string
	}

## Compare-List Wiring

Product cards ask the chat store for their compare state through a
callback, keeping the components free of store dependencies:

	grid.SetCompareStateFunc(func(id int) components.CompareState {
		if chatStore.InCompare(id) {
			return components.CompareSelected
		}
		if !chatStore.CanAddToCompare() {
			return components.CompareFull
		}
		return components.CompareAvailable
	})
*/
package components
