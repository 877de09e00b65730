// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package chat provides the main chat view component for the phonewise TUI.

The chat package implements the terminal chat interface using the Bubble
Tea framework: a conversation with the phone shopping assistant backed by
the REST API, with product cards, follow-up suggestions and a bounded
compare-list.

# Key Components

## Model (model.go)

The Model struct is the central Bubble Tea model that maintains all chat
state:
  - The transcript and compare-list, owned by the store package
  - Input handling with digit shortcuts for suggestions
  - Viewport for message scrolling
  - Backend health tracked from periodic probes

## View Rendering (view.go)

Rendering logic for the complete chat screen:
  - Header with service address and health badge
  - Welcome screen with starter suggestions on an empty transcript
  - Message list with product cards and compare tags
  - Compare table overlay (Ctrl+K)
  - Input box, disabled while a request is in flight
  - Status bar with session id, health, compare count and shortcuts

## Update Handlers (update.go)

Settles asynchronous results:
  - Send results, including the stale-epoch discard after a clear
  - The fixed apology transcript entry when a send fails
  - Compare table and health probe results

## Commands (commands.go)

tea.Cmd constructors for every network interaction: send, compare,
health probe, history fetch and session rotation. Each takes a context
with a bounded timeout except send, which relies on the transport
default.

# Usage

Create a chat model wired to its stores and run it as a Bubble Tea
program:

	client := api.NewClient(cfg.API.BaseURL)
	sessions := session.NewStore(sessionPath)
	model := chat.New(theme, client, sessions, store.NewChatStore())
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
*/
package chat
