// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the non-TUI command surface of phonewise.
//
// Parse inspects os.Args and returns a Command plus parsed Args; main
// dispatches on the Command. With no arguments phonewise starts the
// TUI, so every handler here is an alternative surface over the same
// assistant API, session file and configuration:
//
//   - ask: one question, rendered reply, exit
//   - chat: plain-terminal REPL with line editing and history
//   - products, compare: catalog browsing without conversation
//   - health: service probe with script-friendly exit codes
//   - config: show and edit ~/.phonewise/config.toml
//
// # Output conventions
//
// Markdown rendering and colors engage only when stdout is a TTY;
// piped output stays plain. Every command accepts --json for a stable
// machine-readable shape. NO_COLOR and FORCE_COLOR are honored.
package cli
