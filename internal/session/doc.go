// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the persisted chat session identity.
//
// The assistant API threads conversation context by session id. This
// package keeps exactly one id per install, persisted under the config
// directory so the conversation survives restarts.
//
// # Key Types
//
//   - Store: mutex-guarded holder of the current session id
//
// # Usage
//
// Establish the session on startup (loads the persisted id, or creates
// one on first run):
//
//	st := session.NewStore(filepath.Join(cfgDir, "session.json"))
//	if err := st.Init(); err != nil { ... }
//	id := st.ID()
//
// Start a new conversation:
//
//	st.Reset()
//
// Init is idempotent; Reset always generates and persists a fresh id.
package session
