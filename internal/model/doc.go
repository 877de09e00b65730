// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chat messages and phones.
//
// This package defines the core domain types used throughout the application
// for representing the chat transcript and the phone catalog entries the
// assistant recommends.
//
// # Key Types
//
//   - ChatMessage: single message with role, content, timestamp, and the
//     phones/suggestions an assistant reply carries
//   - Phone: catalog entry with pricing, display, camera, and battery specs
//   - Comparison: side-by-side comparison rows with per-spec winners
//   - Role: message role enumeration (user, assistant, system)
//
// # Usage
//
// Create messages for the transcript:
//
//	user := model.NewUserMessage("Best camera phones?")
//	reply := model.NewAssistantMessage(text, phones, suggestions)
package model
