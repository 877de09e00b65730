// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store holds the in-memory chat transcript and compare-list state.
//
// ChatStore is the single source of truth the UI renders from: the
// ordered message log, the awaiting-reply flag, and the bounded
// compare-list. Compare membership rules (unique by phone id, at most
// MaxCompare entries, silent rejection past either limit) live here so
// every view that offers an "add to compare" control shares one
// enforcement point.
//
// The store also carries an epoch counter. Clearing the transcript
// advances it, which lets the chat model drop replies that arrive for
// requests issued before the clear.
package store
