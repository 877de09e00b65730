// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the phonewise application.
//
// This package contains common helper functions used throughout the
// application for string manipulation, price formatting, type conversion,
// and file operations.
//
// # Key Functions
//
// String Utilities:
//   - TruncateRunes: UTF-8 safe string truncation with ellipsis
//   - TruncateWidth: display-width-aware truncation (CJK safe)
//   - WordWrap: word-boundary wrapping for chat bubbles
//
// Price Formatting:
//   - FormatINR: rupee amounts with Indian digit grouping (₹1,29,999)
//   - FormatINRCompact: lakh/thousand shorthand (₹1.3L)
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
package util
