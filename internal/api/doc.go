// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the client for the phone assistant REST API.
//
// The assistant service (FastAPI, typically on 127.0.0.1:8000) owns the
// catalog, search ranking, and language understanding. This package is
// the typed client the TUI and CLI talk through.
//
// # Key Types
//
//   - Client: stateless HTTP client with retry and rate limiting
//   - ChatRequest / ChatResponse: the conversational endpoint payloads
//   - APIError: typed error carrying the HTTP status, unwrapping to
//     sentinel errors (ErrNotFound, ErrServer, ...) for errors.Is
//
// # Usage
//
//	client := api.NewClient("").WithTimeout(30 * time.Second)
//	resp, err := client.SendMessage(ctx, api.ChatRequest{
//	    SessionID: sid,
//	    Message:   "best camera phone under 50k?",
//	})
//
// Every call takes a context; callers own cancellation. Retries cover
// transport failures, 429, and 5xx with exponential backoff, and a
// request is never retried once a 2xx reply has been read.
package api
