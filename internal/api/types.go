// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the client for the phone assistant REST API.
package api

import (
	"net/url"
	"strconv"

	"github.com/jeranaias/phonewise-tui/internal/model"
)

// Version is the client version reported in the User-Agent header.
const Version = "0.3.0"

// =============================================================================
// CHAT TYPES
// =============================================================================

// ChatRequest is the payload for POST /chat/message.
//
// Context is an open payload for request metadata the server may consume
// in future revisions (page hints, locale). Nothing is currently sent in
// it; unknown keys are ignored server-side.
type ChatRequest struct {
	SessionID string         `json:"session_id"`
	Message   string         `json:"message"`
	Context   map[string]any `json:"context,omitempty"`
}

// ChatResponse is the assistant's reply to a chat message.
type ChatResponse struct {
	Response    string        `json:"response"`
	Products    []model.Phone `json:"products"`
	Intent      string        `json:"intent"`
	Suggestions []string      `json:"suggestions"`
	SessionID   string        `json:"session_id"`
}

// HistoryMessage is one server-persisted transcript entry.
type HistoryMessage struct {
	ID        string         `json:"id"`
	Role      string         `json:"role"`
	Content   string         `json:"content"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt string         `json:"created_at"`
}

// HistoryResponse is the reply to GET /chat/history/{session_id}.
type HistoryResponse struct {
	SessionID string           `json:"session_id"`
	Messages  []HistoryMessage `json:"messages"`
}

// SessionResponse is the reply to POST /chat/session.
type SessionResponse struct {
	SessionID string `json:"session_id"`
}

// =============================================================================
// PRODUCT TYPES
// =============================================================================

// ListOptions filters and paginates GET /products. Zero values are
// omitted from the query string.
type ListOptions struct {
	Brand    string
	MinPrice int
	MaxPrice int
	MinRAM   int
	Limit    int
	Offset   int
}

// query encodes the non-zero options as URL query parameters.
func (o ListOptions) query() string {
	v := url.Values{}
	if o.Brand != "" {
		v.Set("brand", o.Brand)
	}
	if o.MinPrice > 0 {
		v.Set("min_price", strconv.Itoa(o.MinPrice))
	}
	if o.MaxPrice > 0 {
		v.Set("max_price", strconv.Itoa(o.MaxPrice))
	}
	if o.MinRAM > 0 {
		v.Set("min_ram", strconv.Itoa(o.MinRAM))
	}
	if o.Limit > 0 {
		v.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Offset > 0 {
		v.Set("offset", strconv.Itoa(o.Offset))
	}
	return v.Encode()
}

// SearchFilters narrows a product search. Zero values mean "no filter";
// pointers distinguish an explicit zero from absent.
type SearchFilters struct {
	Brand      string   `json:"brand,omitempty"`
	MinPrice   *float64 `json:"min_price,omitempty"`
	MaxPrice   *float64 `json:"max_price,omitempty"`
	MinRAM     *int     `json:"min_ram,omitempty"`
	MinBattery *int     `json:"min_battery,omitempty"`
	Features   []string `json:"features,omitempty"`
}

// SearchRequest is the payload for POST /products/search.
type SearchRequest struct {
	Query   string         `json:"query"`
	Filters *SearchFilters `json:"filters,omitempty"`
}

// SearchResponse is the reply to POST /products/search.
type SearchResponse struct {
	Products    []model.Phone `json:"products"`
	Explanation string        `json:"explanation"`
	Count       int           `json:"count"`
}

// CompareRequest is the payload for POST /products/compare.
type CompareRequest struct {
	ProductIDs []int `json:"product_ids"`
}

// ProductsResponse is the reply to the list/brand/category endpoints.
type ProductsResponse struct {
	Products []model.Phone `json:"products"`
	Count    int           `json:"count"`
}

// =============================================================================
// HEALTH TYPES
// =============================================================================

// Health is the reply to GET /health.
type Health struct {
	Status            string `json:"status"`
	ModelLoaded       bool   `json:"model_loaded"`
	DatabaseConnected bool   `json:"database_connected"`
	Version           string `json:"version"`
}

// OK reports whether the service considers itself healthy.
func (h *Health) OK() bool {
	return h.Status == "healthy"
}
