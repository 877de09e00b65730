// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the client for the phone assistant REST API.
package api

import (
	"errors"
	"fmt"
)

// Error variables for common API failures.
var (
	// ErrUnavailable indicates the assistant service could not be reached.
	ErrUnavailable = errors.New("assistant service unavailable")

	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrBadRequest indicates the server rejected the request payload.
	ErrBadRequest = errors.New("bad request")

	// ErrRateLimited indicates too many requests were made.
	ErrRateLimited = errors.New("rate limited")

	// ErrServer indicates the assistant service failed internally.
	ErrServer = errors.New("server error")

	// ErrResponseTooLarge indicates the response body exceeded the size cap.
	ErrResponseTooLarge = errors.New("response exceeded maximum size")
)

// APIError represents an error response from the assistant API.
type APIError struct {
	Status int
	Detail string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error (HTTP %d): %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("api error (HTTP %d)", e.Status)
}

// Unwrap maps the status code onto the sentinel errors so callers can
// use errors.Is without inspecting status codes themselves.
func (e *APIError) Unwrap() error {
	switch {
	case e.Status == 400 || e.Status == 422:
		return ErrBadRequest
	case e.Status == 404:
		return ErrNotFound
	case e.Status == 429:
		return ErrRateLimited
	case e.Status >= 500:
		return ErrServer
	default:
		return nil
	}
}

// errorResponse is the FastAPI-style error body {"detail": "..."}.
type errorResponse struct {
	Detail string `json:"detail"`
}
