// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the client for the phone assistant REST API.
//
// The assistant service owns all catalog and language understanding
// logic; this client is a typed, stateless wrapper over its endpoints
// with retry, rate limiting, and response size caps.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jeranaias/phonewise-tui/internal/model"
)

// Configuration constants for the assistant API.
const (
	// DefaultBaseURL is where the assistant service listens locally.
	DefaultBaseURL = "http://127.0.0.1:8000/api/v1"

	// DefaultTimeout is the default timeout for API requests.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxRetries is the default number of retry attempts for
	// transient errors.
	DefaultMaxRetries = 3

	// retryBaseDelay is the base delay for exponential backoff.
	retryBaseDelay = 500 * time.Millisecond

	// retryMaxDelay is the maximum delay for exponential backoff.
	retryMaxDelay = 10 * time.Second

	// MaxResponseSize is the maximum allowed response body size.
	// SECURITY: Response size limit prevents memory exhaustion.
	MaxResponseSize = 10 * 1024 * 1024 // 10MB limit

	// defaultRequestsPerSecond caps client-side request rate. The chat
	// flow issues one request per user action, so this only matters for
	// scripted use of the products subcommands.
	defaultRequestsPerSecond = 5
)

// PERFORMANCE: Connection pooling reduces TCP handshake overhead.
// Shared HTTP client for all assistant API requests.
var sharedHTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	},
	Timeout: DefaultTimeout,
}

// Client is a client for the phone assistant REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
	timeout    time.Duration
	userAgent  string
	limiter    *rate.Limiter
}

// NewClient creates a new assistant API client. An empty baseURL falls
// back to DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: sharedHTTPClient,
		maxRetries: DefaultMaxRetries,
		timeout:    DefaultTimeout,
		userAgent:  "phonewise/" + Version,
		limiter:    rate.NewLimiter(rate.Limit(defaultRequestsPerSecond), defaultRequestsPerSecond),
	}
}

// WithTimeout sets the request timeout.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	c.timeout = timeout
	c.httpClient = &http.Client{
		Transport: sharedHTTPClient.Transport,
		Timeout:   timeout,
	}
	return c
}

// WithMaxRetries sets the maximum number of retry attempts.
func (c *Client) WithMaxRetries(maxRetries int) *Client {
	c.maxRetries = maxRetries
	return c
}

// WithHTTPClient replaces the underlying HTTP client. Used by tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// WithRateLimit sets the client-side requests-per-second cap.
func (c *Client) WithRateLimit(rps float64) *Client {
	c.limiter = rate.NewLimiter(rate.Limit(rps), int(rps)+1)
	return c
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// =============================================================================
// CHAT ENDPOINTS
// =============================================================================

// SendMessage posts a user message and returns the assistant's reply.
// One call maps to exactly one request; retries happen only for
// transient transport-level failures, never after a reply was received.
func (c *Client) SendMessage(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	var resp ChatResponse
	if err := c.doJSON(ctx, http.MethodPost, "/chat/message", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// History fetches the server-persisted transcript for a session.
// A limit of 0 uses the server default.
func (c *Client) History(ctx context.Context, sessionID string, limit int) (*HistoryResponse, error) {
	path := "/chat/history/" + url.PathEscape(sessionID)
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var resp HistoryResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateSession asks the server to mint a new session id. The TUI
// generates ids locally; this exists for scripted use.
func (c *Client) CreateSession(ctx context.Context) (*SessionResponse, error) {
	var resp SessionResponse
	if err := c.doJSON(ctx, http.MethodPost, "/chat/session", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ClearHistory deletes the server-persisted transcript for a session.
func (c *Client) ClearHistory(ctx context.Context, sessionID string) error {
	path := "/chat/history/" + url.PathEscape(sessionID)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// =============================================================================
// PRODUCT ENDPOINTS
// =============================================================================

// Products fetches the catalog, optionally filtered and paginated.
func (c *Client) Products(ctx context.Context, opts ListOptions) (*ProductsResponse, error) {
	var resp ProductsResponse
	path := "/products"
	if q := opts.query(); q != "" {
		path += "?" + q
	}
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Product fetches a single catalog entry by id.
func (c *Client) Product(ctx context.Context, id int) (*model.Phone, error) {
	var resp model.Phone
	if err := c.doJSON(ctx, http.MethodGet, "/products/"+strconv.Itoa(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Search runs a natural-language product search with optional filters.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	var resp SearchResponse
	if err := c.doJSON(ctx, http.MethodPost, "/products/search", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Compare fetches a side-by-side comparison for the given product ids.
// The server accepts between 2 and 4 ids.
func (c *Client) Compare(ctx context.Context, ids []int) (*model.Comparison, error) {
	var resp model.Comparison
	if err := c.doJSON(ctx, http.MethodPost, "/products/compare", CompareRequest{ProductIDs: ids}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ByBrand fetches all phones of one brand.
func (c *Client) ByBrand(ctx context.Context, brand string) (*ProductsResponse, error) {
	var resp ProductsResponse
	path := "/products/brand/" + url.PathEscape(brand)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ByCategory fetches a curated category (flagship, budget, gaming,
// camera). maxPrice only applies to the budget category; pass 0 for the
// server default.
func (c *Client) ByCategory(ctx context.Context, category string, maxPrice float64) (*ProductsResponse, error) {
	path := "/products/category/" + url.PathEscape(category)
	if category == "budget" && maxPrice > 0 {
		path += "?max_price=" + strconv.FormatFloat(maxPrice, 'f', -1, 64)
	}
	var resp ProductsResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// =============================================================================
// HEALTH ENDPOINT
// =============================================================================

// CheckHealth queries the service health endpoint. Health is served
// under the versioned prefix like every other route.
func (c *Client) CheckHealth(ctx context.Context) (*Health, error) {
	var resp Health
	if err := c.doJSON(ctx, http.MethodGet, "/health", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// =============================================================================
// REQUEST PLUMBING
// =============================================================================

// doJSON performs a request against a path under the base URL.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	return c.doJSONAbs(ctx, method, c.baseURL+path, body, out)
}

// doJSONAbs performs a JSON request with retry and exponential backoff.
// Retries happen on transport errors, 429, and 5xx responses.
func (c *Client) doJSONAbs(ctx context.Context, method, requestURL string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var bodyBytes []byte
	if body != nil {
		var err error
		bodyBytes, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(calculateBackoff(attempt)):
			}
		}

		err := c.doOnce(ctx, method, requestURL, bodyBytes, out)
		if err == nil {
			return nil
		}
		if !isRetryable(err) {
			return err
		}
		lastErr = err
	}
	return fmt.Errorf("max retries exceeded: %w", lastErr)
}

// doOnce performs a single HTTP round trip.
func (c *Client) doOnce(ctx context.Context, method, requestURL string, bodyBytes []byte, out any) error {
	var reader io.Reader
	if bodyBytes != nil {
		reader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if bodyBytes != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logRequest(req)
	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)
	if err != nil {
		log.Printf("API request failed: %s %s (%v): %v", method, req.URL.Path, duration, err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	c.logResponse(resp, duration)

	respBody, err := readResponse(resp)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return handleErrorResponse(resp.StatusCode, respBody)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// logRequest logs an API request without the body; chat messages are
// user content and stay out of the operator log.
func (c *Client) logRequest(req *http.Request) {
	log.Printf("API Request: %s %s", req.Method, req.URL.Path)
}

// logResponse logs status code and duration only, never the body.
func (c *Client) logResponse(resp *http.Response, duration time.Duration) {
	log.Printf("API Response: %d %s (%v)", resp.StatusCode, resp.Status, duration)
}

// readResponse reads the response body with a size cap.
//
// SECURITY: Response size limit prevents memory exhaustion.
func readResponse(resp *http.Response) ([]byte, error) {
	limitedReader := io.LimitReader(resp.Body, MaxResponseSize)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(body)) == MaxResponseSize {
		return nil, ErrResponseTooLarge
	}
	return body, nil
}

// handleErrorResponse converts HTTP error responses to typed errors.
func handleErrorResponse(statusCode int, body []byte) error {
	apiErr := &APIError{Status: statusCode}

	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Detail != "" {
		apiErr.Detail = errResp.Detail
	} else if len(body) > 0 {
		apiErr.Detail = string(body)
	}
	return apiErr
}

// isRetryable determines if an error should trigger a retry.
func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, ErrRateLimited) || errors.Is(err, ErrServer) {
		return true
	}
	// Transport-level failures (connection refused, reset) are worth
	// one more try; the service may be restarting.
	return errors.Is(err, ErrUnavailable)
}

// calculateBackoff returns the delay before the next retry.
// Exponential: 500ms, 1000ms, 2000ms, capped at retryMaxDelay.
func calculateBackoff(attempt int) time.Duration {
	delay := retryBaseDelay * time.Duration(1<<uint(attempt-1))
	if delay > retryMaxDelay {
		delay = retryMaxDelay
	}
	return delay
}
