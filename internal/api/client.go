// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the DataDepot question-answering
// service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// =============================================================================
// ERROR TYPE
// =============================================================================

// RequestError is the single error kind the client produces: any non-2xx
// response or transport failure, carrying the HTTP status code and the raw
// response body text. Transport failures (no response at all) use status 0.
type RequestError struct {
	StatusCode int
	Body       string
	Cause      error
}

func (e *RequestError) Error() string {
	if e.StatusCode == 0 {
		if e.Cause != nil {
			return "request failed: " + e.Cause.Error()
		}
		return "request failed"
	}
	msg := "request failed (status " + strconv.Itoa(e.StatusCode) + ")"
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

func (e *RequestError) Unwrap() error {
	return e.Cause
}

// IsRequestError reports whether err is (or wraps) a *RequestError.
func IsRequestError(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr)
}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the DataDepot client.
type ClientConfig struct {
	// BaseURL of the DataDepot API. Injected by the caller; the client has
	// no built-in default so endpoints stay testable.
	BaseURL string

	// Timeout for requests (default: 60s). The service can take a while on
	// web-augmented questions, so this is deliberately generous.
	Timeout time.Duration
}

// =============================================================================
// CLIENT
// =============================================================================

// Client talks to the DataDepot API.
//
// The Client is safe for concurrent use, though the chat UI only ever keeps a
// single request in flight.
//
// Example:
//
//	client := api.NewClient(api.ClientConfig{BaseURL: cfg.API.BaseURL})
//	resp, err := client.Ask(ctx, "top pages last 7 days", api.AskOptions{})
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new DataDepot client.
func NewClient(config ClientConfig) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// =============================================================================
// ASK
// =============================================================================

// Ask submits a question and returns the parsed answer.
//
// Any non-2xx response becomes a *RequestError carrying the status code and
// the raw body text; transport failures become a *RequestError with status 0.
func (c *Client) Ask(ctx context.Context, question string, opts AskOptions) (*AskResponse, error) {
	reqBody := AskRequest{
		Question:   question,
		Web:        opts.Web,
		WebDomains: opts.WebDomains,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, &RequestError{Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ask", bytes.NewReader(body))
	if err != nil {
		return nil, &RequestError{Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newStatusError(resp)
	}

	var wire askResponseWire
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, &RequestError{StatusCode: resp.StatusCode, Cause: err}
	}

	return wire.toResponse(), nil
}

// =============================================================================
// STATUS
// =============================================================================

// Status fetches the service health endpoint. Used once at startup to drive
// the tri-state health indicator; failures are reported but not fatal.
func (c *Client) Status(ctx context.Context) (*StatusResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/status", nil)
	if err != nil {
		return nil, &RequestError{Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newStatusError(resp)
	}

	var result StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &RequestError{StatusCode: resp.StatusCode, Cause: err}
	}

	return &result, nil
}

// newStatusError builds the non-2xx error, preserving the raw body text.
func newStatusError(resp *http.Response) *RequestError {
	// Cap the body read; error payloads are small and an unbounded read of a
	// broken proxy response would stall the UI.
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	return &RequestError{
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}
