// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the DataDepot question-answering
// service.
package api

// =============================================================================
// REQUEST TYPES
// =============================================================================

// AskRequest is the JSON body sent to POST /ask.
type AskRequest struct {
	// Question is the user's question, already carrying any mode prefix
	// (for example "GA: top pages last 7 days").
	Question string `json:"question"`

	// Web asks the service to consult live web results when it can.
	Web bool `json:"web,omitempty"`

	// WebDomains restricts web lookups to the listed domains.
	WebDomains []string `json:"web_domains,omitempty"`
}

// AskOptions carries the caller-supplied request options merged into an
// AskRequest alongside the question.
type AskOptions struct {
	Web        bool
	WebDomains []string
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// NoAnswerFallback is substituted for Answer when the service response omits
// the answer field entirely. An explicitly empty answer is passed through
// unchanged.
const NoAnswerFallback = "No answer available."

// AskResponse is the success body of POST /ask.
//
// The service normally includes both fields, but defensively: Answer may be
// empty and Sources may contain empty entries. Callers are expected to trim
// the answer and filter the sources.
type AskResponse struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources"`
}

// askResponseWire is the decode target for POST /ask. The pointer
// distinguishes a response with no answer field from one whose answer is the
// empty string; only the former gets the fallback literal.
type askResponseWire struct {
	Answer  *string  `json:"answer"`
	Sources []string `json:"sources"`
}

func (w askResponseWire) toResponse() *AskResponse {
	resp := &AskResponse{Sources: w.Sources}
	if w.Answer == nil {
		resp.Answer = NoAnswerFallback
	} else {
		resp.Answer = *w.Answer
	}
	return resp
}

// StatusResponse is the body of GET /status.
type StatusResponse struct {
	// OK reports overall service health.
	OK bool `json:"ok"`

	// Asana reports whether the optional Asana integration is configured
	// on the server.
	Asana bool `json:"asana"`
}
