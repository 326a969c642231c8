// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for communicating with the DataDepot
// question-answering service.
//
// The surface is deliberately tiny: Ask posts a question to /ask and Status
// probes /status. Every failure — non-2xx status or transport error — is
// normalized into a *RequestError carrying the HTTP status code and the raw
// response body, which the chat layer turns into an "Error: ..." bubble. The
// client never retries; retry-on-error is explicitly not part of the UX.
//
// The base URL is injected at construction (see internal/config) so tests can
// point the client at an httptest server.
package api
