// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package suggest generates follow-up prompt suggestions for the composer.
package suggest

import "strings"

// =============================================================================
// MODES
// =============================================================================

// Mode selects which suggestion generator drives the dropdown.
type Mode string

const (
	// ModeWeb suggests web-search style prompts.
	ModeWeb Mode = "web"

	// ModeGA suggests Google Analytics style prompts.
	ModeGA Mode = "ga"
)

// DisplayName returns the human-readable label shown in the status bar.
func (m Mode) DisplayName() string {
	switch m {
	case ModeWeb:
		return "Web"
	case ModeGA:
		return "Analytics"
	default:
		return string(m)
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeGA {
		return ModeWeb
	}
	return ModeGA
}

// MaxSuggestions caps the dropdown length.
const MaxSuggestions = 10

// =============================================================================
// KEYWORD TABLES
// =============================================================================

// webKeywords are recency qualifiers appended to the query in web mode.
var webKeywords = []string{
	"latest",
	"today",
	"this week",
	"news",
	"2025",
}

// gaKeywords are analytics metrics the query is scoped to in ga mode.
var gaKeywords = []string{
	"top pages",
	"top countries",
	"daily active users",
	"total active users",
	"busiest days",
}

// webExamples are curated starting prompts for web mode.
var webExamples = []string{
	"What is happening in renewable energy this week?",
	"Summarize the latest marketing trends",
	"What are competitors posting on Instagram?",
	"Find recent news about data privacy regulation",
	"What changed in the Google Analytics 4 API?",
}

// gaExamples are curated starting prompts for ga mode.
var gaExamples = []string{
	"top pages last 7 days",
	"top countries by active users",
	"daily active users this month",
	"which day had the most visitors?",
	"compare this week's traffic to last week",
}

// =============================================================================
// GENERATORS
// =============================================================================

// For returns suggestions for the given mode. Unknown modes fall back to web.
func For(mode Mode, query string) []string {
	if mode == ModeGA {
		return ForAnalytics(query)
	}
	return ForWeb(query)
}

// ForWeb builds the web-mode suggestion list for the current query.
//
// Order is a contract: the literal query first, then keyword expansions, then
// curated examples. The dropdown highlights index 0 by default, so the most
// literal interpretation of the input must come first.
func ForWeb(query string) []string {
	return build(query, webKeywords, webExamples, func(q, kw string) string {
		return q + " " + kw
	})
}

// ForAnalytics builds the ga-mode suggestion list for the current query.
func ForAnalytics(query string) []string {
	return build(query, gaKeywords, gaExamples, func(q, kw string) string {
		return kw + " for " + q
	})
}

func build(query string, keywords, examples []string, expand func(q, kw string) string) []string {
	query = strings.TrimSpace(query)

	candidates := make([]string, 0, 1+len(keywords)+len(examples))
	if query != "" {
		candidates = append(candidates, query)
		for _, kw := range keywords {
			candidates = append(candidates, expand(query, kw))
		}
	}

	lower := strings.ToLower(query)
	for _, ex := range examples {
		if query == "" || strings.Contains(strings.ToLower(ex), lower) {
			candidates = append(candidates, ex)
		}
	}

	return dedupe(candidates, MaxSuggestions)
}

// dedupe drops empties and duplicates, preserving first occurrence, capped at
// limit entries.
func dedupe(items []string, limit int) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item == "" {
			continue
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
		if len(out) == limit {
			break
		}
	}
	return out
}
