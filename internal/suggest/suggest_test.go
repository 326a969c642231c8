// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package suggest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForWebOrdering(t *testing.T) {
	got := ForWeb("solar panels")

	require.NotEmpty(t, got)
	assert.Equal(t, "solar panels", got[0], "literal query comes first")
	assert.Equal(t, "solar panels latest", got[1])
	assert.Equal(t, "solar panels today", got[2])
	assert.Equal(t, "solar panels this week", got[3])
	assert.Equal(t, "solar panels news", got[4])
	assert.Equal(t, "solar panels 2025", got[5])
}

func TestForAnalyticsOrdering(t *testing.T) {
	got := ForAnalytics("blog")

	require.NotEmpty(t, got)
	assert.Equal(t, "blog", got[0])
	assert.Equal(t, "top pages for blog", got[1])
	assert.Equal(t, "top countries for blog", got[2])
	assert.Equal(t, "daily active users for blog", got[3])
	assert.Equal(t, "total active users for blog", got[4])
	assert.Equal(t, "busiest days for blog", got[5])
}

func TestEmptyQueryShowsExamplesOnly(t *testing.T) {
	web := ForWeb("")
	ga := ForAnalytics("   ")

	require.NotEmpty(t, web)
	require.NotEmpty(t, ga)
	for _, s := range web {
		assert.NotContains(t, s, "  ", "no keyword expansions without a query")
	}
	assert.Equal(t, "top pages last 7 days", ga[0], "examples lead when the query is blank")
}

func TestExampleFilterIsCaseInsensitive(t *testing.T) {
	got := ForWeb("INSTAGRAM")

	var matched bool
	for _, s := range got[6:] { // past the query + 5 expansions
		assert.Contains(t, strings.ToLower(s), "instagram")
		matched = true
	}
	assert.True(t, matched)
}

func TestNonMatchingQueryDropsExamples(t *testing.T) {
	got := ForAnalytics("zzqx")

	// Query + 5 keyword expansions, no curated examples survive the filter.
	assert.Len(t, got, 6)
}

func TestDedupePreservesFirstOccurrence(t *testing.T) {
	// A query equal to a curated example must not appear twice.
	got := ForAnalytics("top pages last 7 days")

	seen := map[string]int{}
	for _, s := range got {
		seen[s]++
	}
	for s, n := range seen {
		assert.Equal(t, 1, n, "duplicate suggestion: %q", s)
	}
	assert.Equal(t, "top pages last 7 days", got[0])
}

func TestCapAtMaxSuggestions(t *testing.T) {
	assert.LessOrEqual(t, len(ForWeb("a")), MaxSuggestions)
	assert.LessOrEqual(t, len(ForAnalytics("a")), MaxSuggestions)
}

func TestQueryIsTrimmed(t *testing.T) {
	got := ForWeb("  solar  ")
	assert.Equal(t, "solar", got[0])
	assert.Equal(t, "solar latest", got[1])
}

func TestModeHelpers(t *testing.T) {
	assert.Equal(t, ModeGA, ModeWeb.Toggle())
	assert.Equal(t, ModeWeb, ModeGA.Toggle())
	assert.Equal(t, "Web", ModeWeb.DisplayName())
	assert.Equal(t, "Analytics", ModeGA.DisplayName())

	assert.Equal(t, ForWeb("x"), For(ModeWeb, "x"))
	assert.Equal(t, ForAnalytics("x"), For(ModeGA, "x"))
	assert.Equal(t, ForWeb("x"), For(Mode("bogus"), "x"))
}
