// Package fallback generates deterministic canned answers so the conversation
// never dead-ends when the remote structured-answer call fails.
package fallback

import (
	"strings"

	"github.com/binarysemantics/ichatrobo/internal/model/convo"
)

// Keyword buckets are checked in priority order: fleet wins over insurance
// when a query matches both.
var (
	fleetKeywords     = []string{"fleet", "transport"}
	insuranceKeywords = []string{"insurance"}
)

// Select maps a raw user query to one of the canned structured responses.
// Matching is case-insensitive and the function is pure: identical input
// always yields identical output.
func Select(query string) *convo.StructuredResponse {
	q := strings.ToLower(query)

	switch {
	case containsAny(q, fleetKeywords):
		return fleetResponse.Clone()
	case containsAny(q, insuranceKeywords):
		return insuranceResponse.Clone()
	default:
		return genericResponse.Clone()
	}
}

func containsAny(text string, keywords []string) bool {
	for _, word := range keywords {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
