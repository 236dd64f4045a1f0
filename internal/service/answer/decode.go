package answer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/binarysemantics/ichatrobo/internal/model/convo"
)

var errMissingIntro = errors.New("payload has no intro to reveal")

// Decode parses a raw model payload into a StructuredResponse. The decode is
// deliberately lenient: missing array fields become empty slices and unknown
// related-card kinds are normalized, so downstream consumers never branch on
// payload shape. An absent intro is a schema violation — the widget would
// have nothing to reveal — and fails the decode.
func Decode(raw string) (*convo.StructuredResponse, error) {
	raw = stripCodeFence(raw)

	var resp convo.StructuredResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("decode structured payload: %w", err)
	}

	if strings.TrimSpace(resp.Intro) == "" {
		return nil, errMissingIntro
	}

	if resp.Sections == nil {
		resp.Sections = []convo.Section{}
	}
	if resp.Related == nil {
		resp.Related = []convo.RelatedItem{}
	}
	if resp.Suggestions == nil {
		resp.Suggestions = []string{}
	}
	for i := range resp.Related {
		resp.Related[i].Kind = resp.Related[i].Kind.Normalize()
	}

	return &resp, nil
}

// stripCodeFence unwraps ```json fenced output some models insist on emitting
// even when asked for bare JSON.
func stripCodeFence(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
