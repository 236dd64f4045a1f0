package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// reservedKey marks scraper bookkeeping in the content file, not page text.
const reservedKey = "processed_urls"

// DefaultMaxChars bounds the concatenated corpus handed to the remote call,
// roughly 100k tokens.
const DefaultMaxChars = 400000

// Corpus is the bounded, read-only grounding text shared by all answer
// requests.
type Corpus struct {
	text string
}

// Load reads the scraped-content JSON file (source URL -> page text) and
// builds the bounded corpus from it.
func Load(path string, maxChars int) (*Corpus, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus file: %w", err)
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse corpus file: %w", err)
	}

	pages := make(map[string]string, len(entries))
	for key, value := range entries {
		if key == reservedKey {
			continue
		}
		var content string
		if err := json.Unmarshal(value, &content); err != nil {
			// Non-string entries are scraper metadata, skip them.
			continue
		}
		pages[key] = content
	}

	return FromMap(pages, maxChars), nil
}

// FromMap builds a corpus from already-loaded page content. Pages are
// concatenated in sorted key order so the result is deterministic.
func FromMap(pages map[string]string, maxChars int) *Corpus {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}

	keys := make([]string, 0, len(pages))
	for key := range pages {
		if key == reservedKey {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for i, key := range keys {
		if i > 0 {
			builder.WriteString("\n\n")
		}
		builder.WriteString("Source: ")
		builder.WriteString(key)
		builder.WriteString("\n")
		builder.WriteString(pages[key])
	}

	return &Corpus{text: truncate(builder.String(), maxChars)}
}

// Empty returns a corpus with no grounding text. The engine stays functional
// without one; answers lean on the model's instruction and the fallback path.
func Empty() *Corpus {
	return &Corpus{}
}

// Text returns the concatenated grounding text.
func (c *Corpus) Text() string {
	return c.text
}

// Len reports the corpus size in characters.
func (c *Corpus) Len() int {
	return len([]rune(c.text))
}

func truncate(text string, maxChars int) string {
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return string(runes[:maxChars])
}
