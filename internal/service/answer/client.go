// Package answer turns user queries into structured responses, delegating to
// a generative backend and absorbing every failure into the canned fallback.
package answer

import (
	"context"
	"log"
	"time"

	"github.com/binarysemantics/ichatrobo/internal/fallback"
	"github.com/binarysemantics/ichatrobo/internal/model/convo"
)

// Generator produces the raw schema-constrained JSON payload for a query.
// Implementations wrap one specific model provider.
type Generator interface {
	Generate(ctx context.Context, query string) (string, error)
}

const defaultTimeout = 30 * time.Second

// Client resolves queries into StructuredResponse values. Fetch never fails:
// transport errors, timeouts and malformed payloads all land on the fallback
// selector, so the conversation cannot dead-end on a bare error.
type Client struct {
	gen     Generator
	timeout time.Duration
}

// NewClient wraps a generator. A nil generator is allowed and serves every
// query from the fallback selector, which keeps the widget alive when no
// model credentials are configured.
func NewClient(gen Generator, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{gen: gen, timeout: timeout}
}

// Fetch returns the structured answer for a query. The result is always
// non-nil and shaped identically whether it came from the model or the
// fallback path.
func (c *Client) Fetch(ctx context.Context, query string) *convo.StructuredResponse {
	if c.gen == nil {
		return fallback.Select(query)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	raw, err := c.gen.Generate(ctx, query)
	if err != nil {
		log.Printf("[answer] generation failed, serving fallback: %v", err)
		return fallback.Select(query)
	}

	resp, err := Decode(raw)
	if err != nil {
		log.Printf("[answer] malformed payload, serving fallback: %v", err)
		return fallback.Select(query)
	}

	return resp
}
