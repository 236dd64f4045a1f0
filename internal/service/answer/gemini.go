package answer

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// GeminiGenerator produces structured answers through the Gemini API with a
// native response schema, so the model is constrained to emit parseable JSON
// rather than free text.
type GeminiGenerator struct {
	client *genai.Client
	model  string
	corpus string
}

// NewGeminiGenerator builds the Gemini-backed generator. The corpus text is
// shared read-only by every request.
func NewGeminiGenerator(ctx context.Context, apiKey, model, corpusText string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiGenerator{
		client: client,
		model:  model,
		corpus: corpusText,
	}, nil
}

// Generate issues one structured-content request and returns the raw JSON
// payload.
func (g *GeminiGenerator) Generate(ctx context.Context, query string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(buildUserPrompt(g.corpus, query), genai.RoleUser),
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    responseSchema(),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("gemini returned an empty payload")
	}
	return text, nil
}

// responseSchema mirrors the StructuredResponse shape field for field,
// including the three-valued related-card kind.
func responseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"intro": {
				Type:        genai.TypeString,
				Description: "A short introductory paragraph answering the query.",
			},
			"sections": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"content": {
							Type:        genai.TypeString,
							Description: "A detailed point or section. You can use HTML <span> tags with Tailwind classes like <span class='font-bold text-gray-900'> for emphasis.",
						},
					},
				},
			},
			"related": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"title": {Type: genai.TypeString},
						"type": {
							Type:        genai.TypeString,
							Description: "Must be one of: 'Learn more', 'Download brochure', 'Case study'",
							Enum:        []string{"Learn more", "Download brochure", "Case study"},
						},
						"image": {
							Type:        genai.TypeString,
							Description: "A relevant Unsplash image URL, e.g., https://images.unsplash.com/photo-...",
						},
						"url": {
							Type:        genai.TypeString,
							Description: "A relevant URL from the provided website content.",
						},
					},
				},
			},
			"suggestions": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "3 follow-up questions the user can ask.",
			},
		},
		Required: []string{"intro", "sections", "related", "suggestions"},
	}
}
