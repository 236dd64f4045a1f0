package answer

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
)

// ArkGenerator produces structured answers through an eino prompt chain. Ark
// has no native response-schema support, so the output contract rides in the
// system prompt and the payload is fence-stripped before decoding.
type ArkGenerator struct {
	chain  compose.Runnable[map[string]any, *schema.Message]
	corpus string
}

// NewArkGenerator compiles the prompt chain around the supplied chat model.
func NewArkGenerator(ctx context.Context, chatModel model.ChatModel, corpusText string) (*ArkGenerator, error) {
	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("compile answer chain: %w", err)
	}

	return &ArkGenerator{chain: runnable, corpus: corpusText}, nil
}

// Generate issues one structured-content request and returns the raw payload.
func (g *ArkGenerator) Generate(ctx context.Context, query string) (string, error) {
	input := map[string]any{
		"system": systemInstruction + "\n\n" + schemaHint,
		"query":  buildUserPrompt(g.corpus, query),
	}

	response, err := g.chain.Invoke(ctx, input)
	if err != nil {
		return "", fmt.Errorf("run answer chain: %w", err)
	}

	if response.Content == "" {
		return "", errors.New("ark returned an empty payload")
	}
	return response.Content, nil
}
