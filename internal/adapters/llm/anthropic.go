package llm

import (
	"context"
	"errors"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

const DefaultModel = "claude-sonnet-4-5-20250929"

// AnthropicGenerator implements the Generator port on the official
// Anthropic SDK. One user instruction goes in, the concatenated text
// blocks of the reply come out; whether the model was steered into strict
// JSON output or not is the caller's parsing problem.
type AnthropicGenerator struct {
	client    sdk.Client
	model     string
	maxTokens int64
}

func NewAnthropicGenerator(apiKey, model string) (*AnthropicGenerator, error) {
	if apiKey == "" {
		return nil, errors.New("anthropic api key is empty")
	}
	if model == "" {
		model = DefaultModel
	}

	return &AnthropicGenerator{
		client:    sdk.NewClient(option.WithAPIKey(apiKey)),
		model:     model,
		maxTokens: 600,
	}, nil
}

func (g *AnthropicGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	msg, err := g.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(g.model),
		MaxTokens: g.maxTokens,
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", eris.Wrap(err, "llm: create message")
	}

	var out string
	for _, block := range msg.Content {
		out += block.Text
	}

	zap.L().Debug("generation completed",
		zap.String("model", g.model),
		zap.Int64("input_tokens", msg.Usage.InputTokens),
		zap.Int64("output_tokens", msg.Usage.OutputTokens),
	)

	return out, nil
}
