package provider

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	DefaultAnthropicModel = "claude-haiku-4-5"

	anthropicMaxTokens int64 = 1024
)

// Anthropic calls Anthropic's Messages API.
type Anthropic struct {
	client anthropic.Client
}

func NewAnthropic(apiKey string, opts ...option.RequestOption) *Anthropic {
	opts = append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)

	return &Anthropic{
		client: anthropic.NewClient(opts...),
	}
}

func (p *Anthropic) Complete(
	ctx context.Context,
	systemPrompt string,
	userContent string,
	model string,
) (RawResponse, error) {
	resp, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: anthropicMaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userContent)),
		},
	})
	if err != nil {
		return RawResponse{}, wrapError(NameAnthropic, fmt.Errorf("do request: %w", err))
	}

	var item OutputItem
	for _, block := range resp.Content {
		if block.Type != "text" {
			continue
		}

		text := block.Text
		item.Content = append(item.Content, ContentItem{Text: &text})
	}

	return RawResponse{Output: []OutputItem{item}}, nil
}
