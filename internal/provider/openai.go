package provider

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"
	"github.com/tidwall/gjson"
)

const DefaultOpenAIModel = "gpt-4o-mini"

// OpenAIResponses calls OpenAI's Responses API.
type OpenAIResponses struct {
	client openai.Client
}

func NewOpenAIResponses(apiKey string, opts ...option.RequestOption) *OpenAIResponses {
	return &OpenAIResponses{
		client: openai.NewClient(openAIOptions(apiKey, opts)...),
	}
}

func (p *OpenAIResponses) Complete(
	ctx context.Context,
	systemPrompt string,
	userContent string,
	model string,
) (RawResponse, error) {
	resp, err := p.client.Responses.New(ctx, responses.ResponseNewParams{
		Model:        shared.ResponsesModel(model),
		Instructions: openai.String(systemPrompt),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: openai.String(userContent),
		},
	})
	if err != nil {
		return RawResponse{}, wrapError(NameOpenAI, fmt.Errorf("do request: %w", err))
	}

	return responsesToRaw(resp.OutputText(), resp.RawJSON()), nil
}

// responsesToRaw maps the Responses payload onto RawResponse.
// Nested output is read from the raw JSON.
func responsesToRaw(outputText string, rawJSON string) RawResponse {
	var raw RawResponse
	if outputText != "" {
		raw.OutputText = &outputText
	}

	gjson.Get(rawJSON, "output").ForEach(func(_, item gjson.Result) bool {
		var out OutputItem
		item.Get("content").ForEach(func(_, content gjson.Result) bool {
			var c ContentItem
			if text := content.Get("text"); text.Type == gjson.String {
				s := text.String()
				c.Text = &s
			}
			out.Content = append(out.Content, c)

			return true
		})
		raw.Output = append(raw.Output, out)

		return true
	})

	return raw
}

// OpenAIChat calls OpenAI's Chat Completions API.
type OpenAIChat struct {
	client openai.Client
}

func NewOpenAIChat(apiKey string, opts ...option.RequestOption) *OpenAIChat {
	return &OpenAIChat{
		client: openai.NewClient(openAIOptions(apiKey, opts)...),
	}
}

func (p *OpenAIChat) Complete(
	ctx context.Context,
	systemPrompt string,
	userContent string,
	model string,
) (RawResponse, error) {
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userContent),
		},
	})
	if err != nil {
		return RawResponse{}, wrapError(NameOpenAIChat, fmt.Errorf("do request: %w", err))
	}

	var raw RawResponse
	for _, choice := range resp.Choices {
		content := choice.Message.Content
		raw.Output = append(raw.Output, OutputItem{
			Content: []ContentItem{{Text: &content}},
		})
	}

	return raw, nil
}

// openAIOptions disables the SDK's built-in retries. Callers may still override them.
func openAIOptions(apiKey string, opts []option.RequestOption) []option.RequestOption {
	return append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)
}
