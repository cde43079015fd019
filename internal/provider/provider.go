package provider

import (
	"context"
	"fmt"
)

const (
	NameOpenAI     = "openai"
	NameOpenAIChat = "openai-chat"
	NameAnthropic  = "anthropic"
)

// Completer sends one system instruction and one user message to a model.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userContent, model string) (RawResponse, error)
}

// RawResponse is the provider-neutral shape of a completion response.
// Every level is optional.
type RawResponse struct {
	// OutputText is the flattened convenience text, when the provider offers one.
	OutputText *string
	Output     []OutputItem
}

type OutputItem struct {
	Content []ContentItem
}

type ContentItem struct {
	Text *string
}

// Error is returned by every Completer implementation when the call itself fails.
type Error struct {
	Provider string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrapError(provider string, err error) error {
	if err == nil {
		return nil
	}

	return &Error{Provider: provider, Err: err}
}

// New builds the Completer registered under name.
func New(name string, apiKey string) (Completer, error) {
	switch name {
	case NameOpenAI:
		return NewOpenAIResponses(apiKey), nil
	case NameOpenAIChat:
		return NewOpenAIChat(apiKey), nil
	case NameAnthropic:
		return NewAnthropic(apiKey), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", name)
	}
}

// DefaultModel returns the model used when none is configured.
func DefaultModel(name string) string {
	if name == NameAnthropic {
		return DefaultAnthropicModel
	}

	return DefaultOpenAIModel
}
