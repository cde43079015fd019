package provider_test

import (
	"smartsummarizer/internal/provider"
	"testing"
)

func ptr(s string) *string {
	return &s
}

func TestExtractTextPrefersOutputText(t *testing.T) {
	raw := provider.RawResponse{
		OutputText: ptr("  flattened summary \n"),
		Output: []provider.OutputItem{
			{Content: []provider.ContentItem{{Text: ptr("nested summary")}}},
		},
	}

	got, ok := provider.ExtractText(raw)
	if !ok {
		t.Fatalf("expected text to be extracted")
	}
	if got != "flattened summary" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestExtractTextFallsBackToNestedOutput(t *testing.T) {
	raw := provider.RawResponse{
		Output: []provider.OutputItem{
			{Content: []provider.ContentItem{{Text: ptr("\tnested summary  ")}, {Text: ptr("second")}}},
			{Content: []provider.ContentItem{{Text: ptr("other item")}}},
		},
	}

	got, ok := provider.ExtractText(raw)
	if !ok {
		t.Fatalf("expected nested text to be extracted")
	}
	if got != "nested summary" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestExtractTextBlankOutputTextFallsBack(t *testing.T) {
	raw := provider.RawResponse{
		OutputText: ptr("   "),
		Output: []provider.OutputItem{
			{Content: []provider.ContentItem{{Text: ptr("nested")}}},
		},
	}

	if got, ok := provider.ExtractText(raw); !ok || got != "nested" {
		t.Fatalf("expected nested fallback, got %q (ok = %v)", got, ok)
	}
}

func TestExtractTextAbsent(t *testing.T) {
	tests := []struct {
		name string
		raw  provider.RawResponse
	}{
		{name: "empty response", raw: provider.RawResponse{}},
		{name: "output item without content", raw: provider.RawResponse{
			Output: []provider.OutputItem{{}},
		}},
		{name: "content without text", raw: provider.RawResponse{
			Output: []provider.OutputItem{{Content: []provider.ContentItem{{}}}},
		}},
		{name: "blank nested text", raw: provider.RawResponse{
			OutputText: ptr(""),
			Output:     []provider.OutputItem{{Content: []provider.ContentItem{{Text: ptr(" \n ")}}}},
		}},
		{name: "text only in second output item", raw: provider.RawResponse{
			Output: []provider.OutputItem{{}, {Content: []provider.ContentItem{{Text: ptr("late")}}}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, ok := provider.ExtractText(tt.raw); ok {
				t.Fatalf("expected absent text, got %q", got)
			}
		})
	}
}
