package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"smartsummarizer/internal/domain"
	"smartsummarizer/internal/provider"
	"strings"

	"github.com/mark3labs/flyt"
)

const (
	FieldText           = "text"
	FieldSummaryType    = "summary_type"
	FieldTargetLanguage = "target_language"
	FieldSentiment      = "sentiment"

	MessageEmptyText = "Error: Please enter some text to summarize."
	MessageNoSummary = "Error: Unable to generate a summary. Please try again."

	summaryFailureFormat   = "Error: Failed to generate summary (%s)"
	sentimentFailureFormat = "Error: Failed to analyze sentiment (%s)"

	sentimentEnabledValue = "on"
)

// SummaryGenerator returns ok == false when no summary could be extracted.
type SummaryGenerator interface {
	Summarize(ctx context.Context, req domain.SummaryRequest) (string, bool, error)
}

// SentimentAnalyzer returns ok == false when no label could be extracted.
type SentimentAnalyzer interface {
	Analyze(ctx context.Context, text string) (string, bool, error)
}

// Handler turns submitted form fields into a SummaryResult.
// It never returns an error: every failure becomes a displayable message.
type Handler struct {
	generator SummaryGenerator
	analyzer  SentimentAnalyzer
	log       *slog.Logger
}

func New(generator SummaryGenerator, analyzer SentimentAnalyzer, log *slog.Logger) *Handler {
	return &Handler{
		generator: generator,
		analyzer:  analyzer,
		log:       log,
	}
}

// ParseRequest reads the form fields, applying defaults.
func ParseRequest(fields map[string]string) domain.SummaryRequest {
	targetLanguage := strings.TrimSpace(fields[FieldTargetLanguage])
	if targetLanguage == "" {
		targetLanguage = domain.DefaultTargetLanguage
	}

	return domain.SummaryRequest{
		Text:             strings.TrimSpace(fields[FieldText]),
		Type:             domain.ParseSummaryType(fields[FieldSummaryType]),
		TargetLanguage:   targetLanguage,
		SentimentEnabled: fields[FieldSentiment] == sentimentEnabledValue,
	}
}

func (h *Handler) Handle(ctx context.Context, fields map[string]string) domain.SummaryResult {
	req := ParseRequest(fields)
	if req.Text == "" {
		h.log.InfoContext(ctx, "Summary request is rejected",
			"reason", "empty text")

		return domain.ErrorOf(MessageEmptyText)
	}

	shared := flyt.NewSharedStore()
	shared.Set(keyRequest, req)

	runErr := h.newFlow().Run(ctx, shared)
	result, hasResult := resultFrom(shared)

	if runErr != nil {
		h.log.ErrorContext(ctx, "Summary flow is interrupted",
			"error", runErr,
			"hasResult", hasResult,
			"summaryType", req.Type)

		if !hasResult || result.Summary == nil {
			return domain.ErrorOf(fmt.Sprintf(summaryFailureFormat, errorDetail(runErr)))
		}
		if req.SentimentEnabled && result.Sentiment == nil {
			msg := fmt.Sprintf(sentimentFailureFormat, errorDetail(runErr))
			result.Sentiment = &msg
		}

		return result
	}

	if !hasResult {
		return domain.ErrorOf(MessageNoSummary)
	}

	return result
}

func resultFrom(shared *flyt.SharedStore) (domain.SummaryResult, bool) {
	v, ok := shared.Get(keyResult)
	if !ok {
		return domain.SummaryResult{}, false
	}

	result, ok := v.(domain.SummaryResult)

	return result, ok
}

// errorDetail returns the SDK error behind a provider failure,
// or err itself when no provider is involved.
func errorDetail(err error) error {
	var providerErr *provider.Error
	if !errors.As(err, &providerErr) {
		return err
	}

	if sdkErr := errors.Unwrap(providerErr.Err); sdkErr != nil {
		return sdkErr
	}

	return providerErr.Err
}
