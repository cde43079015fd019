package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"smartsummarizer/internal/domain"

	"github.com/mark3labs/flyt"
)

const (
	keyRequest = "request"
	keyResult  = "result"

	actionSentiment flyt.Action = "sentiment"
)

var errMissingRequest = errors.New("summary request is missing from shared store")

// newFlow wires summary -> sentiment. The sentiment step only runs
// when the summary node reports actionSentiment.
func (h *Handler) newFlow() *flyt.Flow {
	summary := &summaryNode{
		BaseNode:  flyt.NewBaseNode(),
		generator: h.generator,
		log:       h.log,
	}
	sentiment := &sentimentNode{
		BaseNode: flyt.NewBaseNode(),
		analyzer: h.analyzer,
		log:      h.log,
	}

	flow := flyt.NewFlow(summary)
	flow.Connect(summary, actionSentiment, sentiment)

	return flow
}

type outcome struct {
	text string
	ok   bool
	err  error
}

type summaryNode struct {
	*flyt.BaseNode
	generator SummaryGenerator
	log       *slog.Logger
}

func (n *summaryNode) Prep(_ context.Context, shared *flyt.SharedStore) (any, error) {
	v, ok := shared.Get(keyRequest)
	if !ok {
		return nil, errMissingRequest
	}

	req, ok := v.(domain.SummaryRequest)
	if !ok {
		return nil, fmt.Errorf("unexpected request type %T", v)
	}

	return req, nil
}

// Exec never fails: provider errors travel in the outcome.
func (n *summaryNode) Exec(ctx context.Context, prepResult any) (any, error) {
	req, ok := prepResult.(domain.SummaryRequest)
	if !ok {
		return nil, fmt.Errorf("unexpected prep result type %T", prepResult)
	}

	summary, found, err := n.generator.Summarize(ctx, req)

	return outcome{text: summary, ok: found, err: err}, nil
}

func (n *summaryNode) Post(
	ctx context.Context,
	shared *flyt.SharedStore,
	prepResult any,
	execResult any,
) (flyt.Action, error) {
	req, _ := prepResult.(domain.SummaryRequest)
	out, ok := execResult.(outcome)
	if !ok {
		return "", fmt.Errorf("unexpected exec result type %T", execResult)
	}

	switch {
	case out.err != nil:
		n.log.ErrorContext(ctx, "Failed to generate summary",
			"error", out.err,
			"summaryType", req.Type,
			"targetLanguage", req.TargetLanguage,
			"textLength", len(req.Text))
		shared.Set(keyResult, domain.ErrorOf(fmt.Sprintf(summaryFailureFormat, errorDetail(out.err))))

		return flyt.DefaultAction, nil
	case !out.ok:
		n.log.WarnContext(ctx, "Summary is missing from provider response",
			"summaryType", req.Type,
			"targetLanguage", req.TargetLanguage)
		shared.Set(keyResult, domain.ErrorOf(MessageNoSummary))

		return flyt.DefaultAction, nil
	}

	shared.Set(keyResult, domain.SummaryOf(out.text))

	if req.SentimentEnabled {
		return actionSentiment, nil
	}

	return flyt.DefaultAction, nil
}

type sentimentNode struct {
	*flyt.BaseNode
	analyzer SentimentAnalyzer
	log      *slog.Logger
}

func (n *sentimentNode) Prep(_ context.Context, shared *flyt.SharedStore) (any, error) {
	v, ok := shared.Get(keyRequest)
	if !ok {
		return nil, errMissingRequest
	}

	req, ok := v.(domain.SummaryRequest)
	if !ok {
		return nil, fmt.Errorf("unexpected request type %T", v)
	}

	return req.Text, nil
}

func (n *sentimentNode) Exec(ctx context.Context, prepResult any) (any, error) {
	text, ok := prepResult.(string)
	if !ok {
		return nil, fmt.Errorf("unexpected prep result type %T", prepResult)
	}

	label, found, err := n.analyzer.Analyze(ctx, text)

	return outcome{text: label, ok: found, err: err}, nil
}

func (n *sentimentNode) Post(
	ctx context.Context,
	shared *flyt.SharedStore,
	_ any,
	execResult any,
) (flyt.Action, error) {
	out, ok := execResult.(outcome)
	if !ok {
		return "", fmt.Errorf("unexpected exec result type %T", execResult)
	}

	result, ok := resultFrom(shared)
	if !ok {
		return "", errors.New("summary result is missing from shared store")
	}

	switch {
	case out.err != nil:
		n.log.ErrorContext(ctx, "Failed to analyze sentiment",
			"error", out.err)
		msg := fmt.Sprintf(sentimentFailureFormat, errorDetail(out.err))
		result.Sentiment = &msg
	case !out.ok:
		n.log.WarnContext(ctx, "Sentiment is missing from provider response")
	default:
		label := out.text
		result.Sentiment = &label
	}

	shared.Set(keyResult, result)

	return flyt.DefaultAction, nil
}
