package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"smartsummarizer/internal/cache"
	"smartsummarizer/internal/domain"
	"smartsummarizer/internal/provider"
	"time"
)

// Generator produces summaries through a provider.Completer.
type Generator struct {
	completer provider.Completer
	model     string
	cache     *cache.Cache
	cacheTTL  time.Duration
	now       func() time.Time
	log       *slog.Logger
}

type Option func(*Generator)

// WithCache makes the generator reuse summaries for ttl. A nil cache disables it.
func WithCache(c *cache.Cache, ttl time.Duration) Option {
	return func(g *Generator) {
		g.cache = c
		g.cacheTTL = ttl
	}
}

func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

func NewGenerator(
	completer provider.Completer,
	model string,
	log *slog.Logger,
	opts ...Option,
) *Generator {
	g := &Generator{
		completer: completer,
		model:     model,
		now:       time.Now,
		log:       log,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Summarize returns the summary, or ok == false when the provider answered without text.
// Provider failures are returned to the caller.
func (g *Generator) Summarize(
	ctx context.Context,
	req domain.SummaryRequest,
) (string, bool, error) {
	now := g.now()
	key := cache.Key(string(req.Type), req.TargetLanguage, req.Text)

	if summary, ok := g.cache.Get(key, now); ok {
		g.log.DebugContext(ctx, "Summary is served from cache",
			"summaryType", req.Type,
			"targetLanguage", req.TargetLanguage)

		return summary, true, nil
	}

	raw, err := g.completer.Complete(
		ctx,
		summarySystemPrompt,
		SummaryPrompt(req.Type, req.TargetLanguage, req.Text),
		g.model,
	)
	if err != nil {
		return "", false, fmt.Errorf("complete summary: %w", err)
	}

	summary, ok := provider.ExtractText(raw)
	if !ok {
		return "", false, nil
	}

	if g.cacheTTL > 0 {
		g.cache.Set(key, summary, now.Add(g.cacheTTL), now)
	}

	return summary, true, nil
}

// Analyzer labels text as Positive, Neutral or Negative through a provider.Completer.
type Analyzer struct {
	completer provider.Completer
	model     string
}

func NewAnalyzer(completer provider.Completer, model string) *Analyzer {
	return &Analyzer{
		completer: completer,
		model:     model,
	}
}

func (a *Analyzer) Analyze(ctx context.Context, text string) (string, bool, error) {
	raw, err := a.completer.Complete(ctx, sentimentSystemPrompt, SentimentPrompt(text), a.model)
	if err != nil {
		return "", false, fmt.Errorf("complete sentiment: %w", err)
	}

	label, ok := provider.ExtractText(raw)

	return label, ok, nil
}
