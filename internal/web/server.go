package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"slices"
	"smartsummarizer/internal/domain"
	"smartsummarizer/internal/handler"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	indexTemplate = "index.html"

	readHeaderTimeout = 10 * time.Second
)

//go:embed templates/*.html
var templatesFS embed.FS

// Summarizer turns form fields into a result. *handler.Handler implements it.
type Summarizer interface {
	Handle(ctx context.Context, fields map[string]string) domain.SummaryResult
}

type Server struct {
	engine     *gin.Engine
	summarizer Summarizer
	log        *slog.Logger
}

func New(summarizer Summarizer, log *slog.Logger) (*Server, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		engine:     gin.New(),
		summarizer: summarizer,
		log:        log,
	}

	s.engine.SetHTMLTemplate(tmpl)
	s.engine.Use(gin.Recovery(), requestLogger(log))

	s.engine.GET("/", s.index)
	s.engine.POST("/summarize", s.summarizeForm)
	s.engine.POST("/api/summarize", s.summarizeAPI)
	s.engine.GET("/health", s.health)

	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen and serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}

	return nil
}

type pageData struct {
	Text           string
	SummaryType    domain.SummaryType
	TargetLanguage string
	Sentiment      bool
	SummaryTypes   []domain.SummaryType
	Languages      []string
	Summary        string
	SentimentLabel string
	Error          string
}

func newPageData(req domain.SummaryRequest) pageData {
	languages := domain.TargetLanguages
	if !slices.Contains(languages, req.TargetLanguage) {
		languages = append(slices.Clone(languages), req.TargetLanguage)
	}

	return pageData{
		Text:           req.Text,
		SummaryType:    req.Type,
		TargetLanguage: req.TargetLanguage,
		Sentiment:      req.SentimentEnabled,
		SummaryTypes:   domain.SummaryTypes,
		Languages:      languages,
	}
}

func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, indexTemplate, newPageData(handler.ParseRequest(nil)))
}

func (s *Server) summarizeForm(c *gin.Context) {
	fields := map[string]string{
		handler.FieldText:           c.PostForm(handler.FieldText),
		handler.FieldSummaryType:    c.PostForm(handler.FieldSummaryType),
		handler.FieldTargetLanguage: c.PostForm(handler.FieldTargetLanguage),
		handler.FieldSentiment:      c.PostForm(handler.FieldSentiment),
	}

	result := s.summarizer.Handle(c.Request.Context(), fields)

	data := newPageData(handler.ParseRequest(fields))
	data.Summary = deref(result.Summary)
	data.SentimentLabel = deref(result.Sentiment)
	data.Error = deref(result.Error)

	c.HTML(http.StatusOK, indexTemplate, data)
}

type summarizeRequest struct {
	Text           string `json:"text"`
	SummaryType    string `json:"summary_type"`
	TargetLanguage string `json:"target_language"`
	Sentiment      bool   `json:"sentiment"`
}

type summarizeResponse struct {
	Summary   *string `json:"summary,omitempty"`
	Sentiment *string `json:"sentiment,omitempty"`
	Error     *string `json:"error,omitempty"`
}

func (s *Server) summarizeAPI(c *gin.Context) {
	var req summarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.log.InfoContext(c.Request.Context(), "Invalid summarize request body",
			"error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	fields := map[string]string{
		handler.FieldText:           req.Text,
		handler.FieldSummaryType:    req.SummaryType,
		handler.FieldTargetLanguage: req.TargetLanguage,
	}
	if req.Sentiment {
		fields[handler.FieldSentiment] = "on"
	}

	result := s.summarizer.Handle(c.Request.Context(), fields)

	c.JSON(statusOf(result), summarizeResponse{
		Summary:   result.Summary,
		Sentiment: result.Sentiment,
		Error:     result.Error,
	})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func statusOf(result domain.SummaryResult) int {
	switch {
	case !result.Failed():
		return http.StatusOK
	case *result.Error == handler.MessageEmptyText:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
