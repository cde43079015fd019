package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"smartsummarizer/internal/cache"
	"smartsummarizer/internal/config"
	"smartsummarizer/internal/handler"
	"smartsummarizer/internal/provider"
	"smartsummarizer/internal/scheduler"
	"smartsummarizer/internal/summarizer"
	"smartsummarizer/internal/web"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	start := time.Now()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.ErrorContext(ctx, "Failed to load config",
			"error", err)

		return
	}

	level, _ := cfg.SlogLevel()
	log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)
	log.InfoContext(ctx, "Config is loaded",
		"provider", cfg.Provider,
		"model", cfg.Model,
		"httpAddr", cfg.HTTPAddr,
		"cacheSize", cfg.CacheSize)

	completer, err := provider.New(cfg.Provider, cfg.APIKey())
	if err != nil {
		log.ErrorContext(ctx, "Failed to create provider",
			"error", err,
			"provider", cfg.Provider)

		return
	}
	log.InfoContext(ctx, "Provider is initialized",
		"provider", cfg.Provider)

	summaryCache := cache.New(cfg.CacheSize)
	generator := summarizer.NewGenerator(completer, cfg.Model, log,
		summarizer.WithCache(summaryCache, cfg.CacheTTL))
	analyzer := summarizer.NewAnalyzer(completer, cfg.Model)
	h := handler.New(generator, analyzer, log)

	if summaryCache != nil {
		sched := scheduler.New(ctx, cfg.CachePurgeSpec, summaryCache, log)
		if err = sched.Start(); err != nil {
			log.ErrorContext(ctx, "Failed to start scheduler",
				"error", err,
				"spec", cfg.CachePurgeSpec)

			return
		}
		defer sched.Stop()
		log.InfoContext(ctx, "Scheduler is started",
			"spec", cfg.CachePurgeSpec,
			"cacheTTL", cfg.CacheTTL.String())
	}

	gin.SetMode(gin.ReleaseMode)

	srv, err := web.New(h, log)
	if err != nil {
		log.ErrorContext(ctx, "Failed to initialize web server",
			"error", err)

		return
	}

	log.InfoContext(ctx, "Web server is started",
		"httpAddr", cfg.HTTPAddr)

	if err = srv.Run(ctx, cfg.HTTPAddr, cfg.ShutdownTimeout); err != nil {
		log.ErrorContext(ctx, "Web server is stopped with error",
			"error", err,
			"httpAddr", cfg.HTTPAddr)

		return
	}

	log.InfoContext(ctx, "Exiting...",
		"uptimeSeconds", time.Since(start).Seconds())
}
