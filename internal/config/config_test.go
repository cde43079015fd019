package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"smartsummarizer/internal/config"
	"strings"
	"testing"
	"time"
)

var managedEnvVars = []string{
	"HTTP_ADDR",
	"LLM_PROVIDER",
	"LLM_MODEL",
	"OPENAI_API_KEY",
	"ANTHROPIC_API_KEY",
	"SUMMARY_CACHE_SIZE",
	"SUMMARY_CACHE_TTL",
	"CACHE_PURGE_SPEC",
	"LOG_LEVEL",
	"SHUTDOWN_TIMEOUT",
}

// clearEnv unsets every variable the config reads and restores them after the test.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, name := range managedEnvVars {
		t.Setenv(name, "")
		if err := os.Unsetenv(name); err != nil {
			t.Fatalf("unset %s: %v", name, err)
		}
	}
}

func TestParseDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", " sk-test ")

	cfg, err := config.Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected addr: %q", cfg.HTTPAddr)
	}
	if cfg.Provider != "openai" {
		t.Fatalf("unexpected provider: %q", cfg.Provider)
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Fatalf("unexpected model: %q", cfg.Model)
	}
	if cfg.APIKey() != "sk-test" {
		t.Fatalf("expected trimmed API key, got %q", cfg.APIKey())
	}
	if cfg.CacheSize != 0 || cfg.CacheTTL != time.Hour {
		t.Fatalf("unexpected cache settings: %d, %s", cfg.CacheSize, cfg.CacheTTL)
	}
	if cfg.CachePurgeSpec != "@every 10m" {
		t.Fatalf("unexpected purge spec: %q", cfg.CachePurgeSpec)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected shutdown timeout: %s", cfg.ShutdownTimeout)
	}

	level, err := cfg.SlogLevel()
	if err != nil || level != slog.LevelInfo {
		t.Fatalf("unexpected log level: %v (%v)", level, err)
	}
}

func TestParseAnthropic(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "Anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "key")

	cfg, err := config.Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Model != "claude-haiku-4-5" {
		t.Fatalf("unexpected default anthropic model: %q", cfg.Model)
	}
	if cfg.APIKey() != "key" {
		t.Fatalf("unexpected API key: %q", cfg.APIKey())
	}
}

func TestParseRequiresKeyOfSelectedProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "anthropic")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	_, err := config.Parse()
	if err == nil {
		t.Fatalf("expected missing key error")
	}
	if !strings.Contains(err.Error(), "ANTHROPIC_API_KEY") {
		t.Fatalf("expected error to name the missing variable, got %q", err.Error())
	}
}

func TestParseRejectsUnknownProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "palm")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	if _, err := config.Parse(); err == nil {
		t.Fatalf("expected unknown provider error")
	}
}

func TestParseRejectsInvalidLogLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("LOG_LEVEL", "loud")

	if _, err := config.Parse(); err == nil {
		t.Fatalf("expected invalid log level error")
	}
}

func TestLoadReadsEnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	content := "OPENAI_API_KEY=sk-from-file\nLLM_MODEL=gpt-4.1-mini\nSUMMARY_CACHE_SIZE=64\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.APIKey() != "sk-from-file" || cfg.Model != "gpt-4.1-mini" || cfg.CacheSize != 64 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadToleratesMissingEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
