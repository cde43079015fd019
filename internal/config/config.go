package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"smartsummarizer/internal/provider"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR"          envDefault:":8080"`
	Provider        string        `env:"LLM_PROVIDER"       envDefault:"openai"`
	Model           string        `env:"LLM_MODEL"`
	OpenAIAPIKey    string        `env:"OPENAI_API_KEY"`
	AnthropicAPIKey string        `env:"ANTHROPIC_API_KEY"`
	CacheSize       int           `env:"SUMMARY_CACHE_SIZE" envDefault:"0"`
	CacheTTL        time.Duration `env:"SUMMARY_CACHE_TTL"  envDefault:"1h"`
	CachePurgeSpec  string        `env:"CACHE_PURGE_SPEC"   envDefault:"@every 10m"`
	LogLevel        string        `env:"LOG_LEVEL"          envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"   envDefault:"10s"`
}

// Load reads an optional .env file and then the environment.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env file: %w", err)
	}

	return Parse()
}

func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	cfg.Model = strings.TrimSpace(cfg.Model)
	if cfg.Model == "" {
		cfg.Model = provider.DefaultModel(cfg.Provider)
	}
	cfg.OpenAIAPIKey = strings.TrimSpace(cfg.OpenAIAPIKey)
	cfg.AnthropicAPIKey = strings.TrimSpace(cfg.AnthropicAPIKey)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Provider {
	case provider.NameOpenAI, provider.NameOpenAIChat, provider.NameAnthropic:
	default:
		return fmt.Errorf("LLM_PROVIDER must be one of %s, %s, %s (got %q)",
			provider.NameOpenAI, provider.NameOpenAIChat, provider.NameAnthropic, c.Provider)
	}

	if c.APIKey() == "" {
		return fmt.Errorf("%s is required for provider %q", c.APIKeyEnvVar(), c.Provider)
	}

	if c.CacheSize < 0 {
		return errors.New("SUMMARY_CACHE_SIZE must not be negative")
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// APIKey returns the credential of the selected provider.
func (c Config) APIKey() string {
	if c.Provider == provider.NameAnthropic {
		return c.AnthropicAPIKey
	}

	return c.OpenAIAPIKey
}

func (c Config) APIKeyEnvVar() string {
	if c.Provider == provider.NameAnthropic {
		return "ANTHROPIC_API_KEY"
	}

	return "OPENAI_API_KEY"
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL is invalid: %w", err)
	}

	return level, nil
}
