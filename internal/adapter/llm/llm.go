// Package llm holds the generation backends. Every backend turns one prompt
// into one completion; none of them retries.
package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/brandvoice-backend/internal/config"
	"github.com/heartmarshall/brandvoice-backend/internal/domain"
)

// Generator produces a completion for a single prompt. An empty completion
// is returned as "" with a nil error; the caller decides how to present it.
type Generator interface {
	Name() string
	Generate(ctx context.Context, req domain.GenerationRequest) (string, error)
	Close() error
}

// New builds the generator selected by cfg.Provider, wrapped with logging and
// the per-call timeout.
func New(ctx context.Context, cfg config.LLMConfig, log *slog.Logger) (Generator, error) {
	var (
		base Generator
		err  error
	)

	switch cfg.Provider {
	case config.ProviderOpenAI:
		base = NewOpenAI(cfg.APIKey, cfg.BaseURL, nil)
	case config.ProviderAnthropic:
		base = NewAnthropic(cfg.APIKey, cfg.BaseURL)
	case config.ProviderGemini:
		base, err = NewGemini(ctx, cfg.APIKey, cfg.BaseURL)
	case config.ProviderFake:
		base = NewFake()
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("llm: init %s: %w", cfg.Provider, err)
	}

	return Wrap(base, WithLogging(log), WithTimeout(cfg.Timeout)), nil
}
