// Package provider selects the generation backend named by configuration.
package provider

import (
	"context"
	"fmt"

	"tradequote_backend/platform/ai"
	"tradequote_backend/platform/ai/gemini"
	"tradequote_backend/platform/ai/openai"
	"tradequote_backend/platform/config"
)

// New returns the configured generator, or nil when the selected provider has no
// API key. Callers treat nil as "always use the fallback quote".
func New(ctx context.Context, cfg config.GeneratorConfig) (ai.Generator, error) {
	if !cfg.HasGeneratorCredential() {
		return nil, nil
	}

	switch cfg.GetGeneratorProvider() {
	case config.ProviderGemini:
		client, err := gemini.New(ctx, gemini.Config{
			APIKey: cfg.GetGeminiAPIKey(),
			Model:  cfg.GetGeminiModel(),
		})
		if err != nil {
			return nil, fmt.Errorf("init gemini generator: %w", err)
		}
		return client, nil
	case config.ProviderOpenAI:
		return openai.New(openai.Config{
			APIKey:  cfg.GetOpenAIAPIKey(),
			BaseURL: cfg.GetOpenAIBaseURL(),
			Model:   cfg.GetOpenAIModel(),
		}), nil
	default:
		return nil, fmt.Errorf("unknown generator provider %q", cfg.GetGeneratorProvider())
	}
}
