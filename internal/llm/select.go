package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"rag-assistant/internal/domain"
)

// provider describes one credential source in the probe order.
type provider struct {
	name         string
	keyEnv       string
	modelEnv     string
	defaultModel string
	build        func(ctx context.Context, apiKey, model string, timeout time.Duration) (Client, error)
}

// providers are probed in order; the first configured credential selects
// the provider and model for the process lifetime.
var providers = []provider{
	{
		name:         "openai",
		keyEnv:       "OPENAI_API_KEY",
		modelEnv:     "OPENAI_MODEL",
		defaultModel: "gpt-4o-mini",
		build: func(_ context.Context, apiKey, model string, timeout time.Duration) (Client, error) {
			return NewChatClient("openai", "https://api.openai.com/v1", apiKey, model, timeout), nil
		},
	},
	{
		name:         "groq",
		keyEnv:       "GROQ_API_KEY",
		modelEnv:     "GROQ_MODEL",
		defaultModel: "llama-3.1-8b-instant",
		build: func(_ context.Context, apiKey, model string, timeout time.Duration) (Client, error) {
			return NewChatClient("groq", "https://api.groq.com/openai/v1", apiKey, model, timeout), nil
		},
	},
	{
		name:         "gemini",
		keyEnv:       "GOOGLE_API_KEY",
		modelEnv:     "GOOGLE_MODEL",
		defaultModel: "gemini-2.0-flash",
		build: func(ctx context.Context, apiKey, model string, _ time.Duration) (Client, error) {
			return NewGeminiClient(ctx, apiKey, model)
		},
	},
	{
		name:         "perplexity",
		keyEnv:       "PPLX_API_KEY",
		modelEnv:     "PPLX_MODEL",
		defaultModel: "sonar",
		build: func(_ context.Context, apiKey, model string, timeout time.Duration) (Client, error) {
			return NewChatClient("perplexity", "https://api.perplexity.ai", apiKey, model, timeout), nil
		},
	},
}

// FromEnv probes the providers in priority order and builds a client for
// the first one whose API key is present in the environment. With no
// credential configured it returns domain.ErrNoCredentials naming the
// accepted variables; this is a fatal startup condition.
func FromEnv(ctx context.Context, timeout time.Duration) (Client, error) {
	for _, p := range providers {
		key := os.Getenv(p.keyEnv)
		if key == "" {
			continue
		}
		model := os.Getenv(p.modelEnv)
		if model == "" {
			model = p.defaultModel
		}
		return p.build(ctx, key, model, timeout)
	}

	vars := make([]string, len(providers))
	for i, p := range providers {
		vars[i] = p.keyEnv
	}
	return nil, fmt.Errorf("%w: set one of %v", domain.ErrNoCredentials, vars)
}
