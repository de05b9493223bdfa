package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rag-assistant/internal/domain"
)

func clearCredentials(t *testing.T) {
	t.Helper()
	for _, env := range []string{"OPENAI_API_KEY", "GROQ_API_KEY", "GOOGLE_API_KEY", "PPLX_API_KEY",
		"OPENAI_MODEL", "GROQ_MODEL", "GOOGLE_MODEL", "PPLX_MODEL"} {
		t.Setenv(env, "")
	}
}

func TestFromEnvPriorityOrder(t *testing.T) {
	clearCredentials(t)
	// Groq and Gemini both configured; Groq precedes Gemini.
	t.Setenv("GROQ_API_KEY", "groq-key")
	t.Setenv("GOOGLE_API_KEY", "google-key")

	client, err := FromEnv(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "groq", client.Name())
	assert.Equal(t, "llama-3.1-8b-instant", client.Model())
}

func TestFromEnvFirstProviderWins(t *testing.T) {
	clearCredentials(t)
	t.Setenv("OPENAI_API_KEY", "openai-key")
	t.Setenv("GROQ_API_KEY", "groq-key")

	client, err := FromEnv(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "openai", client.Name())
	assert.Equal(t, "gpt-4o-mini", client.Model())
}

func TestFromEnvModelOverride(t *testing.T) {
	clearCredentials(t)
	t.Setenv("GROQ_API_KEY", "groq-key")
	t.Setenv("GROQ_MODEL", "llama-3.3-70b-versatile")

	client, err := FromEnv(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "llama-3.3-70b-versatile", client.Model())
}

func TestFromEnvPerplexityLast(t *testing.T) {
	clearCredentials(t)
	t.Setenv("PPLX_API_KEY", "pplx-key")

	client, err := FromEnv(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "perplexity", client.Name())
	assert.Equal(t, "sonar", client.Model())
}

func TestFromEnvNoCredentials(t *testing.T) {
	clearCredentials(t)

	_, err := FromEnv(context.Background(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoCredentials)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
	assert.Contains(t, err.Error(), "PPLX_API_KEY")
}
