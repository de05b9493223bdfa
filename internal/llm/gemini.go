package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Ensure GeminiClient implements the interface.
var _ Client = (*GeminiClient)(nil)

// GeminiClient talks to the Google Gemini API through the genai SDK.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini client. The SDK client is constructed
// once and reused for every completion.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiClient{client: c, model: model}, nil
}

func (g *GeminiClient) Name() string  { return "gemini" }
func (g *GeminiClient) Model() string { return g.model }

// Complete sends the prompt and returns the generated text.
func (g *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generateContent: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("gemini: empty response")
	}
	txt := strings.TrimSpace(resp.Text())
	if txt == "" {
		return "", fmt.Errorf("gemini: model returned empty text")
	}
	return txt, nil
}
