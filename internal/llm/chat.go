package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single completion request.
const DefaultTimeout = 120 * time.Second

// Ensure ChatClient implements the interface.
var _ Client = (*ChatClient)(nil)

// ChatClient talks to an OpenAI-compatible /chat/completions endpoint.
// OpenAI, Groq and Perplexity all expose this wire format; the provider
// differs only in name, base URL and credentials.
type ChatClient struct {
	name    string
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewChatClient creates a chat client for an OpenAI-compatible provider.
func NewChatClient(name, baseURL, apiKey, model string, timeout time.Duration) *ChatClient {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &ChatClient{
		name:    name,
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *ChatClient) Name() string  { return c.name }
func (c *ChatClient) Model() string { return c.model }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete sends the prompt as a single user message and returns the
// completion text verbatim.
func (c *ChatClient) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: 0,
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var out chatResponse
	if err := json.Unmarshal(payload, &out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("%s error: %s", c.name, out.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s error (status %d): %s", c.name, resp.StatusCode, string(payload))
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("%s: no response choices returned", c.name)
	}
	return out.Choices[0].Message.Content, nil
}
