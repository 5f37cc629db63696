package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// OllamaProvider implements the Provider interface using a local Ollama instance.
type OllamaProvider struct {
	endpoint    string
	model       string
	httpClient  *http.Client
	maxTokens   int
	temperature float64
}

// NewOllamaProvider creates a new Ollama provider.
func NewOllamaProvider(cfg *Config) (*OllamaProvider, error) {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultOllamaEndpoint
	}

	model := cfg.Model
	if model == "" {
		model = DefaultOllamaModel
	}

	return &OllamaProvider{
		endpoint:    strings.TrimSuffix(endpoint, "/"),
		model:       model,
		httpClient:  newHTTPClient(cfg.Timeout),
		maxTokens:   cfg.maxTokens(),
		temperature: cfg.temperature(0.7),
	}, nil
}

// Name returns the provider name.
func (p *OllamaProvider) Name() string {
	return ProviderOllama
}

// ollamaRequest represents the request to Ollama's chat API.
type ollamaRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Format   string          `json:"format,omitempty"`
	Options  *ollamaOptions  `json:"options,omitempty"`
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

// ollamaResponse represents the response from Ollama.
type ollamaResponse struct {
	Model     string `json:"model"`
	CreatedAt string `json:"created_at"`
	Message   struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	Done       bool   `json:"done"`
	EvalCount  int    `json:"eval_count"`
	DoneReason string `json:"done_reason,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Complete sends prompt to the chat endpoint with streaming disabled.
func (p *OllamaProvider) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := ollamaRequest{
		Model: p.model,
		Messages: []ollamaMessage{
			{
				Role:    "system",
				Content: systemPrompt,
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		Stream: false,
		Options: &ollamaOptions{
			Temperature: p.temperature,
			NumPredict:  p.maxTokens,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint+"/api/chat", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", &ProviderError{
			Provider: ProviderOllama,
			Message:  "API request failed - is Ollama running?",
			Cause:    err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var ollamaResp ollamaResponse
	if err := json.Unmarshal(body, &ollamaResp); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", &ProviderError{
				Provider: ProviderOllama,
				Message:  fmt.Sprintf("API returned status %d: %s", resp.StatusCode, string(body)),
			}
		}
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if ollamaResp.Error != "" {
		return "", &ProviderError{
			Provider: ProviderOllama,
			Message:  ollamaResp.Error,
		}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &ProviderError{
			Provider: ProviderOllama,
			Message:  fmt.Sprintf("API returned status %d: %s", resp.StatusCode, string(body)),
		}
	}

	return strings.TrimSpace(ollamaResp.Message.Content), nil
}

// CheckConnection verifies that Ollama is running.
func (p *OllamaProvider) CheckConnection(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint+"/api/tags", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return &ProviderError{
			Provider: ProviderOllama,
			Message:  "cannot connect to Ollama - is it running?",
			Cause:    err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &ProviderError{
			Provider: ProviderOllama,
			Message:  fmt.Sprintf("Ollama returned status %d", resp.StatusCode),
		}
	}

	return nil
}
