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

// OpenAIProvider implements the Provider interface using OpenAI's API.
// It also supports OpenAI-compatible endpoints like OpenRouter.
type OpenAIProvider struct {
	name         string
	apiKey       string
	model        string
	baseURL      string
	httpClient   *http.Client
	maxTokens    int
	temperature  float64
	extraHeaders map[string]string // Additional headers (e.g., OpenRouter attribution)
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(cfg *Config) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w for OpenAI", ErrAPIKeyMissing)
	}

	baseURL := cfg.Endpoint
	if baseURL == "" {
		baseURL = DefaultOpenAIEndpoint
	}

	model := cfg.Model
	if model == "" {
		model = DefaultOpenAIModel
	}

	p := &OpenAIProvider{
		name:        ProviderOpenAI,
		apiKey:      cfg.APIKey,
		model:       model,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		httpClient:  newHTTPClient(cfg.Timeout),
		maxTokens:   cfg.maxTokens(),
		temperature: cfg.temperature(0.7),
	}

	// Add OpenRouter attribution headers when using their endpoint.
	if cfg.Provider == ProviderOpenRouter || strings.Contains(baseURL, "openrouter.ai") {
		p.name = ProviderOpenRouter
		p.extraHeaders = map[string]string{
			"HTTP-Referer": "https://github.com/getmockd/seedgen",
			"X-Title":      "seedgen",
		}
	}

	return p, nil
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return p.name
}

// openAIChatRequest represents the request to OpenAI chat completions API.
type openAIChatRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
	Temperature float64         `json:"temperature,omitempty"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// openAIChatResponse represents the response from OpenAI.
type openAIChatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *openAIError `json:"error,omitempty"`
}

type openAIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}

// Complete sends prompt to the chat completions endpoint.
func (p *OpenAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := openAIChatRequest{
		Model: p.model,
		Messages: []openAIMessage{
			{
				Role:    "system",
				Content: systemPrompt,
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens:   p.maxTokens,
		Temperature: p.temperature,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	for k, v := range p.extraHeaders {
		req.Header.Set(k, v)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", &ProviderError{
			Provider: p.name,
			Message:  "API request failed",
			Cause:    err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", ErrRateLimited
	}

	var chatResp openAIChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", &ProviderError{
				Provider: p.name,
				Message:  fmt.Sprintf("API returned status %d: %s", resp.StatusCode, string(body)),
			}
		}
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if chatResp.Error != nil {
		if chatResp.Error.Code == "rate_limit_exceeded" {
			return "", ErrRateLimited
		}
		return "", &ProviderError{
			Provider: p.name,
			Message:  chatResp.Error.Message,
		}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &ProviderError{
			Provider: p.name,
			Message:  fmt.Sprintf("API returned status %d: %s", resp.StatusCode, string(body)),
		}
	}

	if len(chatResp.Choices) == 0 {
		return "", ErrInvalidResponse
	}

	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}
