package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Provider is a text-generation capability: one prompt in, free-form text out.
type Provider interface {
	// Complete sends prompt to the model and returns its answer, trimmed.
	Complete(ctx context.Context, prompt string) (string, error)

	// Name returns the provider identifier (e.g., "gemini", "openai").
	Name() string
}

// Common errors
var (
	// ErrProviderNotConfigured is returned when the provider is not properly configured.
	ErrProviderNotConfigured = errors.New("AI provider not configured")

	// ErrAPIKeyMissing is returned when the API key is not set.
	ErrAPIKeyMissing = errors.New("API key is required")

	// ErrRateLimited is returned when the provider rate limits the request.
	ErrRateLimited = errors.New("rate limited by provider")

	// ErrInvalidResponse is returned when the provider answer carries no text.
	ErrInvalidResponse = errors.New("invalid response from provider")
)

// ProviderError wraps errors from AI providers with additional context.
type ProviderError struct {
	Provider string
	Message  string
	Cause    error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// NewProvider creates a provider based on the configuration.
func NewProvider(cfg *Config) (Provider, error) {
	if cfg == nil {
		return nil, ErrProviderNotConfigured
	}

	switch cfg.Provider {
	case ProviderGemini:
		return NewGeminiProvider(cfg)
	case ProviderOpenAI:
		return NewOpenAIProvider(cfg)
	case ProviderAnthropic:
		return NewAnthropicProvider(cfg)
	case ProviderOllama:
		return NewOllamaProvider(cfg)
	case ProviderOpenRouter:
		// OpenRouter uses an OpenAI-compatible API with a different base URL.
		if cfg.Endpoint == "" {
			cfg.Endpoint = DefaultOpenRouterEndpoint
		}
		return NewOpenAIProvider(cfg)
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrProviderNotConfigured, cfg.Provider)
	}
}

// newHTTPClient returns a client bounded by timeout; zero leaves requests unbounded.
func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
