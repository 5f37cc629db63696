package ai

import (
	"errors"
	"fmt"
	"time"
)

// Provider name constants
const (
	ProviderGemini     = "gemini"
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderOllama     = "ollama"
	ProviderOpenRouter = "openrouter"
)

// Default model names and endpoints for each provider
const (
	DefaultGeminiModel        = "gemini-2.5-flash"
	DefaultGeminiEndpoint     = "https://generativelanguage.googleapis.com/v1beta"
	DefaultOpenAIModel        = "gpt-4o-mini"
	DefaultOpenAIEndpoint     = "https://api.openai.com/v1"
	DefaultAnthropicModel     = "claude-3-haiku-20240307"
	DefaultAnthropicEndpoint  = "https://api.anthropic.com/v1"
	DefaultOllamaModel        = "llama3.2"
	DefaultOllamaEndpoint     = "http://localhost:11434"
	DefaultOpenRouterModel    = "google/gemini-2.5-flash"
	DefaultOpenRouterEndpoint = "https://openrouter.ai/api/v1"
)

// DefaultMaxTokens bounds the answer length when Config.MaxTokens is zero.
// A few hundred records easily exceed the smaller provider defaults.
const DefaultMaxTokens = 8192

// Config holds the configuration for AI providers.
type Config struct {
	// Provider is the AI provider to use ("gemini", "openai", "anthropic", "ollama", "openrouter").
	Provider string `json:"provider" yaml:"provider"`

	// APIKey is the API key for the provider (not needed for Ollama).
	APIKey string `json:"-" yaml:"-"`

	// Model is the model name to use.
	Model string `json:"model,omitempty" yaml:"model,omitempty"`

	// Endpoint is the API base URL (optional, each provider has a default).
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`

	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int `json:"maxTokens,omitempty" yaml:"maxTokens,omitempty"`

	// Temperature controls randomness (0.0-2.0, default varies by provider).
	Temperature *float64 `json:"temperature,omitempty" yaml:"temperature,omitempty"`

	// Timeout bounds a single request. Zero means no timeout.
	Timeout time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// ApplyDefaults fills in the model and endpoint for the configured provider.
func (c *Config) ApplyDefaults() {
	switch c.Provider {
	case ProviderGemini:
		if c.Model == "" {
			c.Model = DefaultGeminiModel
		}
		if c.Endpoint == "" {
			c.Endpoint = DefaultGeminiEndpoint
		}
	case ProviderOpenAI:
		if c.Model == "" {
			c.Model = DefaultOpenAIModel
		}
		if c.Endpoint == "" {
			c.Endpoint = DefaultOpenAIEndpoint
		}
	case ProviderAnthropic:
		if c.Model == "" {
			c.Model = DefaultAnthropicModel
		}
		if c.Endpoint == "" {
			c.Endpoint = DefaultAnthropicEndpoint
		}
	case ProviderOllama:
		if c.Model == "" {
			c.Model = DefaultOllamaModel
		}
		if c.Endpoint == "" {
			c.Endpoint = DefaultOllamaEndpoint
		}
	case ProviderOpenRouter:
		if c.Model == "" {
			c.Model = DefaultOpenRouterModel
		}
		if c.Endpoint == "" {
			c.Endpoint = DefaultOpenRouterEndpoint
		}
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return ErrProviderNotConfigured
	}

	if c.Provider == "" {
		return errors.New("provider is required")
	}

	switch c.Provider {
	case ProviderGemini, ProviderOpenAI, ProviderAnthropic, ProviderOpenRouter:
		if c.APIKey == "" {
			return fmt.Errorf("%w for %s", ErrAPIKeyMissing, c.Provider)
		}
	case ProviderOllama:
		if c.Endpoint == "" {
			return errors.New("endpoint is required for ollama")
		}
	default:
		return fmt.Errorf("unknown provider: %s", c.Provider)
	}

	if c.MaxTokens < 0 {
		return fmt.Errorf("maxTokens %d must not be negative", c.MaxTokens)
	}
	if c.Temperature != nil && (*c.Temperature < 0 || *c.Temperature > 2) {
		return fmt.Errorf("temperature %g is out of range (0-2)", *c.Temperature)
	}

	return nil
}

// RequiresAPIKey reports whether provider needs a credential.
func RequiresAPIKey(provider string) bool {
	return provider != ProviderOllama
}

// SupportedProviders returns the list of supported provider names.
func SupportedProviders() []string {
	return []string{ProviderGemini, ProviderOpenAI, ProviderAnthropic, ProviderOllama, ProviderOpenRouter}
}

func (c *Config) maxTokens() int {
	if c.MaxTokens > 0 {
		return c.MaxTokens
	}
	return DefaultMaxTokens
}

func (c *Config) temperature(def float64) float64 {
	if c.Temperature != nil {
		return *c.Temperature
	}
	return def
}
