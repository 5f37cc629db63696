package cliconfig

import "github.com/getmockd/seedgen/pkg/ai"

// DefaultConfigFile is the config path used when neither --config nor
// SEEDGEN_CONFIG is set. It is resolved against the working directory.
const DefaultConfigFile = "config.yaml"

// DefaultProvider is the model provider used when none is configured.
const DefaultProvider = ai.ProviderGemini

// Credential keys per provider.
const (
	KeyGoogleAPIKey     = "GOOGLE_API_KEY"
	KeyOpenAIAPIKey     = "OPENAI_API_KEY"
	KeyAnthropicAPIKey  = "ANTHROPIC_API_KEY"
	KeyOpenRouterAPIKey = "OPENROUTER_API_KEY"
)

// CredentialKey returns the config key holding the credential for provider,
// or "" when the provider needs none.
func CredentialKey(provider string) string {
	switch provider {
	case ai.ProviderGemini:
		return KeyGoogleAPIKey
	case ai.ProviderOpenAI:
		return KeyOpenAIAPIKey
	case ai.ProviderAnthropic:
		return KeyAnthropicAPIKey
	case ai.ProviderOpenRouter:
		return KeyOpenRouterAPIKey
	default:
		return ""
	}
}

// NewDefault returns a Config populated with default values.
func NewDefault() *Config {
	return &Config{
		Provider: DefaultProvider,
		Path:     DefaultConfigFile,
		Sources: map[string]string{
			"provider": SourceDefault,
		},
	}
}
