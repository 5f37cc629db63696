// Package cliconfig loads seedgen's configuration file and overlays
// environment variables and command-line flags on top of it.
package cliconfig

import (
	"time"
)

// Config is the resolved configuration for one seedgen run.
// Values can come from several sources with the following precedence:
// 1. Command-line flags (highest priority)
// 2. Environment variables
// 3. Config file (config.yaml in the current directory by default)
// 4. Default values (lowest priority)
type Config struct {
	// Provider selects the model client ("gemini", "openai", ...).
	Provider string `yaml:"provider" json:"provider"`

	// Model is the provider-specific model name. Empty means the provider default.
	Model string `yaml:"model,omitempty" json:"model,omitempty"`

	// Endpoint overrides the provider API base URL.
	Endpoint string `yaml:"endpoint,omitempty" json:"endpoint,omitempty"`

	// MaxTokens bounds the model answer length. Zero means the client default.
	MaxTokens int `yaml:"maxTokens,omitempty" json:"maxTokens,omitempty"`

	// Temperature controls randomness. Nil means the provider default.
	Temperature *float64 `yaml:"temperature,omitempty" json:"temperature,omitempty"`

	// Timeout bounds the model request. Zero means no timeout.
	Timeout time.Duration `yaml:"timeout,omitempty" json:"timeout,omitempty"`

	// Path is the file the configuration was read from.
	Path string `yaml:"-" json:"path"`

	// Sources tracks where each value came from (for debugging)
	Sources map[string]string `yaml:"-" json:"-"`

	// keys holds the top-level scalar entries of the file, credentials included.
	keys map[string]interface{}
}

// Credential is the secret that authorizes calls to the model provider.
type Credential string

// Redacted returns the credential with all but the last four characters masked.
func (c Credential) Redacted() string {
	if len(c) <= 4 {
		return "****"
	}
	return "****" + string(c[len(c)-4:])
}

// Overrides carries values set on the command line. Empty fields are ignored.
type Overrides struct {
	Provider string
	Model    string
	Endpoint string
}

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceFlag    = "flag"
)
