package cliconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/getmockd/seedgen/pkg/ai"
	"gopkg.in/yaml.v3"
)

// Load reads and parses the YAML config at path. It does not
// require a credential to be present; see Config.Credential.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ConfigError{Path: path, Err: ErrConfigMissing}
		}
		return nil, &ConfigError{Path: path, Message: "cannot read file", Err: err}
	}

	return parseConfig(path, data)
}

func parseConfig(path string, data []byte) (*Config, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ConfigError{Path: path, Message: err.Error(), Err: err}
	}

	// An empty file, a bare "null" and comment-only files all decode to an
	// empty document; "{}" decodes to a mapping without entries.
	if len(doc.Content) == 0 {
		return nil, &ConfigError{Path: path, Err: ErrConfigEmpty}
	}
	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
		return nil, &ConfigError{Path: path, Err: ErrConfigEmpty}
	}
	if root.Kind != yaml.MappingNode {
		return nil, &ConfigError{
			Path:    path,
			Message: fmt.Sprintf("line %d: expected a mapping of keys to values", root.Line),
		}
	}
	if len(root.Content) == 0 {
		return nil, &ConfigError{Path: path, Err: ErrConfigEmpty}
	}

	cfg := NewDefault()
	cfg.Path = path
	if err := root.Decode(cfg); err != nil {
		return nil, &ConfigError{Path: path, Message: err.Error(), Err: err}
	}
	if err := root.Decode(&cfg.keys); err != nil {
		return nil, &ConfigError{Path: path, Message: err.Error(), Err: err}
	}

	for _, key := range []string{"provider", "model", "endpoint", "maxTokens", "temperature", "timeout"} {
		if _, ok := cfg.keys[key]; ok {
			cfg.Sources[key] = SourceFile
		}
	}
	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	if cfg.Provider == "" {
		cfg.Provider = DefaultProvider
		cfg.Sources["provider"] = SourceDefault
	}

	return cfg, nil
}

// Credential returns the credential for the configured provider. Providers
// that need none yield an empty credential and no error.
func (c *Config) Credential() (Credential, error) {
	key := CredentialKey(c.Provider)
	if key == "" {
		return "", nil
	}

	value, ok := c.keys[key].(string)
	if !ok || strings.TrimSpace(value) == "" {
		return "", &ConfigError{Path: c.Path, Key: key, Err: ErrConfigKeyMissing}
	}

	return Credential(value), nil
}

// CredentialKey returns the config key this configuration reads its
// credential from.
func (c *Config) CredentialKey() string {
	return CredentialKey(c.Provider)
}

// LoadCredential reads the config at path and returns the credential for the
// provider it names (gemini when it names none).
func LoadCredential(path string) (Credential, error) {
	cfg, err := Load(path)
	if err != nil {
		return "", err
	}
	return cfg.Credential()
}

// Resolve loads the configuration for a run.
// Precedence: flags > env > config file > defaults
func Resolve(path string, flags Overrides) (*Config, error) {
	cfg, err := Load(ResolvePath(path))
	if err != nil {
		return nil, err
	}

	LoadEnvConfig(cfg)
	applyOverrides(cfg, flags, SourceFlag)

	return cfg, nil
}

func applyOverrides(cfg *Config, o Overrides, source string) {
	if o.Provider != "" {
		cfg.Provider = strings.ToLower(o.Provider)
		cfg.Sources["provider"] = source
	}
	if o.Model != "" {
		cfg.Model = o.Model
		cfg.Sources["model"] = source
	}
	if o.Endpoint != "" {
		cfg.Endpoint = o.Endpoint
		cfg.Sources["endpoint"] = source
	}
}

// AIConfig builds the model client configuration, with provider defaults
// applied.
func (c *Config) AIConfig(cred Credential) *ai.Config {
	cfg := &ai.Config{
		Provider:    c.Provider,
		APIKey:      string(cred),
		Model:       c.Model,
		Endpoint:    c.Endpoint,
		MaxTokens:   c.MaxTokens,
		Temperature: c.Temperature,
		Timeout:     c.Timeout,
	}
	cfg.ApplyDefaults()
	return cfg
}

// Template renders a starter config file for provider. When cred is empty
// the credential line is left commented out so that loading fails until it
// is filled in.
func Template(provider string, cred Credential) ([]byte, error) {
	provider = strings.ToLower(provider)
	if provider == "" {
		provider = DefaultProvider
	}

	cfg := &ai.Config{Provider: provider}
	cfg.ApplyDefaults()

	var buf bytes.Buffer
	buf.WriteString("# seedgen configuration\n")
	buf.WriteString("# Supported providers: " + strings.Join(ai.SupportedProviders(), ", ") + "\n")

	settings := map[string]string{"provider": provider, "model": cfg.Model}
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(yamlOrdered(settings, "provider", "model")); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	key := CredentialKey(provider)
	switch {
	case key == "":
		// no credential needed
	case cred == "":
		buf.WriteString("# " + key + ": your-api-key\n")
	default:
		line, err := yaml.Marshal(map[string]string{key: string(cred)})
		if err != nil {
			return nil, err
		}
		buf.Write(line)
	}

	return buf.Bytes(), nil
}

// yamlOrdered builds a mapping node that keeps keys in the given order.
func yamlOrdered(values map[string]string, order ...string) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range order {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Value: values[k]},
		)
	}
	return node
}
