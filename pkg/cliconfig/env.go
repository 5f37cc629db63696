package cliconfig

import (
	"os"
	"strconv"
)

// Environment variable names
const (
	EnvConfig   = "SEEDGEN_CONFIG"
	EnvProvider = "SEEDGEN_PROVIDER"
	EnvModel    = "SEEDGEN_MODEL"
	EnvEndpoint = "SEEDGEN_ENDPOINT"
	EnvVerbose  = "SEEDGEN_VERBOSE"
)

// ResolvePath returns the config path to read: the flag value when set,
// then SEEDGEN_CONFIG, then DefaultConfigFile.
func ResolvePath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if v := os.Getenv(EnvConfig); v != "" {
		return v
	}
	return DefaultConfigFile
}

// LoadEnvConfig loads configuration from environment variables.
// It only sets values that are present in the environment.
func LoadEnvConfig(cfg *Config) {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}

	applyOverrides(cfg, Overrides{
		Provider: os.Getenv(EnvProvider),
		Model:    os.Getenv(EnvModel),
		Endpoint: os.Getenv(EnvEndpoint),
	}, SourceEnv)
}

// VerboseFromEnv reports whether SEEDGEN_VERBOSE is set to a true value.
func VerboseFromEnv() bool {
	v, err := strconv.ParseBool(os.Getenv(EnvVerbose))
	return err == nil && v
}
