package cliconfig

import "errors"

// Common errors
var (
	// ErrConfigMissing is returned when the config file does not exist.
	ErrConfigMissing = errors.New("config file not found")

	// ErrConfigEmpty is returned when the config file holds no settings.
	ErrConfigEmpty = errors.New("config file is empty")

	// ErrConfigKeyMissing is returned when the credential key is absent.
	ErrConfigKeyMissing = errors.New("credential key missing from config")
)

// ConfigError represents a configuration file error with location info.
type ConfigError struct {
	Path    string
	Key     string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Key != "" {
		return e.Path + ": " + msg + ": " + e.Key
	}
	return e.Path + ": " + msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
