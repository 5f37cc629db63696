package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/getmockd/seedgen/pkg/ai"
	"github.com/getmockd/seedgen/pkg/cliconfig"
	"github.com/getmockd/seedgen/pkg/seed"
)

// ErrMissingArgument is returned when a required flag was not given.
var ErrMissingArgument = errors.New("missing required flag")

// MissingArgumentError names the flag that was omitted and carries the
// command usage to print with it.
type MissingArgumentError struct {
	Flag  string
	Usage string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("%v: --%s", ErrMissingArgument, e.Flag)
}

func (e *MissingArgumentError) Unwrap() error {
	return ErrMissingArgument
}

// describeError turns an error from any command into the text shown to the
// operator. Every documented failure gets its own message; anything else is
// reported generically.
func describeError(err error) string {
	var (
		cfgErr     *cliconfig.ConfigError
		qtyErr     *seed.QuantityError
		shapeErr   *seed.UnexpectedShapeError
		missingErr *MissingArgumentError
		provErr    *ai.ProviderError
	)
	path := cliconfig.DefaultConfigFile
	if errors.As(err, &cfgErr) && cfgErr.Path != "" {
		path = cfgErr.Path
	}

	switch {
	case errors.Is(err, cliconfig.ErrConfigMissing):
		return fmt.Sprintf("Error: config file %s not found.\n  Create it with: seedgen init", path)

	case errors.Is(err, cliconfig.ErrConfigEmpty):
		return fmt.Sprintf("Error: config file %s is empty.\n  Add your API key, for example:\n    %s: your-api-key", path, cliconfig.KeyGoogleAPIKey)

	case errors.Is(err, cliconfig.ErrConfigKeyMissing):
		key := cliconfig.KeyGoogleAPIKey
		if cfgErr != nil && cfgErr.Key != "" {
			key = cfgErr.Key
		}
		return fmt.Sprintf("Error: key %s not found in %s.\n  Check that the key in the YAML file is named '%s'.", key, path, key)

	case errors.As(err, &qtyErr):
		return fmt.Sprintf("Error: quantity must be a positive integer, got %q", qtyErr.Input)

	case errors.Is(err, seed.ErrInvalidQuantity):
		return "Error: quantity must be a positive integer"

	case errors.Is(err, seed.ErrNoFields):
		return "Error: at least one field name is required (comma-separated, e.g. \"id, name, email\")"

	case errors.As(err, &missingErr):
		msg := fmt.Sprintf("Error: --%s is required", missingErr.Flag)
		if missingErr.Usage != "" {
			msg += "\n\n" + strings.TrimRight(missingErr.Usage, "\n")
		}
		return msg

	case errors.Is(err, seed.ErrMalformedResponse):
		return "Error: the model did not return valid JSON (response shown above).\n  Try again, or ask for fewer records."

	case errors.As(err, &shapeErr):
		return fmt.Sprintf("Error: expected a JSON array of records, but the model returned a JSON %s", shapeErr.Kind)

	case errors.Is(err, ai.ErrRateLimited):
		return "Error: the model provider rate limited the request. Wait a moment and try again."

	case errors.As(err, &provErr):
		return fmt.Sprintf("Error: model request failed: %v", provErr)

	case cfgErr != nil:
		return fmt.Sprintf("Error: invalid config file: %v", cfgErr)

	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
