package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/getmockd/seedgen/pkg/ai"
	"github.com/getmockd/seedgen/pkg/cli/internal/output"
	"github.com/getmockd/seedgen/pkg/cliconfig"
	"github.com/spf13/cobra"
)

var (
	initAPIKey string
	initForce  bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter config file",
	Long: `Create a config.yaml for seedgen.

Without --api-key the credential line is written commented out; fill it in
before running "seedgen generate".`,
	Example: `  seedgen init
  seedgen init --provider openai --api-key sk-...
  seedgen init -c ./configs/seedgen.yaml --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(initOptions{
			Path:     cliconfig.ResolvePath(configPath),
			Provider: providerName,
			APIKey:   initAPIKey,
			Force:    initForce,
		}, cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initAPIKey, "api-key", "", "API key to write into the config file")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
}

// initOptions holds the settings of the init command.
type initOptions struct {
	Path     string
	Provider string
	APIKey   string
	Force    bool
}

func runInit(opts initOptions, out io.Writer) error {
	provider := strings.ToLower(opts.Provider)
	if provider == "" {
		provider = cliconfig.DefaultProvider
	}
	if !isSupportedProvider(provider) {
		return fmt.Errorf("unknown provider %q (supported: %s)", provider, strings.Join(ai.SupportedProviders(), ", "))
	}

	if !opts.Force {
		if _, err := os.Stat(opts.Path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", opts.Path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to check %s: %w", opts.Path, err)
		}
	}

	data, err := cliconfig.Template(provider, cliconfig.Credential(opts.APIKey))
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}

	// The file may hold a credential.
	if err := os.WriteFile(opts.Path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	output.Info(out, "Created %s", opts.Path)
	if key := cliconfig.CredentialKey(provider); key != "" && opts.APIKey == "" {
		output.Info(out, "Edit it and set %s before running: seedgen generate", key)
	}
	return nil
}

func isSupportedProvider(name string) bool {
	for _, p := range ai.SupportedProviders() {
		if p == name {
			return true
		}
	}
	return false
}
