package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/getmockd/seedgen/pkg/cliconfig"
	"github.com/getmockd/seedgen/pkg/logging"
	"github.com/spf13/cobra"
)

var (
	// Persistent flags available to all subcommands
	configPath   string
	providerName string
	modelName    string
	endpointURL  string
	verbose      bool
	logLevel     string
	logFormat    string

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "seedgen",
	Short: "seedgen generates fake JSON test records with an AI model",
	Long: `seedgen asks a generative AI model for a JSON array of fake records with
exactly the fields you name, then prints it or saves it to a file.

The API credential is read from a YAML config file (config.yaml in the current
directory by default). Run "seedgen init" to create one.`,
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Execute()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, describeError(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: $SEEDGEN_CONFIG or ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&providerName, "provider", "", "Model provider (gemini, openai, anthropic, ollama, openrouter)")
	rootCmd.PersistentFlags().StringVar(&modelName, "model", "", "Model name (default depends on provider)")
	rootCmd.PersistentFlags().StringVar(&endpointURL, "endpoint", "", "Provider API base URL")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text or json)")
}

// overrides returns the config values set through persistent flags.
func overrides() cliconfig.Overrides {
	return cliconfig.Overrides{
		Provider: providerName,
		Model:    modelName,
		Endpoint: endpointURL,
	}
}

// newLogger builds the diagnostic logger for a command. --verbose and
// SEEDGEN_VERBOSE force debug output regardless of --log-level.
func newLogger(w io.Writer) *slog.Logger {
	cfg := logging.DefaultConfig()
	cfg.Output = w
	cfg.Format = logging.ParseFormat(logFormat)
	if logLevel != "" {
		cfg.Level = logging.ParseLevel(logLevel)
	}
	if verbose || cliconfig.VerboseFromEnv() {
		cfg.Level = logging.LevelDebug
	}
	return logging.New(cfg)
}
