package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/getmockd/seedgen/pkg/ai"
	"github.com/getmockd/seedgen/pkg/cli/internal/output"
	"github.com/getmockd/seedgen/pkg/cliconfig"
	"github.com/getmockd/seedgen/pkg/logging"
	"github.com/getmockd/seedgen/pkg/seed"
	"github.com/spf13/cobra"
)

var (
	generateQuantity    string
	generateFields      string
	generateOutput      string
	generateInteractive bool
)

// providerFactory builds the model client for a run. Tests replace it.
var providerFactory = ai.NewProvider

// connectionChecker is implemented by providers that can verify they are
// reachable before the real request (ollama).
type connectionChecker interface {
	CheckConnection(ctx context.Context) error
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate fake JSON records with an AI model",
	Long: `Generate asks the configured model for a JSON array of fake records.

Each record carries exactly the fields given, in that order. The array is
printed to stdout, or written indented to a file with --output.`,
	Example: `  # Five users, printed to stdout
  seedgen generate --quantity 5 --fields "id, name, email"

  # Save to a file
  seedgen generate -q 50 -f "sku, title, price" -o products.json

  # Answer the questions interactively
  seedgen generate --interactive`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := generateInput(cmd)
		if err != nil {
			return err
		}

		opts := generateOptions{
			ConfigPath: configPath,
			Overrides:  overrides(),
			OutputPath: generateOutput,
		}
		return runGenerate(cmd.Context(), opts, src, cmd.OutOrStdout(), cmd.ErrOrStderr(), newLogger(cmd.ErrOrStderr()))
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateQuantity, "quantity", "q", "", "Number of records to generate (required unless --interactive)")
	generateCmd.Flags().StringVarP(&generateFields, "fields", "f", "", `Comma-separated field names, e.g. "id, name, email" (required unless --interactive)`)
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Write the records to this file instead of stdout")
	generateCmd.Flags().BoolVarP(&generateInteractive, "interactive", "i", false, "Prompt for quantity and fields")
}

// generateInput chooses where the request comes from. Without
// --interactive both --quantity and --fields must be given.
func generateInput(cmd *cobra.Command) (InputSource, error) {
	if generateInteractive {
		return interactiveInput(cmd.InOrStdin(), cmd.ErrOrStderr()), nil
	}

	for _, name := range []string{"quantity", "fields"} {
		if !cmd.Flags().Changed(name) {
			return nil, &MissingArgumentError{Flag: name, Usage: cmd.UsageString()}
		}
	}

	return FlagInput{Quantity: generateQuantity, Fields: generateFields}, nil
}

// generateOptions holds the settings of one generate run.
type generateOptions struct {
	ConfigPath string
	Overrides  cliconfig.Overrides
	OutputPath string
}

// runGenerate performs one run: load the credential, resolve the request,
// call the model once, validate the answer, then print or save it.
// Records go to stdout; everything else goes to stderr.
func runGenerate(ctx context.Context, opts generateOptions, src InputSource, stdout, stderr io.Writer, logger *slog.Logger) error {
	logger, _ = logging.WithRun(logger)
	start := time.Now()

	cfg, err := cliconfig.Resolve(opts.ConfigPath, opts.Overrides)
	if err != nil {
		return err
	}
	cred, err := cfg.Credential()
	if err != nil {
		return err
	}
	logger.Debug("config loaded",
		"path", cfg.Path,
		"provider", cfg.Provider,
		"credential", cred.Redacted(),
		"sources", cfg.Sources,
	)

	aiCfg := cfg.AIConfig(cred)
	if err := aiCfg.Validate(); err != nil {
		return fmt.Errorf("invalid model settings: %w", err)
	}
	provider, err := providerFactory(aiCfg)
	if err != nil {
		return err
	}

	req, err := src.Resolve()
	if err != nil {
		return err
	}
	prompt := seed.BuildPrompt(req)
	logger.Debug("prompt built", "count", req.Count, "fields", req.Fields, "length", len(prompt))

	if checker, ok := provider.(connectionChecker); ok {
		if err := checker.CheckConnection(ctx); err != nil {
			return err
		}
	}

	output.Info(stderr, "Requesting %s from %s (%s)...", pluralRecords(req.Count), provider.Name(), aiCfg.Model)
	records, cleaned, err := seed.Generate(ctx, provider, prompt)
	logger.Debug("model answered", "duration", time.Since(start), "length", len(cleaned), "error", err)
	if err != nil {
		var malformed *seed.MalformedResponseError
		if errors.As(err, &malformed) {
			fmt.Fprintln(stderr, "Model response:")
			fmt.Fprintln(stderr, malformed.Payload)
		}
		return err
	}

	if records.Len() != req.Count {
		output.Warn(stderr, "asked for %s but the model returned %d", pluralRecords(req.Count), records.Len())
	}

	if opts.OutputPath != "" {
		if err := seed.WriteFile(opts.OutputPath, records); err != nil {
			return err
		}
	} else if err := seed.Emit(stdout, cleaned); err != nil {
		return err
	}

	elapsed := time.Since(start)
	output.Info(stderr, "Generated %s in %.2fs", pluralRecords(records.Len()), elapsed.Seconds())
	if opts.OutputPath != "" {
		output.Info(stderr, "Saved to %s", opts.OutputPath)
	}
	logger.Debug("run complete", "records", records.Len(), "duration", elapsed)

	return nil
}

func pluralRecords(n int) string {
	if n == 1 {
		return "1 record"
	}
	return fmt.Sprintf("%d records", n)
}
