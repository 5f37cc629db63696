package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/getmockd/seedgen/pkg/ai"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// stubProvider answers every prompt with a fixed response.
type stubProvider struct {
	response string
	err      error
	prompts  []string
}

func (s *stubProvider) Complete(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.response, s.err
}

func (s *stubProvider) Name() string { return "stub" }

// useProvider swaps providerFactory for the duration of the test and
// records the config it was called with.
func useProvider(t *testing.T, p ai.Provider) *ai.Config {
	t.Helper()
	seen := &ai.Config{}
	old := providerFactory
	providerFactory = func(cfg *ai.Config) (ai.Provider, error) {
		*seen = *cfg
		return p, nil
	}
	t.Cleanup(func() { providerFactory = old })
	return seen
}

// writeTestConfig writes content to a config.yaml in a temp dir.
func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// runRootCommandForTest executes the root command with args, resetting
// flag state left behind by earlier runs.
func runRootCommandForTest(t *testing.T, args []string, stdin string) (stdout, stderr string, err error) {
	t.Helper()

	resetFlags(rootCmd)
	for _, c := range rootCmd.Commands() {
		resetFlags(c)
	}

	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(bytes.NewBufferString(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Changed = false
		_ = f.Value.Set(f.DefValue)
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
}

func TestNewLogger(t *testing.T) {
	t.Cleanup(func() {
		verbose = false
		logLevel = "warn"
		logFormat = "text"
	})
	t.Setenv("SEEDGEN_VERBOSE", "")

	var buf bytes.Buffer
	logLevel, logFormat = "warn", "text"
	newLogger(&buf).Info("hidden")
	require.Empty(t, buf.String())

	verbose = true
	logFormat = "json"
	newLogger(&buf).Debug("shown")
	require.Contains(t, buf.String(), `"msg":"shown"`)
}
